package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"rentals/server/internal/models"
	"time"

	"github.com/sirupsen/logrus"
)

// Store is the part of the data layer a fixture is applied through
type Store interface {
	AddOwner(ctx context.Context, owner models.Owner) models.ReturnValue
	AddApartment(ctx context.Context, apartment models.Apartment) models.ReturnValue
	AddCustomer(ctx context.Context, customer models.Customer) models.ReturnValue
	OwnerOwnsApartment(ctx context.Context, ownerID, apartmentID int) models.ReturnValue
	CustomerMadeReservation(ctx context.Context, customerID, apartmentID int, start, end time.Time, totalPrice float64) models.ReturnValue
	CustomerReviewedApartment(ctx context.Context, customerID, apartmentID int, reviewDate time.Time, rating int, text string) models.ReturnValue
}

type Reservation struct {
	CustomerID  int     `json:"customer_id"`
	ApartmentID int     `json:"apartment_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalPrice  float64 `json:"total_price"`
}

type Review struct {
	CustomerID  int    `json:"customer_id"`
	ApartmentID int    `json:"apartment_id"`
	Date        string `json:"date"`
	Rating      int    `json:"rating"`
	Text        string `json:"review_text"`
}

// Fixture is a complete data set, applied parents first
type Fixture struct {
	Owners       []models.Owner     `json:"owners"`
	Apartments   []models.Apartment `json:"apartments"`
	Customers    []models.Customer  `json:"customers"`
	Ownerships   []models.Ownership `json:"ownerships"`
	Reservations []Reservation      `json:"reservations"`
	Reviews      []Review           `json:"reviews"`
}

// Load reads a fixture from a JSON file
func Load(path string) (*Fixture, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &fixture, nil
}

// Apply writes every record of the fixture. Duplicates are skipped, any other
// rejection is reported once all records were tried.
func Apply(ctx context.Context, store Store, fixture *Fixture, logger *logrus.Logger) error {
	if logger == nil {
		logger = logrus.New()
	}

	applied, skipped, failed := 0, 0, 0
	record := func(kind string, key interface{}, result models.ReturnValue) {
		switch result {
		case models.OK:
			applied++
		case models.AlreadyExists:
			skipped++
		default:
			failed++
			logger.WithFields(logrus.Fields{
				"kind":   kind,
				"key":    key,
				"result": result.String(),
			}).Warn("Fixture record rejected")
		}
	}

	for _, o := range fixture.Owners {
		record("owner", o.ID, store.AddOwner(ctx, o))
	}
	for _, a := range fixture.Apartments {
		record("apartment", a.ID, store.AddApartment(ctx, a))
	}
	for _, c := range fixture.Customers {
		record("customer", c.ID, store.AddCustomer(ctx, c))
	}
	for _, o := range fixture.Ownerships {
		record("ownership", o.ApartmentID, store.OwnerOwnsApartment(ctx, o.OwnerID, o.ApartmentID))
	}
	for _, r := range fixture.Reservations {
		key := fmt.Sprintf("%d/%d/%s", r.CustomerID, r.ApartmentID, r.StartDate)
		start, errStart := time.Parse(models.DateLayout, r.StartDate)
		end, errEnd := time.Parse(models.DateLayout, r.EndDate)
		if errStart != nil || errEnd != nil {
			record("reservation", key, models.BadParams)
			continue
		}
		record("reservation", key, store.CustomerMadeReservation(ctx, r.CustomerID, r.ApartmentID, start, end, r.TotalPrice))
	}
	for _, r := range fixture.Reviews {
		key := fmt.Sprintf("%d/%d", r.CustomerID, r.ApartmentID)
		date, err := time.Parse(models.DateLayout, r.Date)
		if err != nil {
			record("review", key, models.BadParams)
			continue
		}
		record("review", key, store.CustomerReviewedApartment(ctx, r.CustomerID, r.ApartmentID, date, r.Rating, r.Text))
	}

	logger.WithFields(logrus.Fields{
		"applied": applied,
		"skipped": skipped,
		"failed":  failed,
	}).Info("Fixture applied")

	if failed > 0 {
		return fmt.Errorf("%d fixture records were rejected", failed)
	}
	return nil
}
