package database

import (
	"context"
	"fmt"
	"rentals/server/internal/models"
)

// ownerCommission is the share of each reservation's total price kept as profit
const ownerCommission = 0.15

// GetApartmentRating returns the average rating, or 0 for an unreviewed apartment
func (d *Database) GetApartmentRating(ctx context.Context, apartmentID int) float64 {
	var rating float64
	if _, err := d.read(ctx, "get_apartment_rating", &rating, `
		SELECT COALESCE(
			(SELECT avg_rating FROM apartment_ratings WHERE apartment_id = ?),
			0)`, apartmentID); err != nil {
		return 0
	}
	return rating
}

// GetOwnerRating averages the ratings of every apartment the owner has.
// Apartments nobody reviewed count as 0.
func (d *Database) GetOwnerRating(ctx context.Context, ownerID int) float64 {
	var rating float64
	stmt := fmt.Sprintf(`
		SELECT CAST(COALESCE(AVG(COALESCE(ar.avg_rating, 0)), 0) AS %s)
		FROM owns w
		LEFT JOIN apartment_ratings ar ON ar.apartment_id = w.apartment_id
		WHERE w.owner_id = ?`, d.dialect.float)
	if _, err := d.read(ctx, "get_owner_rating", &rating, stmt, ownerID); err != nil {
		return 0
	}
	return rating
}

// GetTopCustomer returns the customer with the most reservations, lowest id on ties
func (d *Database) GetTopCustomer(ctx context.Context) models.Customer {
	var customer models.Customer
	n, err := d.read(ctx, "get_top_customer", &customer, `
		SELECT c.customer_id, c.name
		FROM customers c
		JOIN customer_reservation_counts rc ON rc.customer_id = c.customer_id
		ORDER BY rc.reservation_count DESC, c.customer_id ASC
		LIMIT 1`)
	if err != nil || n == 0 {
		return models.BadCustomer()
	}
	return customer
}

// ReservationsPerOwner counts reservations on each owner's apartments.
// Owners without any reservation are listed with 0.
func (d *Database) ReservationsPerOwner(ctx context.Context) []models.OwnerReservations {
	counts := []models.OwnerReservations{}
	if _, err := d.read(ctx, "reservations_per_owner", &counts, `
		SELECT o.name, COUNT(r.apartment_id) AS reservation_count
		FROM owners o
		LEFT JOIN owns w ON w.owner_id = o.owner_id
		LEFT JOIN reservations r ON r.apartment_id = w.apartment_id
		GROUP BY o.owner_id, o.name
		ORDER BY o.owner_id`); err != nil {
		return []models.OwnerReservations{}
	}
	return counts
}

// GetAllLocationOwners returns the owners that have an apartment in every
// (city, country) location found in the apartments table.
func (d *Database) GetAllLocationOwners(ctx context.Context) []models.Owner {
	owners := []models.Owner{}
	if _, err := d.read(ctx, "get_all_location_owners", &owners, `
		SELECT o.owner_id, o.name
		FROM owners o
		JOIN owner_locations l ON l.owner_id = o.owner_id
		WHERE l.location_count = (
			SELECT COUNT(*) FROM (SELECT DISTINCT city, country FROM apartments) AS locations
		)
		ORDER BY o.owner_id`); err != nil {
		return []models.Owner{}
	}
	return owners
}

// BestValueForMoney returns the apartment with the highest rating to night
// price ratio, lowest id on ties.
func (d *Database) BestValueForMoney(ctx context.Context) models.Apartment {
	var apartment models.Apartment
	n, err := d.read(ctx, "best_value_for_money", &apartment, `
		SELECT a.apartment_id, a.address, a.city, a.country, a.size
		FROM apartments a
		JOIN apartment_values v ON v.apartment_id = a.apartment_id
		ORDER BY v.value_score DESC, a.apartment_id ASC
		LIMIT 1`)
	if err != nil || n == 0 {
		return models.BadApartment()
	}
	return apartment
}

// ProfitPerMonth returns twelve rows, one per month of year, with the
// commission earned on reservations ending in that month.
func (d *Database) ProfitPerMonth(ctx context.Context, year int) []models.MonthProfit {
	dl := d.dialect
	stmt := fmt.Sprintf(`
		WITH RECURSIVE months (month) AS (
			SELECT 1
			UNION ALL
			SELECT month + 1 FROM months WHERE month < 12
		)
		SELECT m.month, CAST(COALESCE(SUM(r.total_price), 0) * %[1]v AS %[2]s) AS profit
		FROM months m
		LEFT JOIN reservations r
			ON %[3]s = m.month
			AND %[4]s = ?
		GROUP BY m.month
		ORDER BY m.month`, ownerCommission, dl.float, dl.month("r.end_date"), dl.year("r.end_date"))

	profits := []models.MonthProfit{}
	if _, err := d.read(ctx, "profit_per_month", &profits, stmt, year); err != nil || len(profits) != 12 {
		return emptyYear()
	}
	return profits
}

func emptyYear() []models.MonthProfit {
	profits := make([]models.MonthProfit, 12)
	for i := range profits {
		profits[i].Month = i + 1
	}
	return profits
}
