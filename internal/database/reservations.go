package database

import (
	"context"
	"fmt"
	"rentals/server/internal/models"
	"time"
)

func formatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// dateOnly drops the time of day so that ranges compare by calendar day
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CustomerMadeReservation books the apartment unless another reservation of it
// shares at least one day with [start, end]. A clash is reported as BadParams.
func (d *Database) CustomerMadeReservation(ctx context.Context, customerID, apartmentID int, start, end time.Time, totalPrice float64) models.ReturnValue {
	reservation := models.Reservation{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		StartDate:   dateOnly(start),
		EndDate:     dateOnly(end),
		TotalPrice:  totalPrice,
	}
	if !d.valid("customer_made_reservation", reservation) {
		return models.BadParams
	}

	date := d.dialect.date
	stmt := fmt.Sprintf(`
		INSERT INTO reservations (customer_id, apartment_id, start_date, end_date, total_price)
		SELECT CAST(? AS INTEGER), CAST(? AS INTEGER), %[1]s, %[1]s, CAST(? AS %[2]s)
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE apartment_id = ?
			AND start_date <= %[1]s
			AND end_date >= %[1]s
		)`, date, d.dialect.float)

	startDate, endDate := formatDate(start), formatDate(end)
	n, result := d.write(ctx, "customer_made_reservation", stmt,
		customerID, apartmentID, startDate, endDate, totalPrice,
		apartmentID, endDate, startDate)
	if result == models.OK && n == 0 {
		return models.BadParams
	}
	return result
}

// CustomerCancelledReservation removes the reservation starting on start
func (d *Database) CustomerCancelledReservation(ctx context.Context, customerID, apartmentID int, start time.Time) models.ReturnValue {
	if customerID <= 0 || apartmentID <= 0 || start.IsZero() {
		return models.BadParams
	}

	stmt := fmt.Sprintf(`
		DELETE FROM reservations
		WHERE customer_id = ? AND apartment_id = ? AND start_date = %s`, d.dialect.date)
	return d.deleteOne(ctx, "customer_cancelled_reservation", stmt, customerID, apartmentID, formatDate(start))
}

// CustomerReviewedApartment stores a review only when the customer has a
// reservation of the apartment that ended on or before reviewDate.
func (d *Database) CustomerReviewedApartment(ctx context.Context, customerID, apartmentID int, reviewDate time.Time, rating int, text string) models.ReturnValue {
	review := models.Review{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		ReviewDate:  reviewDate,
		Rating:      rating,
		Text:        text,
	}
	if !d.valid("customer_reviewed_apartment", review) {
		return models.BadParams
	}

	date := d.dialect.date
	stmt := fmt.Sprintf(`
		INSERT INTO reviews (apartment_id, customer_id, review_date, rating, review_text)
		SELECT CAST(? AS INTEGER), CAST(? AS INTEGER), %[1]s, CAST(? AS INTEGER), ?
		WHERE EXISTS (
			SELECT 1 FROM reservations
			WHERE customer_id = ?
			AND apartment_id = ?
			AND end_date <= %[1]s
		)`, date)

	day := formatDate(reviewDate)
	n, result := d.write(ctx, "customer_reviewed_apartment", stmt,
		apartmentID, customerID, day, rating, text,
		customerID, apartmentID, day)
	if result == models.OK && n == 0 {
		return models.NotExists
	}
	return result
}

// CustomerUpdatedReview replaces an existing review. The update date may not
// precede the date of the review it replaces.
func (d *Database) CustomerUpdatedReview(ctx context.Context, customerID, apartmentID int, updateDate time.Time, rating int, text string) models.ReturnValue {
	review := models.Review{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		ReviewDate:  updateDate,
		Rating:      rating,
		Text:        text,
	}
	if !d.valid("customer_updated_review", review) {
		return models.BadParams
	}

	date := d.dialect.date
	stmt := fmt.Sprintf(`
		UPDATE reviews
		SET review_date = %[1]s, rating = ?, review_text = ?
		WHERE customer_id = ? AND apartment_id = ? AND review_date <= %[1]s`, date)

	day := formatDate(updateDate)
	n, result := d.write(ctx, "customer_updated_review", stmt,
		day, rating, text, customerID, apartmentID, day)
	if result == models.OK && n == 0 {
		return models.NotExists
	}
	return result
}
