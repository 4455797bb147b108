package database

import (
	"context"
	"fmt"
	"rentals/server/internal/models"
)

const (
	minRating = 1
	maxRating = 10
)

// GetApartmentRecommendation estimates the rating the customer would give to
// each apartment they have not reviewed yet. Every customer that shares a
// reviewed apartment with them contributes ratio * their own rating, clamped
// to the rating scale; the estimates are averaged per apartment.
func (d *Database) GetApartmentRecommendation(ctx context.Context, customerID int) []models.Recommendation {
	recommendations := []models.Recommendation{}
	if customerID <= 0 {
		return recommendations
	}

	dl := d.dialect
	estimate := dl.clamp("rr.ratio * rv.rating", minRating, maxRating)
	stmt := fmt.Sprintf(`
		SELECT a.apartment_id, a.address, a.city, a.country, a.size,
			CAST(AVG(%s) AS %s) AS expected_rating
		FROM customer_rating_ratios rr
		JOIN reviews rv ON rv.customer_id = rr.other_customer_id
		JOIN apartments a ON a.apartment_id = rv.apartment_id
		WHERE rr.customer_id = ?
		AND rv.apartment_id NOT IN (SELECT apartment_id FROM reviews WHERE customer_id = ?)
		GROUP BY a.apartment_id, a.address, a.city, a.country, a.size
		ORDER BY a.apartment_id`, estimate, dl.float)

	if _, err := d.read(ctx, "get_apartment_recommendation", &recommendations, stmt, customerID, customerID); err != nil {
		return []models.Recommendation{}
	}
	return recommendations
}
