package database

import (
	"context"
	"rentals/server/internal/models"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedBookings loads the data set shared by the report tests:
//
//	owner 1 owns apartments 1 (Paris) and 2 (Lyon), owner 2 owns apartment 3 (Paris)
//	customers 2 and 3 made two reservations each, customer 1 one, customer 4 none
func seedBookings(t *testing.T, db *Database) {
	t.Helper()
	ctx := context.Background()

	for _, o := range []models.Owner{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}, {ID: 3, Name: "Carol"}} {
		require.Equal(t, models.OK, db.AddOwner(ctx, o))
	}
	for _, a := range []models.Apartment{
		{ID: 1, Address: "1 Rue A", City: "Paris", Country: "France", Size: 50},
		{ID: 2, Address: "2 Rue B", City: "Lyon", Country: "France", Size: 40},
		{ID: 3, Address: "3 Rue C", City: "Paris", Country: "France", Size: 30},
	} {
		require.Equal(t, models.OK, db.AddApartment(ctx, a))
	}
	for _, c := range []models.Customer{{ID: 1, Name: "Dan"}, {ID: 2, Name: "Eve"}, {ID: 3, Name: "Finn"}, {ID: 4, Name: "Gus"}} {
		require.Equal(t, models.OK, db.AddCustomer(ctx, c))
	}

	require.Equal(t, models.OK, db.OwnerOwnsApartment(ctx, 1, 1))
	require.Equal(t, models.OK, db.OwnerOwnsApartment(ctx, 1, 2))
	require.Equal(t, models.OK, db.OwnerOwnsApartment(ctx, 2, 3))

	reservations := []struct {
		customer, apartment int
		start, end          string
		price               float64
	}{
		{1, 1, "2023-01-01", "2023-01-05", 400},
		{2, 1, "2023-02-01", "2023-02-05", 400},
		{2, 2, "2023-03-01", "2023-03-05", 200},
		{3, 1, "2023-04-01", "2023-04-05", 400},
		{3, 3, "2023-05-01", "2023-05-05", 100},
	}
	for _, r := range reservations {
		require.Equal(t, models.OK,
			db.CustomerMadeReservation(ctx, r.customer, r.apartment, day(t, r.start), day(t, r.end), r.price))
	}

	reviews := []struct {
		customer, apartment int
		date                string
		rating              int
	}{
		{1, 1, "2023-01-10", 8},
		{2, 1, "2023-02-10", 4},
		{2, 2, "2023-03-10", 6},
		{3, 1, "2023-04-10", 8},
		{3, 3, "2023-05-10", 5},
	}
	for _, r := range reviews {
		require.Equal(t, models.OK,
			db.CustomerReviewedApartment(ctx, r.customer, r.apartment, day(t, r.date), r.rating, "stayed here"))
	}
}
