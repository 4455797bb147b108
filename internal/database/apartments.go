package database

import (
	"context"
	"rentals/server/internal/models"
)

func (d *Database) AddApartment(ctx context.Context, apartment models.Apartment) models.ReturnValue {
	if !d.valid("add_apartment", apartment) {
		return models.BadParams
	}

	_, result := d.write(ctx, "add_apartment",
		`INSERT INTO apartments (apartment_id, address, city, country, size) VALUES (?, ?, ?, ?, ?)`,
		apartment.ID, apartment.Address, apartment.City, apartment.Country, apartment.Size)
	return result
}

// GetApartment returns models.BadApartment() when no apartment has the given id
func (d *Database) GetApartment(ctx context.Context, apartmentID int) models.Apartment {
	if apartmentID <= 0 {
		return models.BadApartment()
	}

	var apartment models.Apartment
	n, err := d.read(ctx, "get_apartment", &apartment,
		`SELECT apartment_id, address, city, country, size FROM apartments WHERE apartment_id = ?`,
		apartmentID)
	if err != nil || n == 0 {
		return models.BadApartment()
	}
	return apartment
}

// DeleteApartment removes the apartment with its ownership, reservations and reviews
func (d *Database) DeleteApartment(ctx context.Context, apartmentID int) models.ReturnValue {
	if apartmentID <= 0 {
		return models.BadParams
	}
	return d.deleteOne(ctx, "delete_apartment", `DELETE FROM apartments WHERE apartment_id = ?`, apartmentID)
}
