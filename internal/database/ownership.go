package database

import (
	"context"
	"rentals/server/internal/models"
)

// OwnerOwnsApartment assigns the apartment to the owner. An apartment that
// already has an owner yields AlreadyExists.
func (d *Database) OwnerOwnsApartment(ctx context.Context, ownerID, apartmentID int) models.ReturnValue {
	if !d.valid("owner_owns_apartment", models.Ownership{OwnerID: ownerID, ApartmentID: apartmentID}) {
		return models.BadParams
	}

	_, result := d.write(ctx, "owner_owns_apartment",
		`INSERT INTO owns (owner_id, apartment_id) VALUES (?, ?)`,
		ownerID, apartmentID)
	return result
}

func (d *Database) OwnerDropsApartment(ctx context.Context, ownerID, apartmentID int) models.ReturnValue {
	if !d.valid("owner_drops_apartment", models.Ownership{OwnerID: ownerID, ApartmentID: apartmentID}) {
		return models.BadParams
	}
	return d.deleteOne(ctx, "owner_drops_apartment",
		`DELETE FROM owns WHERE owner_id = ? AND apartment_id = ?`,
		ownerID, apartmentID)
}

// GetApartmentOwner returns models.BadOwner() for an apartment without an owner
func (d *Database) GetApartmentOwner(ctx context.Context, apartmentID int) models.Owner {
	if apartmentID <= 0 {
		return models.BadOwner()
	}

	var owner models.Owner
	n, err := d.read(ctx, "get_apartment_owner", &owner, `
		SELECT o.owner_id, o.name
		FROM owners o
		JOIN owns w ON w.owner_id = o.owner_id
		WHERE w.apartment_id = ?`, apartmentID)
	if err != nil || n == 0 {
		return models.BadOwner()
	}
	return owner
}

// GetOwnerApartments lists the owner's apartments ordered by id
func (d *Database) GetOwnerApartments(ctx context.Context, ownerID int) []models.Apartment {
	apartments := []models.Apartment{}
	if ownerID <= 0 {
		return apartments
	}

	if _, err := d.read(ctx, "get_owner_apartments", &apartments, `
		SELECT a.apartment_id, a.address, a.city, a.country, a.size
		FROM apartments a
		JOIN owns w ON w.apartment_id = a.apartment_id
		WHERE w.owner_id = ?
		ORDER BY a.apartment_id`, ownerID); err != nil {
		return []models.Apartment{}
	}
	return apartments
}
