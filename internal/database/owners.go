package database

import (
	"context"
	"rentals/server/internal/models"
)

func (d *Database) AddOwner(ctx context.Context, owner models.Owner) models.ReturnValue {
	if !d.valid("add_owner", owner) {
		return models.BadParams
	}

	_, result := d.write(ctx, "add_owner",
		`INSERT INTO owners (owner_id, name) VALUES (?, ?)`,
		owner.ID, owner.Name)
	return result
}

// GetOwner returns models.BadOwner() when no owner has the given id
func (d *Database) GetOwner(ctx context.Context, ownerID int) models.Owner {
	if ownerID <= 0 {
		return models.BadOwner()
	}

	var owner models.Owner
	n, err := d.read(ctx, "get_owner", &owner,
		`SELECT owner_id, name FROM owners WHERE owner_id = ?`, ownerID)
	if err != nil || n == 0 {
		return models.BadOwner()
	}
	return owner
}

// DeleteOwner removes the owner together with their ownership rows
func (d *Database) DeleteOwner(ctx context.Context, ownerID int) models.ReturnValue {
	if ownerID <= 0 {
		return models.BadParams
	}
	return d.deleteOne(ctx, "delete_owner", `DELETE FROM owners WHERE owner_id = ?`, ownerID)
}

// deleteOne runs a DELETE that is expected to hit at least one row
func (d *Database) deleteOne(ctx context.Context, op string, stmt string, args ...interface{}) models.ReturnValue {
	n, result := d.write(ctx, op, stmt, args...)
	if result == models.OK && n == 0 {
		return models.NotExists
	}
	return result
}
