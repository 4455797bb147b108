package database

import (
	"context"
	"rentals/server/internal/models"
)

func (d *Database) AddCustomer(ctx context.Context, customer models.Customer) models.ReturnValue {
	if !d.valid("add_customer", customer) {
		return models.BadParams
	}

	_, result := d.write(ctx, "add_customer",
		`INSERT INTO customers (customer_id, name) VALUES (?, ?)`,
		customer.ID, customer.Name)
	return result
}

func (d *Database) GetCustomer(ctx context.Context, customerID int) models.Customer {
	if customerID <= 0 {
		return models.BadCustomer()
	}

	var customer models.Customer
	n, err := d.read(ctx, "get_customer", &customer,
		`SELECT customer_id, name FROM customers WHERE customer_id = ?`, customerID)
	if err != nil || n == 0 {
		return models.BadCustomer()
	}
	return customer
}

// DeleteCustomer removes the customer with their reservations and reviews
func (d *Database) DeleteCustomer(ctx context.Context, customerID int) models.ReturnValue {
	if customerID <= 0 {
		return models.BadParams
	}
	return d.deleteOne(ctx, "delete_customer", `DELETE FROM customers WHERE customer_id = ?`, customerID)
}
