package database

import (
	"context"
	"fmt"
)

// Tables in dependency order, parents first
var tables = []string{"owners", "apartments", "customers", "owns", "reservations", "reviews"}

// Views in dependency order, base views first
var views = []string{
	"apartment_ratings",
	"customer_reservation_counts",
	"owner_locations",
	"apartment_night_prices",
	"apartment_values",
	"customer_rating_ratios",
}

func (d *Database) tableStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS owners (
			owner_id INTEGER PRIMARY KEY CHECK (owner_id > 0),
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS apartments (
			apartment_id INTEGER PRIMARY KEY CHECK (apartment_id > 0),
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			size INTEGER NOT NULL CHECK (size > 0),
			UNIQUE (city, address)
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			customer_id INTEGER PRIMARY KEY CHECK (customer_id > 0),
			name TEXT NOT NULL
		)`,
		// apartment_id as the key allows a single owner per apartment
		`CREATE TABLE IF NOT EXISTS owns (
			apartment_id INTEGER PRIMARY KEY REFERENCES apartments (apartment_id) ON DELETE CASCADE,
			owner_id INTEGER NOT NULL REFERENCES owners (owner_id) ON DELETE CASCADE
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reservations (
			customer_id INTEGER NOT NULL REFERENCES customers (customer_id) ON DELETE CASCADE,
			apartment_id INTEGER NOT NULL REFERENCES apartments (apartment_id) ON DELETE CASCADE,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			total_price %s NOT NULL CHECK (total_price > 0),
			PRIMARY KEY (apartment_id, start_date),
			CHECK (end_date >= start_date)
		)`, d.dialect.float),
		`CREATE TABLE IF NOT EXISTS reviews (
			apartment_id INTEGER NOT NULL REFERENCES apartments (apartment_id) ON DELETE CASCADE,
			customer_id INTEGER NOT NULL REFERENCES customers (customer_id) ON DELETE CASCADE,
			review_date DATE NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
			review_text TEXT NOT NULL,
			PRIMARY KEY (apartment_id, customer_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_customer ON reservations (customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_customer ON reviews (customer_id)`,
	}
}

func (d *Database) viewStatements() []string {
	dl := d.dialect
	return []string{
		fmt.Sprintf(`%s apartment_ratings AS
			SELECT apartment_id, CAST(AVG(rating) AS %s) AS avg_rating
			FROM reviews
			GROUP BY apartment_id`, dl.createView, dl.float),
		fmt.Sprintf(`%s customer_reservation_counts AS
			SELECT c.customer_id, COUNT(r.apartment_id) AS reservation_count
			FROM customers c
			LEFT JOIN reservations r ON r.customer_id = c.customer_id
			GROUP BY c.customer_id`, dl.createView),
		fmt.Sprintf(`%s owner_locations AS
			SELECT l.owner_id, COUNT(*) AS location_count
			FROM (
				SELECT DISTINCT w.owner_id, a.city, a.country
				FROM owns w
				JOIN apartments a ON a.apartment_id = w.apartment_id
			) AS l
			GROUP BY l.owner_id`, dl.createView),
		// same-day stays have no nights and are left out of the average
		fmt.Sprintf(`%s apartment_night_prices AS
			SELECT apartment_id, CAST(AVG(total_price / NULLIF(%s, 0)) AS %s) AS avg_night_price
			FROM reservations
			GROUP BY apartment_id`, dl.createView, dl.days("start_date", "end_date"), dl.float),
		fmt.Sprintf(`%s apartment_values AS
			SELECT ar.apartment_id, ar.avg_rating / np.avg_night_price AS value_score
			FROM apartment_ratings ar
			JOIN apartment_night_prices np ON np.apartment_id = ar.apartment_id
			WHERE np.avg_night_price > 0`, dl.createView),
		fmt.Sprintf(`%s customer_rating_ratios AS
			SELECT a.customer_id, b.customer_id AS other_customer_id,
				CAST(AVG(CAST(a.rating AS %s) / b.rating) AS %s) AS ratio
			FROM reviews a
			JOIN reviews b ON b.apartment_id = a.apartment_id AND b.customer_id <> a.customer_id
			GROUP BY a.customer_id, b.customer_id`, dl.createView, dl.float, dl.float),
	}
}

// CreateTables creates every table and view that does not exist yet
func (d *Database) CreateTables(ctx context.Context) error {
	statements := append(d.tableStatements(), d.viewStatements()...)
	return d.run(ctx, "create_tables", func(s Session) error {
		for _, stmt := range statements {
			if _, err := s.Execute(stmt); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
		}
		return nil
	})
}

// ClearTables removes every row, children before parents
func (d *Database) ClearTables(ctx context.Context) error {
	return d.run(ctx, "clear_tables", func(s Session) error {
		for i := len(tables) - 1; i >= 0; i-- {
			if _, err := s.Execute("DELETE FROM " + tables[i]); err != nil {
				return fmt.Errorf("failed to clear %s: %w", tables[i], err)
			}
		}
		return nil
	})
}

// DropTables drops the views and then the tables, children before parents
func (d *Database) DropTables(ctx context.Context) error {
	return d.run(ctx, "drop_tables", func(s Session) error {
		for i := len(views) - 1; i >= 0; i-- {
			if _, err := s.Execute("DROP VIEW IF EXISTS " + views[i]); err != nil {
				return fmt.Errorf("failed to drop view %s: %w", views[i], err)
			}
		}
		for i := len(tables) - 1; i >= 0; i-- {
			if _, err := s.Execute("DROP TABLE IF EXISTS " + tables[i]); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", tables[i], err)
			}
		}
		return nil
	})
}
