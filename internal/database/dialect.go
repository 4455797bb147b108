package database

import "fmt"

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

// dialect holds the SQL fragments that differ between the supported engines.
// Everything else is written once with ? placeholders.
type dialect struct {
	name string

	// floating point column / cast type
	float string

	// placeholder for a YYYY-MM-DD date parameter
	date string

	// statement prefix that creates or keeps a view
	createView string

	month func(col string) string
	year  func(col string) string

	// days between two date columns
	days func(from, to string) string

	// clamp limits expr to [lo, hi]
	clamp func(expr string, lo, hi int) string
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case driverSQLite:
		return dialect{
			name:       driverSQLite,
			float:      "REAL",
			date:       "?",
			createView: "CREATE VIEW IF NOT EXISTS",
			month: func(col string) string {
				return fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", col)
			},
			year: func(col string) string {
				return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", col)
			},
			days: func(from, to string) string {
				return fmt.Sprintf("(julianday(%s) - julianday(%s))", to, from)
			},
			clamp: func(expr string, lo, hi int) string {
				return fmt.Sprintf("MAX(%d, MIN(%d, %s))", lo, hi, expr)
			},
		}, nil
	case driverPostgres:
		return dialect{
			name:       driverPostgres,
			float:      "DOUBLE PRECISION",
			date:       "CAST(? AS DATE)",
			createView: "CREATE OR REPLACE VIEW",
			month: func(col string) string {
				return fmt.Sprintf("CAST(EXTRACT(MONTH FROM %s) AS INTEGER)", col)
			},
			year: func(col string) string {
				return fmt.Sprintf("CAST(EXTRACT(YEAR FROM %s) AS INTEGER)", col)
			},
			days: func(from, to string) string {
				return fmt.Sprintf("(%s - %s)", to, from)
			},
			clamp: func(expr string, lo, hi int) string {
				return fmt.Sprintf("GREATEST(%d, LEAST(%d, %s))", lo, hi, expr)
			},
		}, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
