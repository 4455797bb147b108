package database

import (
	"errors"
	"fmt"
	"rentals/server/internal/models"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestResultFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected models.ReturnValue
	}{
		{
			name:     "No error",
			err:      nil,
			expected: models.OK,
		},
		{
			name:     "SQLite unique",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			expected: models.AlreadyExists,
		},
		{
			name:     "SQLite primary key",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			expected: models.AlreadyExists,
		},
		{
			name:     "SQLite check",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			expected: models.BadParams,
		},
		{
			name:     "SQLite not null",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			expected: models.BadParams,
		},
		{
			name:     "SQLite foreign key",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			expected: models.NotExists,
		},
		{
			name:     "SQLite busy",
			err:      sqlite3.Error{Code: sqlite3.ErrBusy},
			expected: models.Error,
		},
		{
			name:     "Postgres unique",
			err:      &pgconn.PgError{Code: "23505", TableName: "owners"},
			expected: models.AlreadyExists,
		},
		{
			name:     "Postgres check",
			err:      &pgconn.PgError{Code: "23514"},
			expected: models.BadParams,
		},
		{
			name:     "Postgres not null",
			err:      &pgconn.PgError{Code: "23502"},
			expected: models.BadParams,
		},
		{
			name:     "Postgres foreign key",
			err:      &pgconn.PgError{Code: "23503"},
			expected: models.NotExists,
		},
		{
			name:     "Postgres undefined table",
			err:      &pgconn.PgError{Code: "42P01"},
			expected: models.Error,
		},
		{
			name:     "Wrapped driver error",
			err:      fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"}),
			expected: models.AlreadyExists,
		},
		{
			name:     "Unknown error",
			err:      errors.New("connection reset"),
			expected: models.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resultFor(tt.err))
		})
	}
}

func TestReturnValue_String(t *testing.T) {
	assert.Equal(t, "OK", models.OK.String())
	assert.Equal(t, "NOT_EXISTS", models.NotExists.String())
	assert.Equal(t, "ALREADY_EXISTS", models.AlreadyExists.String())
	assert.Equal(t, "ERROR", models.Error.String())
	assert.Equal(t, "BAD_PARAMS", models.BadParams.String())
}
