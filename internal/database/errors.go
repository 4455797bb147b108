package database

import (
	"errors"
	"rentals/server/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationCheck
	violationNotNull
	violationForeignKey
)

// PostgreSQL SQLSTATE codes for integrity constraint violations
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// classify extracts the violated constraint kind from a driver error
func classify(err error) violation {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return violationUnique
		case sqlite3.ErrConstraintCheck:
			return violationCheck
		case sqlite3.ErrConstraintNotNull:
			return violationNotNull
		case sqlite3.ErrConstraintForeignKey:
			return violationForeignKey
		}
		return violationNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return violationUnique
		case pgCheckViolation:
			return violationCheck
		case pgNotNullViolation:
			return violationNotNull
		case pgForeignKeyViolation:
			return violationForeignKey
		}
	}
	return violationNone
}

// resultFor maps a statement error to the code reported to callers
func resultFor(err error) models.ReturnValue {
	if err == nil {
		return models.OK
	}

	switch classify(err) {
	case violationUnique:
		return models.AlreadyExists
	case violationCheck, violationNotNull:
		return models.BadParams
	case violationForeignKey:
		return models.NotExists
	default:
		return models.Error
	}
}
