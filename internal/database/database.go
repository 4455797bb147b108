package database

import (
	"context"
	"fmt"
	"rentals/server/config"
	"rentals/server/internal/models"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Session runs statements on a single acquired connection.
// Execute returns the number of affected rows, Select the number of scanned rows.
type Session interface {
	Execute(stmt string, args ...interface{}) (int64, error)
	Select(dest interface{}, stmt string, args ...interface{}) (int64, error)
}

// Connector hands out scoped sessions. The connection behind a session is
// released when fn returns, whatever the outcome.
type Connector interface {
	Session(ctx context.Context, fn func(Session) error) error
	Close() error
}

type Database struct {
	conn     Connector
	dialect  dialect
	logger   *logrus.Logger
	validate *validator.Validate
}

// New builds the data access layer on top of an existing connector
func New(conn Connector, driver string, logger *logrus.Logger) (*Database, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Database{
		conn:     conn,
		dialect:  d,
		logger:   logger,
		validate: validator.New(),
	}, nil
}

// NewDatabase opens a pooled connection for the configured driver
func NewDatabase(cfg config.DatabaseConfig, logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.New()
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case driverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case driverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Silent,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns(cfg))
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return New(&gormConnector{db: db, foreignKeys: cfg.Driver == driverSQLite}, cfg.Driver, logger)
}

// maxOpenConns falls back to a single connection for sqlite, which serialises writers
func maxOpenConns(cfg config.DatabaseConfig) int {
	if cfg.MaxOpenConns > 0 {
		return cfg.MaxOpenConns
	}
	if cfg.Driver == driverSQLite {
		return 1
	}
	return 10
}

func (d *Database) Close() error {
	return d.conn.Close()
}

// run acquires a session for a single operation and maps its outcome
func (d *Database) run(ctx context.Context, op string, fn func(Session) error) error {
	err := d.conn.Session(ctx, fn)
	if err != nil {
		d.logger.WithError(err).WithField("op", op).Debug("Statement failed")
	}
	return err
}

// write runs one modifying statement and reports the affected rows with its result code
func (d *Database) write(ctx context.Context, op string, stmt string, args ...interface{}) (int64, models.ReturnValue) {
	var affected int64
	err := d.run(ctx, op, func(s Session) error {
		n, err := s.Execute(stmt, args...)
		affected = n
		return err
	})

	result := resultFor(err)
	if result == models.Error {
		d.logger.WithError(err).WithField("op", op).Error("Database write failed")
	}
	return affected, result
}

// read runs one query into dest and reports the number of scanned rows
func (d *Database) read(ctx context.Context, op string, dest interface{}, stmt string, args ...interface{}) (int64, error) {
	var scanned int64
	err := d.run(ctx, op, func(s Session) error {
		n, err := s.Select(dest, stmt, args...)
		scanned = n
		return err
	})
	if err != nil {
		d.logger.WithError(err).WithField("op", op).Error("Database read failed")
	}
	return scanned, err
}

// valid reports whether v satisfies its validation tags
func (d *Database) valid(op string, v interface{}) bool {
	if err := d.validate.Struct(v); err != nil {
		d.logger.WithError(err).WithField("op", op).Debug("Rejected parameters")
		return false
	}
	return true
}

type gormConnector struct {
	db *gorm.DB

	// sqlite keeps foreign key enforcement per connection and defaults it off
	foreignKeys bool
}

func (c *gormConnector) Session(ctx context.Context, fn func(Session) error) error {
	return c.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		session := gormSession{tx: tx}
		if c.foreignKeys {
			if _, err := session.Execute("PRAGMA foreign_keys = ON"); err != nil {
				return fmt.Errorf("failed to enable foreign keys: %w", err)
			}
		}
		return fn(session)
	})
}

func (c *gormConnector) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormSession struct {
	tx *gorm.DB
}

// statement starts from a clean gorm statement bound to the session's connection
func (s gormSession) statement() *gorm.DB {
	return s.tx.Session(&gorm.Session{NewDB: true})
}

func (s gormSession) Execute(stmt string, args ...interface{}) (int64, error) {
	result := s.statement().Exec(stmt, args...)
	return result.RowsAffected, result.Error
}

func (s gormSession) Select(dest interface{}, stmt string, args ...interface{}) (int64, error) {
	result := s.statement().Raw(stmt, args...).Scan(dest)
	return result.RowsAffected, result.Error
}
