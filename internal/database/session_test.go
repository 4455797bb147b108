package database

import (
	"context"
	"errors"
	"rentals/server/internal/models"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSession is a mock implementation of the Session interface
type MockSession struct {
	mock.Mock
}

func (m *MockSession) Execute(stmt string, args ...interface{}) (int64, error) {
	ret := m.Called(stmt, args)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockSession) Select(dest interface{}, stmt string, args ...interface{}) (int64, error) {
	ret := m.Called(dest, stmt, args)
	return ret.Get(0).(int64), ret.Error(1)
}

// MockConnector hands out the same MockSession for every call
type MockConnector struct {
	mock.Mock
	session *MockSession
}

func (m *MockConnector) Session(ctx context.Context, fn func(Session) error) error {
	m.Called(ctx)
	return fn(m.session)
}

func (m *MockConnector) Close() error {
	return m.Called().Error(0)
}

func newMockDatabase(t *testing.T) (*Database, *MockConnector, *MockSession) {
	session := &MockSession{}
	conn := &MockConnector{session: session}

	db, err := New(conn, "sqlite", logrus.New())
	require.NoError(t, err)
	return db, conn, session
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(&MockConnector{}, "db2", nil)
	assert.Error(t, err)
}

func TestInvalidParametersNeverReachTheStore(t *testing.T) {
	db, conn, session := newMockDatabase(t)
	ctx := context.Background()
	start := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, models.BadParams, db.AddCustomer(ctx, models.Customer{ID: 2}))
	assert.Equal(t, models.BadParams, db.AddOwner(ctx, models.Owner{Name: "No id"}))
	assert.Equal(t, models.BadParams, db.AddApartment(ctx, models.Apartment{ID: 1, Address: "a", City: "b", Country: "c", Size: -1}))
	assert.Equal(t, models.BadParams, db.DeleteCustomer(ctx, -1))
	assert.Equal(t, models.BadParams, db.CustomerMadeReservation(ctx, 1, 1, start, end, 100))
	assert.Equal(t, models.BadParams, db.CustomerReviewedApartment(ctx, 1, 1, start, 0, "bad"))
	assert.Equal(t, models.BadParams, db.OwnerDropsApartment(ctx, 1, 0))
	assert.True(t, db.GetOwner(ctx, 0).IsBad())
	assert.Empty(t, db.GetApartmentRecommendation(ctx, -4))

	conn.AssertNotCalled(t, "Session", mock.Anything)
	session.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	session.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything)
}

func TestWriteResultMapping(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		err      error
		run      func(*Database) models.ReturnValue
		expected models.ReturnValue
	}{
		{
			name: "Insert succeeds",
			run: func(db *Database) models.ReturnValue {
				return db.AddOwner(context.Background(), models.Owner{ID: 1, Name: "Alice"})
			},
			affected: 1,
			expected: models.OK,
		},
		{
			name: "Unique violation",
			run: func(db *Database) models.ReturnValue {
				return db.AddOwner(context.Background(), models.Owner{ID: 1, Name: "Alice"})
			},
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			expected: models.AlreadyExists,
		},
		{
			name: "Driver failure",
			run: func(db *Database) models.ReturnValue {
				return db.AddCustomer(context.Background(), models.Customer{ID: 1, Name: "Dan"})
			},
			err:      errors.New("disk I/O error"),
			expected: models.Error,
		},
		{
			name: "Delete hits nothing",
			run: func(db *Database) models.ReturnValue {
				return db.DeleteApartment(context.Background(), 4)
			},
			affected: 0,
			expected: models.NotExists,
		},
		{
			name: "Overlapping reservation inserts nothing",
			run: func(db *Database) models.ReturnValue {
				start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
				return db.CustomerMadeReservation(context.Background(), 1, 1, start, start.AddDate(0, 0, 3), 90)
			},
			affected: 0,
			expected: models.BadParams,
		},
		{
			name: "Review without finished stay inserts nothing",
			run: func(db *Database) models.ReturnValue {
				return db.CustomerReviewedApartment(context.Background(), 1, 1, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 5, "ok")
			},
			affected: 0,
			expected: models.NotExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, conn, session := newMockDatabase(t)
			conn.On("Session", mock.Anything).Return()
			session.On("Execute", mock.Anything, mock.Anything).Return(tt.affected, tt.err).Once()

			assert.Equal(t, tt.expected, tt.run(db))

			// One scoped session per operation
			conn.AssertNumberOfCalls(t, "Session", 1)
			session.AssertExpectations(t)
		})
	}
}

func TestReservationStatementBindsDates(t *testing.T) {
	db, conn, session := newMockDatabase(t)
	conn.On("Session", mock.Anything).Return()
	session.On("Execute", mock.Anything, mock.Anything).Return(int64(1), nil).Once()

	start := time.Date(2023, 1, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, models.OK, db.CustomerMadeReservation(context.Background(), 3, 7, start, end, 300))

	args := session.Calls[0].Arguments.Get(1).([]interface{})
	assert.Equal(t, []interface{}{3, 7, "2023-01-01", "2023-01-10", 300.0, 7, "2023-01-10", "2023-01-01"}, args)
}

func TestReadFailureReturnsSentinel(t *testing.T) {
	db, conn, session := newMockDatabase(t)
	conn.On("Session", mock.Anything).Return()
	session.On("Select", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("connection refused"))

	ctx := context.Background()
	assert.True(t, db.GetOwner(ctx, 1).IsBad())
	assert.True(t, db.GetApartment(ctx, 1).IsBad())
	assert.True(t, db.GetTopCustomer(ctx).IsBad())
	assert.Zero(t, db.GetApartmentRating(ctx, 1))
	assert.Empty(t, db.ReservationsPerOwner(ctx))
	assert.Len(t, db.ProfitPerMonth(ctx, 2023), 12)
}

func TestClose(t *testing.T) {
	db, conn, _ := newMockDatabase(t)
	conn.On("Close").Return(nil).Once()

	assert.NoError(t, db.Close())
	conn.AssertExpectations(t)
}
