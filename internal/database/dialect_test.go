package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	sqliteDialect, err := dialectFor("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "?", sqliteDialect.date)
	assert.Equal(t, "CAST(strftime('%m', r.end_date) AS INTEGER)", sqliteDialect.month("r.end_date"))
	assert.Equal(t, "(julianday(end_date) - julianday(start_date))", sqliteDialect.days("start_date", "end_date"))
	assert.Equal(t, "MAX(1, MIN(10, x))", sqliteDialect.clamp("x", 1, 10))

	pgDialect, err := dialectFor("postgres")
	require.NoError(t, err)
	assert.Equal(t, "CAST(? AS DATE)", pgDialect.date)
	assert.Equal(t, "CAST(EXTRACT(YEAR FROM r.end_date) AS INTEGER)", pgDialect.year("r.end_date"))
	assert.Equal(t, "(end_date - start_date)", pgDialect.days("start_date", "end_date"))
	assert.Equal(t, "GREATEST(1, LEAST(10, x))", pgDialect.clamp("x", 1, 10))

	_, err = dialectFor("mysql")
	assert.Error(t, err)
}
