package repository

import (
	"testing"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightFilterSQL(t *testing.T) {
	w := flightFilter(domain.FlightFilter{Search: "50%_off", Status: domain.FlightDelayed})
	assert.Equal(t, " WHERE (flight_number ILIKE $1 OR origin ILIKE $1 OR destination ILIKE $1) AND status = $2", w.where())
	assert.Equal(t, []any{`%50\%\_off%`, "delayed"}, w.args)

	limit, args := w.paginate(domain.Page{Offset: -5, Limit: 0})
	assert.Equal(t, " LIMIT $3 OFFSET $4", limit)
	assert.Equal(t, []any{`%50\%\_off%`, "delayed", 10, 0}, args)

	assert.Empty(t, flightFilter(domain.FlightFilter{}).where())
}

func TestAssignmentsUpdate(t *testing.T) {
	var set assignments
	set.set("terminal", "B")
	set.set("current_flight_id", (*int64)(nil))

	query, args := set.update("gates", 7, gateColumns)
	assert.Equal(t, "UPDATE gates SET terminal = $1, current_flight_id = $2 WHERE id = $3 RETURNING "+gateColumns, query)
	assert.Equal(t, []any{"B", (*int64)(nil), int64(7)}, args)
}

func TestClockRoundTrip(t *testing.T) {
	c, err := clockParam("10:30:05")
	require.NoError(t, err)
	assert.True(t, c.Valid)
	assert.Equal(t, "10:30:05", formatClock(c))

	_, err = clockParam("25:00:00")
	assert.True(t, domain.IsValidationError(err))
}

func TestTranslateUniqueViolation(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "flights_flight_number_key"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "flightNumber", verr.Fields[0].Field)

	other := &pgconn.PgError{Code: "42P01"}
	assert.Same(t, other, translateError(other))
}
