package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// uniqueFields maps unique constraint names from the migrations to the JSON
// field reported back to the caller.
var uniqueFields = map[string]string{
	"users_username_key":        "username",
	"flights_flight_number_key": "flightNumber",
	"gates_gate_number_key":     "gateNumber",
	"employees_email_key":       "email",
}

// NewPGStorage wires every PostgreSQL repository over one pool.
func NewPGStorage(db *pgxpool.Pool, opts ...Option) Storage {
	return Storage{
		Users:      NewUserRepository(db),
		Flights:    NewFlightRepository(db),
		Gates:      NewGateRepository(db),
		Employees:  NewEmployeeRepository(db),
		Passengers: NewPassengerRepository(db),
		Stats:      NewStatsRepository(db, opts...),
	}
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		field, ok := uniqueFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return domain.NewValidationError(field, "already exists")
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// filter accumulates WHERE clauses; "?" in an expression is replaced with the
// placeholder of the argument it binds.
type filter struct {
	clauses []string
	args    []any
}

func (f *filter) add(expr string, arg any) {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, strings.ReplaceAll(expr, "?", fmt.Sprintf("$%d", len(f.args))))
}

func (f *filter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// paginate appends LIMIT/OFFSET placeholders to the filter arguments.
func (f *filter) paginate(page domain.Page) (string, []any) {
	page = page.Normalize()
	args := append(append([]any{}, f.args...), page.Limit, page.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

type assignments struct {
	cols []string
	args []any
}

func (a *assignments) set(col string, arg any) {
	a.args = append(a.args, arg)
	a.cols = append(a.cols, fmt.Sprintf("%s = $%d", col, len(a.args)))
}

func (a *assignments) update(table string, id int64, returning string) (string, []any) {
	args := append(append([]any{}, a.args...), id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(a.cols, ", "), len(args), returning), args
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func dateParam(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("departureDate", "must be a date formatted YYYY-MM-DD")
	}
	return t, nil
}

func clockParam(s string) (pgtype.Time, error) {
	t, err := time.Parse(domain.ClockLayout, s)
	if err != nil {
		return pgtype.Time{}, domain.NewValidationError("departureTime", "must be a time formatted HH:MM or HH:MM:SS")
	}
	secs := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return pgtype.Time{Microseconds: secs * int64(time.Second/time.Microsecond), Valid: true}, nil
}

func formatClock(t pgtype.Time) string {
	secs := t.Microseconds / int64(time.Second/time.Microsecond)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
