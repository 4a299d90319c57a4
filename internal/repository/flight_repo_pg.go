package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flightColumns = `id, flight_number, airline, origin, destination, departure_date, departure_time, gate_id, status`

var flightSortColumns = map[string]string{
	"id":            "id",
	"flightNumber":  `flight_number COLLATE "C"`,
	"airline":       `airline COLLATE "C"`,
	"origin":        `origin COLLATE "C"`,
	"destination":   `destination COLLATE "C"`,
	"departureDate": "departure_date",
	"departureTime": "departure_time",
	"status":        `status COLLATE "C"`,
	"gateId":        "gate_id",
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func flightFilter(f domain.FlightFilter) *filter {
	w := &filter{}
	if f.Search != "" {
		w.add(`(flight_number ILIKE ? OR origin ILIKE ? OR destination ILIKE ?)`, likePattern(f.Search))
	}
	if f.Status != "" {
		w.add("status = ?", string(f.Status))
	}
	return w
}

func scanFlight(row rowScanner) (domain.Flight, error) {
	var (
		f      domain.Flight
		date   time.Time
		clock  pgtype.Time
		status string
	)
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.Origin, &f.Destination, &date, &clock, &f.GateID, &status); err != nil {
		return f, err
	}
	f.DepartureDate = date.Format(domain.DateLayout)
	f.DepartureTime = formatClock(clock)
	f.Status = domain.FlightStatus(status)
	return f, nil
}

func (r *PGFlightRepository) List(ctx context.Context, f domain.FlightFilter, page domain.Page, sort domain.Sort) ([]domain.Flight, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	sort, err := domain.NormalizeFlightSort(sort)
	if err != nil {
		return nil, err
	}
	w := flightFilter(f)
	limit, args := w.paginate(page)
	order := fmt.Sprintf(" ORDER BY %s %s, id ASC", flightSortColumns[sort.Field], sort.Order)

	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights`+w.where()+order+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		fl, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, fl)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Count(ctx context.Context, f domain.FlightFilter) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	w := flightFilter(f)
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`+w.where(), w.args...).Scan(&n)
	return n, err
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return r.getOne(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = $1`, id)
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	return r.getOne(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_number = $1`, number)
}

func (r *PGFlightRepository) getOne(ctx context.Context, query string, arg any) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, in domain.FlightInput) (*domain.Flight, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	date, err := dateParam(in.DepartureDate)
	if err != nil {
		return nil, err
	}
	clock, err := clockParam(in.DepartureTime)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline, origin, destination, departure_date, departure_time, gate_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+flightColumns,
		in.FlightNumber, in.Airline, in.Origin, in.Destination, date, clock, in.GateID, string(in.Status))
	f, err := scanFlight(row)
	if err != nil {
		return nil, translateError(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Update(ctx context.Context, id int64, p domain.FlightPatch) (*domain.Flight, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var set assignments
	if p.FlightNumber != nil {
		set.set("flight_number", *p.FlightNumber)
	}
	if p.Airline != nil {
		set.set("airline", *p.Airline)
	}
	if p.Origin != nil {
		set.set("origin", *p.Origin)
	}
	if p.Destination != nil {
		set.set("destination", *p.Destination)
	}
	if p.DepartureDate != nil {
		date, err := dateParam(*p.DepartureDate)
		if err != nil {
			return nil, err
		}
		set.set("departure_date", date)
	}
	if p.DepartureTime != nil {
		clock, err := clockParam(*p.DepartureTime)
		if err != nil {
			return nil, err
		}
		set.set("departure_time", clock)
	}
	if p.GateID.Set {
		set.set("gate_id", p.GateID.Value)
	}
	if p.Status != nil {
		set.set("status", string(*p.Status))
	}

	query, args := set.update("flights", id, flightColumns)
	f, err := scanFlight(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
