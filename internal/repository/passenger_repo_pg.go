package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const passengerColumns = `id, first_name, last_name, email, flight_id, seat_number, checked_in`

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func passengerFilter(f domain.PassengerFilter) *filter {
	w := &filter{}
	if f.FlightID != nil {
		w.add("flight_id = ?", *f.FlightID)
	}
	return w
}

func scanPassenger(row rowScanner) (domain.Passenger, error) {
	var p domain.Passenger
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.FlightID, &p.SeatNumber, &p.CheckedIn)
	return p, err
}

func (r *PGPassengerRepository) List(ctx context.Context, f domain.PassengerFilter, page domain.Page) ([]domain.Passenger, error) {
	w := passengerFilter(f)
	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers`+w.where()+` ORDER BY id`+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) Count(ctx context.Context, f domain.PassengerFilter) (int, error) {
	w := passengerFilter(f)
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM passengers`+w.where(), w.args...).Scan(&n)
	return n, err
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	p, err := scanPassenger(r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGPassengerRepository) Create(ctx context.Context, in domain.PassengerInput) (*domain.Passenger, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name, email, flight_id, seat_number, checked_in)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+passengerColumns,
		in.FirstName, in.LastName, in.Email, in.FlightID, in.SeatNumber, in.CheckedIn)
	p, err := scanPassenger(row)
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) Update(ctx context.Context, id int64, p domain.PassengerPatch) (*domain.Passenger, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var set assignments
	if p.FirstName != nil {
		set.set("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		set.set("last_name", *p.LastName)
	}
	if p.Email != nil {
		set.set("email", *p.Email)
	}
	if p.FlightID.Set {
		set.set("flight_id", p.FlightID.Value)
	}
	if p.SeatNumber.Set {
		set.set("seat_number", p.SeatNumber.Value)
	}
	if p.CheckedIn != nil {
		set.set("checked_in", *p.CheckedIn)
	}

	query, args := set.update("passengers", id, passengerColumns)
	ps, err := scanPassenger(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &ps, nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
