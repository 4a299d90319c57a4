package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gateColumns = `id, gate_number, terminal, status, current_flight_id`

type PGGateRepository struct {
	db *pgxpool.Pool
}

func NewGateRepository(db *pgxpool.Pool) GateRepository {
	return &PGGateRepository{db: db}
}

func gateFilter(f domain.GateFilter) *filter {
	w := &filter{}
	if f.Status != "" {
		w.add("status = ?", string(f.Status))
	}
	return w
}

func scanGate(row rowScanner) (domain.Gate, error) {
	var (
		g      domain.Gate
		status string
	)
	if err := row.Scan(&g.ID, &g.GateNumber, &g.Terminal, &status, &g.CurrentFlightID); err != nil {
		return g, err
	}
	g.Status = domain.GateStatus(status)
	return g, nil
}

func (r *PGGateRepository) List(ctx context.Context, f domain.GateFilter, page domain.Page) ([]domain.Gate, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	w := gateFilter(f)
	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT `+gateColumns+` FROM gates`+w.where()+` ORDER BY id`+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gates := make([]domain.Gate, 0)
	for rows.Next() {
		g, err := scanGate(rows)
		if err != nil {
			return nil, err
		}
		gates = append(gates, g)
	}
	return gates, rows.Err()
}

func (r *PGGateRepository) Count(ctx context.Context, f domain.GateFilter) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	w := gateFilter(f)
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM gates`+w.where(), w.args...).Scan(&n)
	return n, err
}

func (r *PGGateRepository) GetByID(ctx context.Context, id int64) (*domain.Gate, error) {
	return r.getOne(ctx, `SELECT `+gateColumns+` FROM gates WHERE id = $1`, id)
}

func (r *PGGateRepository) GetByNumber(ctx context.Context, number string) (*domain.Gate, error) {
	return r.getOne(ctx, `SELECT `+gateColumns+` FROM gates WHERE gate_number = $1`, number)
}

func (r *PGGateRepository) getOne(ctx context.Context, query string, arg any) (*domain.Gate, error) {
	g, err := scanGate(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PGGateRepository) Create(ctx context.Context, in domain.GateInput) (*domain.Gate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `INSERT INTO gates (gate_number, terminal, status, current_flight_id)
		VALUES ($1, $2, $3, $4) RETURNING `+gateColumns,
		in.GateNumber, in.Terminal, string(in.Status), in.CurrentFlightID)
	g, err := scanGate(row)
	if err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

func (r *PGGateRepository) Update(ctx context.Context, id int64, p domain.GatePatch) (*domain.Gate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var set assignments
	if p.GateNumber != nil {
		set.set("gate_number", *p.GateNumber)
	}
	if p.Terminal != nil {
		set.set("terminal", *p.Terminal)
	}
	if p.Status != nil {
		set.set("status", string(*p.Status))
	}
	if p.CurrentFlightID.Set {
		set.set("current_flight_id", p.CurrentFlightID.Value)
	}

	query, args := set.update("gates", id, gateColumns)
	g, err := scanGate(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

func (r *PGGateRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM gates WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ GateRepository = (*PGGateRepository)(nil)
