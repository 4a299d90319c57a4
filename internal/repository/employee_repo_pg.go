package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, first_name, last_name, email, phone, role, assigned_flight_id, assigned_gate_id`

type PGEmployeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) EmployeeRepository {
	return &PGEmployeeRepository{db: db}
}

func employeeFilter(f domain.EmployeeFilter) *filter {
	w := &filter{}
	if f.Role != "" {
		w.add("role = ?", string(f.Role))
	}
	return w
}

func scanEmployee(row rowScanner) (domain.Employee, error) {
	var (
		e    domain.Employee
		role string
	)
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &role, &e.AssignedFlightID, &e.AssignedGateID); err != nil {
		return e, err
	}
	e.Role = domain.EmployeeRole(role)
	return e, nil
}

func (r *PGEmployeeRepository) List(ctx context.Context, f domain.EmployeeFilter, page domain.Page) ([]domain.Employee, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	w := employeeFilter(f)
	limit, args := w.paginate(page)
	rows, err := r.db.Query(ctx, `SELECT `+employeeColumns+` FROM employees`+w.where()+` ORDER BY id`+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PGEmployeeRepository) Count(ctx context.Context, f domain.EmployeeFilter) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	w := employeeFilter(f)
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`+w.where(), w.args...).Scan(&n)
	return n, err
}

func (r *PGEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PGEmployeeRepository) Create(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `INSERT INTO employees (first_name, last_name, email, phone, role, assigned_flight_id, assigned_gate_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+employeeColumns,
		in.FirstName, in.LastName, in.Email, in.Phone, string(in.Role), in.AssignedFlightID, in.AssignedGateID)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

func (r *PGEmployeeRepository) Update(ctx context.Context, id int64, p domain.EmployeePatch) (*domain.Employee, error) {
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
	if p.Phone.Set {
		set.set("phone", p.Phone.Value)
	}
	if p.Role != nil {
		set.set("role", string(*p.Role))
	}
	if p.AssignedFlightID.Set {
		set.set("assigned_flight_id", p.AssignedFlightID.Value)
	}
	if p.AssignedGateID.Set {
		set.set("assigned_gate_id", p.AssignedGateID.Value)
	}

	query, args := set.update("employees", id, employeeColumns)
	e, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

func (r *PGEmployeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ EmployeeRepository = (*PGEmployeeRepository)(nil)
