package memory

import (
	"context"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

type employeeRepo struct {
	s *Store
}

func (r *employeeRepo) List(_ context.Context, f domain.EmployeeFilter, page domain.Page) ([]domain.Employee, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return window(matching(r.s.employees, f.Matches), page), nil
}

func (r *employeeRepo) Count(_ context.Context, f domain.EmployeeFilter) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(matching(r.s.employees, f.Matches)), nil
}

func (r *employeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getOne(r.s.employees, id), nil
}

func (r *employeeRepo) Create(_ context.Context, in domain.EmployeeInput) (*domain.Employee, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.emailTaken(in.Email, 0) {
		return nil, domain.NewValidationError("email", "already exists")
	}
	e := in.Employee(r.s.nextEmployee)
	r.s.nextEmployee++
	r.s.employees[e.ID] = e
	return &e, nil
}

func (r *employeeRepo) Update(_ context.Context, id int64, p domain.EmployeePatch) (*domain.Employee, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	if p.Email != nil && r.s.emailTaken(*p.Email, id) {
		return nil, domain.NewValidationError("email", "already exists")
	}
	p.Apply(&e)
	r.s.employees[id] = e
	return &e, nil
}

func (r *employeeRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[id]; !ok {
		return false, nil
	}
	delete(r.s.employees, id)
	return true, nil
}

func (s *Store) emailTaken(email string, except int64) bool {
	for id, e := range s.employees {
		if id != except && e.Email == email {
			return true
		}
	}
	return false
}

var _ repository.EmployeeRepository = (*employeeRepo)(nil)
