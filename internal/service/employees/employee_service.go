package employees

import (
	"context"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/kafka"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/Domenick1991/airport-ops/internal/service/changes"
)

const entity = "employee"

type EmployeeUseCase interface {
	List(ctx context.Context, filter domain.EmployeeFilter, page domain.Page) ([]domain.Employee, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id int64, patch domain.EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeService struct {
	repo    repository.EmployeeRepository
	changes *changes.Publisher
}

func NewEmployeeService(repo repository.EmployeeRepository, changes *changes.Publisher) *EmployeeService {
	return &EmployeeService{repo: repo, changes: changes}
}

func (s *EmployeeService) List(ctx context.Context, filter domain.EmployeeFilter, page domain.Page) ([]domain.Employee, int, error) {
	employees, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error) {
	employee, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.changes.Record(ctx, entity, kafka.ActionCreated, employee.ID, employee)
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, patch domain.EmployeePatch) (*domain.Employee, error) {
	employee, err := s.repo.Update(ctx, id, patch)
	if err != nil || employee == nil {
		return employee, err
	}
	s.changes.Record(ctx, entity, kafka.ActionUpdated, employee.ID, employee)
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.changes.Record(ctx, entity, kafka.ActionDeleted, id, nil)
	return true, nil
}

var _ EmployeeUseCase = (*EmployeeService)(nil)
