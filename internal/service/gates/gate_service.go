package gates

import (
	"context"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/kafka"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/Domenick1991/airport-ops/internal/service/changes"
)

const entity = "gate"

type GateUseCase interface {
	List(ctx context.Context, filter domain.GateFilter, page domain.Page) ([]domain.Gate, int, error)
	Available(ctx context.Context) ([]domain.Gate, error)
	GetByID(ctx context.Context, id int64) (*domain.Gate, error)
	Create(ctx context.Context, input domain.GateInput) (*domain.Gate, error)
	Update(ctx context.Context, id int64, patch domain.GatePatch) (*domain.Gate, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type GateService struct {
	repo    repository.GateRepository
	changes *changes.Publisher
}

func NewGateService(repo repository.GateRepository, changes *changes.Publisher) *GateService {
	return &GateService{repo: repo, changes: changes}
}

func (s *GateService) List(ctx context.Context, filter domain.GateFilter, page domain.Page) ([]domain.Gate, int, error) {
	gates, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return gates, total, nil
}

// Available returns every gate whose status is available, walking the
// listing in pages of domain.MaxLimit.
func (s *GateService) Available(ctx context.Context) ([]domain.Gate, error) {
	filter := domain.GateFilter{Status: domain.GateAvailable}
	out := make([]domain.Gate, 0)
	for offset := 0; ; offset += domain.MaxLimit {
		page, err := s.repo.List(ctx, filter, domain.Page{Offset: offset, Limit: domain.MaxLimit})
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < domain.MaxLimit {
			return out, nil
		}
	}
}

func (s *GateService) GetByID(ctx context.Context, id int64) (*domain.Gate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GateService) Create(ctx context.Context, input domain.GateInput) (*domain.Gate, error) {
	gate, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.changes.Record(ctx, entity, kafka.ActionCreated, gate.ID, gate)
	return gate, nil
}

func (s *GateService) Update(ctx context.Context, id int64, patch domain.GatePatch) (*domain.Gate, error) {
	gate, err := s.repo.Update(ctx, id, patch)
	if err != nil || gate == nil {
		return gate, err
	}
	s.changes.Record(ctx, entity, kafka.ActionUpdated, gate.ID, gate)
	return gate, nil
}

func (s *GateService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.changes.Record(ctx, entity, kafka.ActionDeleted, id, nil)
	return true, nil
}

var _ GateUseCase = (*GateService)(nil)
