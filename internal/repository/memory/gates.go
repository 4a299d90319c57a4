package memory

import (
	"context"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

type gateRepo struct {
	s *Store
}

func (r *gateRepo) List(_ context.Context, f domain.GateFilter, page domain.Page) ([]domain.Gate, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return window(matching(r.s.gates, f.Matches), page), nil
}

func (r *gateRepo) Count(_ context.Context, f domain.GateFilter) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(matching(r.s.gates, f.Matches)), nil
}

func (r *gateRepo) GetByID(_ context.Context, id int64) (*domain.Gate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getOne(r.s.gates, id), nil
}

func (r *gateRepo) GetByNumber(_ context.Context, number string) (*domain.Gate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, g := range r.s.gates {
		if g.GateNumber == number {
			return &g, nil
		}
	}
	return nil, nil
}

func (r *gateRepo) Create(_ context.Context, in domain.GateInput) (*domain.Gate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.gateNumberTaken(in.GateNumber, 0) {
		return nil, domain.NewValidationError("gateNumber", "already exists")
	}
	g := in.Gate(r.s.nextGate)
	r.s.nextGate++
	r.s.gates[g.ID] = g
	return &g, nil
}

func (r *gateRepo) Update(_ context.Context, id int64, p domain.GatePatch) (*domain.Gate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.gates[id]
	if !ok {
		return nil, nil
	}
	if p.GateNumber != nil && r.s.gateNumberTaken(*p.GateNumber, id) {
		return nil, domain.NewValidationError("gateNumber", "already exists")
	}
	p.Apply(&g)
	r.s.gates[id] = g
	return &g, nil
}

func (r *gateRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.gates[id]; !ok {
		return false, nil
	}
	delete(r.s.gates, id)
	return true, nil
}

func (s *Store) gateNumberTaken(number string, except int64) bool {
	for id, g := range s.gates {
		if id != except && g.GateNumber == number {
			return true
		}
	}
	return false
}

var _ repository.GateRepository = (*gateRepo)(nil)
