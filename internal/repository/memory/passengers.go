package memory

import (
	"context"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

type passengerRepo struct {
	s *Store
}

func (r *passengerRepo) List(_ context.Context, f domain.PassengerFilter, page domain.Page) ([]domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return window(matching(r.s.passengers, f.Matches), page), nil
}

func (r *passengerRepo) Count(_ context.Context, f domain.PassengerFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(matching(r.s.passengers, f.Matches)), nil
}

func (r *passengerRepo) GetByID(_ context.Context, id int64) (*domain.Passenger, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getOne(r.s.passengers, id), nil
}

func (r *passengerRepo) Create(_ context.Context, in domain.PassengerInput) (*domain.Passenger, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p := in.Passenger(r.s.nextPassenger)
	r.s.nextPassenger++
	r.s.passengers[p.ID] = p
	return &p, nil
}

func (r *passengerRepo) Update(_ context.Context, id int64, patch domain.PassengerPatch) (*domain.Passenger, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.passengers[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&p)
	r.s.passengers[id] = p
	return &p, nil
}

func (r *passengerRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.passengers[id]; !ok {
		return false, nil
	}
	delete(r.s.passengers, id)
	return true, nil
}

var _ repository.PassengerRepository = (*passengerRepo)(nil)
