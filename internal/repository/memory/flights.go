package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

type flightRepo struct {
	s *Store
}

func (r *flightRepo) List(_ context.Context, f domain.FlightFilter, page domain.Page, sort domain.Sort) ([]domain.Flight, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	sort, err := domain.NormalizeFlightSort(sort)
	if err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	rows := matching(r.s.flights, f.Matches)
	r.s.mu.RUnlock()

	slices.SortStableFunc(rows, func(a, b domain.Flight) int {
		c := compareFlights(a, b, sort.Field)
		if sort.Order == domain.SortDesc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	})
	return window(rows, page), nil
}

func compareFlights(a, b domain.Flight, field string) int {
	switch field {
	case "flightNumber":
		return strings.Compare(a.FlightNumber, b.FlightNumber)
	case "airline":
		return strings.Compare(a.Airline, b.Airline)
	case "origin":
		return strings.Compare(a.Origin, b.Origin)
	case "destination":
		return strings.Compare(a.Destination, b.Destination)
	case "departureDate":
		return strings.Compare(a.DepartureDate, b.DepartureDate)
	case "departureTime":
		return strings.Compare(a.DepartureTime, b.DepartureTime)
	case "status":
		return strings.Compare(string(a.Status), string(b.Status))
	case "gateId":
		return compareRefs(a.GateID, b.GateID)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}

func (r *flightRepo) Count(_ context.Context, f domain.FlightFilter) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, fl := range r.s.flights {
		if f.Matches(fl) {
			n++
		}
	}
	return n, nil
}

func (r *flightRepo) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getOne(r.s.flights, id), nil
}

func (r *flightRepo) GetByNumber(_ context.Context, number string) (*domain.Flight, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, f := range r.s.flights {
		if f.FlightNumber == number {
			return &f, nil
		}
	}
	return nil, nil
}

func (r *flightRepo) Create(_ context.Context, in domain.FlightInput) (*domain.Flight, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.flightNumberTaken(in.FlightNumber, 0) {
		return nil, domain.NewValidationError("flightNumber", "already exists")
	}
	f := in.Flight(r.s.nextFlight)
	r.s.nextFlight++
	r.s.flights[f.ID] = f
	return &f, nil
}

func (r *flightRepo) Update(_ context.Context, id int64, p domain.FlightPatch) (*domain.Flight, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.flights[id]
	if !ok {
		return nil, nil
	}
	if p.FlightNumber != nil && r.s.flightNumberTaken(*p.FlightNumber, id) {
		return nil, domain.NewValidationError("flightNumber", "already exists")
	}
	p.Apply(&f)
	r.s.flights[id] = f
	return &f, nil
}

func (r *flightRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.flights[id]; !ok {
		return false, nil
	}
	delete(r.s.flights, id)
	return true, nil
}

func (s *Store) flightNumberTaken(number string, except int64) bool {
	for id, f := range s.flights {
		if id != except && f.FlightNumber == number {
			return true
		}
	}
	return false
}

var _ repository.FlightRepository = (*flightRepo)(nil)
