// Package memory is an in-process implementation of the repository
// interfaces. It is used for demos, tests and runs without PostgreSQL.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

// Store owns every table and the per-table id counters. Ids start at 1 and
// are never reused.
type Store struct {
	mu    sync.RWMutex
	clock repository.Clock
	seed  bool

	users      map[int64]domain.User
	flights    map[int64]domain.Flight
	gates      map[int64]domain.Gate
	employees  map[int64]domain.Employee
	passengers map[int64]domain.Passenger

	nextUser, nextFlight, nextGate, nextEmployee, nextPassenger int64
}

type Option func(*Store)

func WithClock(clock repository.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithSeed loads the demo dataset: three gates, two flights departing today,
// two employees and two passengers.
func WithSeed() Option {
	return func(s *Store) { s.seed = true }
}

func New(opts ...Option) *Store {
	s := &Store{
		clock:         repository.SystemClock,
		users:         make(map[int64]domain.User),
		flights:       make(map[int64]domain.Flight),
		gates:         make(map[int64]domain.Gate),
		employees:     make(map[int64]domain.Employee),
		passengers:    make(map[int64]domain.Passenger),
		nextUser:      1,
		nextFlight:    1,
		nextGate:      1,
		nextEmployee:  1,
		nextPassenger: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed {
		s.loadSeed()
	}
	return s
}

func (s *Store) Storage() repository.Storage {
	return repository.Storage{
		Users:      &userRepo{s: s},
		Flights:    &flightRepo{s: s},
		Gates:      &gateRepo{s: s},
		Employees:  &employeeRepo{s: s},
		Passengers: &passengerRepo{s: s},
		Stats:      &statsRepo{s: s},
	}
}

// matching returns the rows accepted by match ordered by id.
func matching[T any](rows map[int64]T, match func(T) bool) []T {
	ids := make([]int64, 0, len(rows))
	for id, row := range rows {
		if match(row) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = rows[id]
	}
	return out
}

func window[T any](rows []T, page domain.Page) []T {
	start, end := page.Window(len(rows))
	return slices.Clone(rows[start:end])
}

func getOne[T any](rows map[int64]T, id int64) *T {
	row, ok := rows[id]
	if !ok {
		return nil
	}
	return &row
}

func compareRefs(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
