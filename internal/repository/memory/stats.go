package memory

import (
	"context"
	"slices"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

type statsRepo struct {
	s *Store
}

func (r *statsRepo) FlightsDepartingToday(_ context.Context) (int, error) {
	today := domain.CalendarDate(r.s.clock())
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, f := range r.s.flights {
		if f.DepartureDate == today {
			n++
		}
	}
	return n, nil
}

func (r *statsRepo) FlightStatusDistribution(_ context.Context) ([]domain.StatusCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[domain.FlightStatus]int)
	for _, f := range r.s.flights {
		counts[f.Status]++
	}
	return domain.CountStatuses(domain.FlightStatuses, counts), nil
}

func (r *statsRepo) GateStatusDistribution(_ context.Context) ([]domain.StatusCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[domain.GateStatus]int)
	for _, g := range r.s.gates {
		counts[g.Status]++
	}
	return domain.CountStatuses(domain.GateStatuses, counts), nil
}

func (r *statsRepo) EmployeeRoleDistribution(_ context.Context) ([]domain.RoleCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[domain.EmployeeRole]int)
	for _, e := range r.s.employees {
		counts[e.Role]++
	}
	return domain.CountRoles(counts), nil
}

func (r *statsRepo) PassengersPerFlight(_ context.Context) ([]domain.FlightPassengerCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[int64]int)
	for _, p := range r.s.passengers {
		if p.FlightID != nil {
			counts[*p.FlightID]++
		}
	}
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]domain.FlightPassengerCount, 0, len(ids))
	for _, id := range ids {
		number := domain.UnknownFlightNumber
		if f, ok := r.s.flights[id]; ok {
			number = f.FlightNumber
		}
		out = append(out, domain.FlightPassengerCount{FlightID: id, FlightNumber: number, PassengerCount: counts[id]})
	}
	return out, nil
}

func (r *statsRepo) DailyFlightTraffic(_ context.Context, days int) ([]domain.DailyTraffic, error) {
	dates, err := domain.TrafficDates(r.s.clock(), days)
	if err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]map[domain.FlightStatus]int)
	for _, f := range r.s.flights {
		if f.Status != domain.FlightArrived && f.Status != domain.FlightDeparted {
			continue
		}
		if counts[f.DepartureDate] == nil {
			counts[f.DepartureDate] = make(map[domain.FlightStatus]int)
		}
		counts[f.DepartureDate][f.Status]++
	}
	return domain.BuildDailyTraffic(dates, counts), nil
}

var _ repository.StatsRepository = (*statsRepo)(nil)
