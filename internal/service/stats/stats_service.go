package stats

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

type StatsUseCase interface {
	FlightsToday(ctx context.Context) (int, error)
	FlightStatus(ctx context.Context) ([]domain.StatusCount, error)
	GateStatus(ctx context.Context) ([]domain.StatusCount, error)
	PassengersPerFlight(ctx context.Context) ([]domain.FlightPassengerCount, error)
	DailyTraffic(ctx context.Context, days int) ([]domain.DailyTraffic, error)
	EmployeeRoles(ctx context.Context) ([]domain.RoleCount, error)
	Overview(ctx context.Context) (*domain.Overview, error)
}

type StatsService struct {
	stats      repository.StatsRepository
	passengers repository.PassengerRepository
}

func NewStatsService(stats repository.StatsRepository, passengers repository.PassengerRepository) *StatsService {
	return &StatsService{stats: stats, passengers: passengers}
}

func (s *StatsService) FlightsToday(ctx context.Context) (int, error) {
	return s.stats.FlightsDepartingToday(ctx)
}

func (s *StatsService) FlightStatus(ctx context.Context) ([]domain.StatusCount, error) {
	return s.stats.FlightStatusDistribution(ctx)
}

func (s *StatsService) GateStatus(ctx context.Context) ([]domain.StatusCount, error) {
	return s.stats.GateStatusDistribution(ctx)
}

func (s *StatsService) PassengersPerFlight(ctx context.Context) ([]domain.FlightPassengerCount, error) {
	return s.stats.PassengersPerFlight(ctx)
}

func (s *StatsService) DailyTraffic(ctx context.Context, days int) ([]domain.DailyTraffic, error) {
	if days > domain.MaxTrafficDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("must be at most %d", domain.MaxTrafficDays))
	}
	return s.stats.DailyFlightTraffic(ctx, days)
}

func (s *StatsService) EmployeeRoles(ctx context.Context) ([]domain.RoleCount, error) {
	return s.stats.EmployeeRoleDistribution(ctx)
}

func (s *StatsService) Overview(ctx context.Context) (*domain.Overview, error) {
	today, err := s.stats.FlightsDepartingToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("flights today: %w", err)
	}
	passengers, err := s.passengers.Count(ctx, domain.PassengerFilter{})
	if err != nil {
		return nil, fmt.Errorf("count passengers: %w", err)
	}
	flights, err := s.stats.FlightStatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("flight status: %w", err)
	}
	gates, err := s.stats.GateStatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("gate status: %w", err)
	}
	overview := domain.ComposeOverview(today, passengers, flights, gates)
	return &overview, nil
}

var _ StatsUseCase = (*StatsService)(nil)
