package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) FlightsDepartingToday(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) FlightStatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockStatsRepository) GateStatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockStatsRepository) EmployeeRoleDistribution(ctx context.Context) ([]domain.RoleCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleCount), args.Error(1)
}

func (m *MockStatsRepository) PassengersPerFlight(ctx context.Context) ([]domain.FlightPassengerCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightPassengerCount), args.Error(1)
}

func (m *MockStatsRepository) DailyFlightTraffic(ctx context.Context, days int) ([]domain.DailyTraffic, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTraffic), args.Error(1)
}

func TestStatsService_OverviewFromSeed(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	storage := memory.New(memory.WithClock(func() time.Time { return now }), memory.WithSeed()).Storage()
	service := NewStatsService(storage.Stats, storage.Passengers)

	overview, err := service.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &domain.Overview{
		FlightsToday:     2,
		TotalPassengers:  2,
		OnTimePercentage: 50,
		ActiveGates:      "2/3",
	}, overview)
}

func TestStatsService_OverviewError(t *testing.T) {
	repo := &MockStatsRepository{}
	ctx := context.Background()
	repo.On("FlightsDepartingToday", ctx).Return(0, errors.New("db down")).Once()

	_, err := NewStatsService(repo, memory.New().Storage().Passengers).Overview(ctx)

	assert.ErrorContains(t, err, "flights today: db down")
}

func TestStatsService_DailyTrafficBounds(t *testing.T) {
	repo := &MockStatsRepository{}
	service := NewStatsService(repo, nil)
	ctx := context.Background()

	_, err := service.DailyTraffic(ctx, domain.MaxTrafficDays+1)
	assert.True(t, domain.IsValidationError(err))

	traffic := []domain.DailyTraffic{{Date: "2025-03-10"}}
	repo.On("DailyFlightTraffic", ctx, 1).Return(traffic, nil).Once()
	got, err := service.DailyTraffic(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, traffic, got)
	repo.AssertExpectations(t)
}
