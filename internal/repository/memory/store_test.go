package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/Domenick1991/airport-ops/internal/repository/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	repotest.RunStorageContract(t, func(t *testing.T, clock repository.Clock) repository.Storage {
		return New(WithClock(clock)).Storage()
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := New(WithClock(func() time.Time { return repotest.Now }), WithSeed()).Storage()

	gates, err := s.Gates.List(ctx, domain.GateFilter{Status: domain.GateAvailable}, domain.Page{})
	require.NoError(t, err)
	require.Len(t, gates, 1)
	assert.Equal(t, "A2", gates[0].GateNumber)

	a1, err := s.Gates.GetByNumber(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, a1.CurrentFlightID)

	flight, err := s.Flights.GetByID(ctx, *a1.CurrentFlightID)
	require.NoError(t, err)
	assert.Equal(t, "AA1234", flight.FlightNumber)

	today, err := s.Stats.FlightsDepartingToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, today)

	perFlight, err := s.Stats.PassengersPerFlight(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.FlightPassengerCount{{FlightID: 1, FlightNumber: "AA1234", PassengerCount: 2}}, perFlight)

	roles, err := s.Stats.EmployeeRoleDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.RoleCount{
		{Role: domain.RolePilot, Count: 1},
		{Role: domain.RoleFlightAttendant, Count: 1},
	}, roles)

	// the seed consumes ids, new rows continue after it
	g, err := s.Gates.Create(ctx, domain.GateInput{GateNumber: "C1", Terminal: "C", Status: domain.GateClosed})
	require.NoError(t, err)
	assert.Equal(t, int64(4), g.ID)
}

func TestStoreConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := New().Storage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Passengers.Create(ctx, domain.PassengerInput{FirstName: "A", LastName: "B", Email: "a@b.com"})
			_, _ = s.Passengers.Count(ctx, domain.PassengerFilter{})
		}()
	}
	wg.Wait()

	n, err := s.Passengers.Count(ctx, domain.PassengerFilter{})
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
