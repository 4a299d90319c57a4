// Package repotest holds the behavioural suite every repository.Storage
// implementation must pass.
package repotest

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Now is the fixed instant the suite hands to storages as their clock.
var Now = time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

const Today = "2025-03-10"

// Factory returns an empty storage whose statistics use clock as "today".
type Factory func(t *testing.T, clock repository.Clock) repository.Storage

func RunStorageContract(t *testing.T, newStorage Factory) {
	clock := func() time.Time { return Now }

	cases := []struct {
		name string
		run  func(t *testing.T, s repository.Storage)
	}{
		{"created ids are unique", createdIDsUnique},
		{"empty patch returns record unchanged", emptyPatchUnchanged},
		{"delete removes record once", deleteOnce},
		{"update of missing record is absent", updateMissing},
		{"list respects limit and count matches", listAndCount},
		{"flight search and status filter", flightSearch},
		{"flight sort with ties", flightSort},
		{"unknown sort key rejected", unknownSort},
		{"duplicate flight number rejected", duplicateFlightNumber},
		{"duplicate on update rejected", duplicateOnUpdate},
		{"nullable patch clears and keeps", nullablePatch},
		{"departure time normalized", departureTimeNormalized},
		{"invalid input rejected", invalidInput},
		{"available gates filter", availableGates},
		{"employee role filter and distribution", employeeRoles},
		{"passenger flight filter", passengerFilter},
		{"deleting flight keeps passengers", deleteFlightKeepsPassengers},
		{"flight status distribution", flightStatusDistribution},
		{"gate status distribution", gateStatusDistribution},
		{"flights departing today", flightsToday},
		{"daily traffic window", dailyTrafficWindow},
		{"daily traffic counts arrived and departed by departure date", dailyTrafficCounts},
		{"daily traffic rejects non-positive days", dailyTrafficInvalid},
		{"users", users},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t, newStorage(t, clock))
		})
	}
}

func flightInput(number, date string, status domain.FlightStatus) domain.FlightInput {
	return domain.FlightInput{
		FlightNumber:  number,
		Airline:       "Test Air",
		Origin:        "Origin " + number,
		Destination:   "Destination " + number,
		DepartureDate: date,
		DepartureTime: "08:00:00",
		Status:        status,
	}
}

func mustFlight(t *testing.T, s repository.Storage, in domain.FlightInput) *domain.Flight {
	t.Helper()
	f, err := s.Flights.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

func mustGate(t *testing.T, s repository.Storage, number, terminal string, status domain.GateStatus) *domain.Gate {
	t.Helper()
	g, err := s.Gates.Create(context.Background(), domain.GateInput{GateNumber: number, Terminal: terminal, Status: status})
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

func mustPassenger(t *testing.T, s repository.Storage, flightID *int64) *domain.Passenger {
	t.Helper()
	p, err := s.Passengers.Create(context.Background(), domain.PassengerInput{
		FirstName: "Pat", LastName: "Traveler", Email: "pat@example.com", FlightID: flightID,
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func mustEmployee(t *testing.T, s repository.Storage, email string, role domain.EmployeeRole) *domain.Employee {
	t.Helper()
	e, err := s.Employees.Create(context.Background(), domain.EmployeeInput{
		FirstName: "Sam", LastName: "Crew", Email: email, Role: role,
	})
	require.NoError(t, err)
	require.NotNil(t, e)
	return e
}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, field)
}

func createdIDsUnique(t *testing.T, s repository.Storage) {
	seen := make(map[int64]bool)
	for _, n := range []string{"AA1", "AA2", "AA3", "AA4"} {
		f := mustFlight(t, s, flightInput(n, Today, domain.FlightScheduled))
		assert.False(t, seen[f.ID], "id %d reused", f.ID)
		seen[f.ID] = true
	}
	g1 := mustGate(t, s, "A1", "A", domain.GateAvailable)
	g2 := mustGate(t, s, "A2", "A", domain.GateAvailable)
	assert.NotEqual(t, g1.ID, g2.ID)
}

func emptyPatchUnchanged(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	f := mustFlight(t, s, flightInput("AA1", Today, domain.FlightScheduled))
	got, err := s.Flights.Update(ctx, f.ID, domain.FlightPatch{})
	require.NoError(t, err)
	assert.Equal(t, f, got)

	g := mustGate(t, s, "A1", "A", domain.GateAvailable)
	gotGate, err := s.Gates.Update(ctx, g.ID, domain.GatePatch{})
	require.NoError(t, err)
	assert.Equal(t, g, gotGate)
}

func deleteOnce(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	f := mustFlight(t, s, flightInput("AA1", Today, domain.FlightScheduled))

	ok, err := s.Flights.Delete(ctx, f.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Flights.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = s.Flights.Delete(ctx, f.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	e := mustEmployee(t, s, "crew@airport.com", domain.RolePilot)
	ok, err = s.Employees.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Employees.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// ids are not reused after a delete
	next := mustFlight(t, s, flightInput("AA2", Today, domain.FlightScheduled))
	assert.NotEqual(t, f.ID, next.ID)
}

func updateMissing(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	got, err := s.Flights.Update(ctx, 4242, domain.FlightPatch{Airline: domain.Ptr("Other")})
	require.NoError(t, err)
	assert.Nil(t, got)

	gate, err := s.Gates.Update(ctx, 4242, domain.GatePatch{Terminal: domain.Ptr("Z")})
	require.NoError(t, err)
	assert.Nil(t, gate)

	p, err := s.Passengers.Update(ctx, 4242, domain.PassengerPatch{CheckedIn: domain.Ptr(true)})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func listAndCount(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		status := domain.FlightScheduled
		if i%3 == 0 {
			status = domain.FlightDelayed
		}
		mustFlight(t, s, flightInput("FL"+string(rune('A'+i)), Today, status))
	}

	first, err := s.Flights.List(ctx, domain.FlightFilter{}, domain.Page{Limit: 10}, domain.Sort{})
	require.NoError(t, err)
	assert.Len(t, first, 10)

	rest, err := s.Flights.List(ctx, domain.FlightFilter{}, domain.Page{Offset: 10, Limit: 10}, domain.Sort{})
	require.NoError(t, err)
	assert.Len(t, rest, 5)
	assert.Less(t, first[9].ID, rest[0].ID)

	unbounded, err := s.Flights.List(ctx, domain.FlightFilter{}, domain.Page{Offset: 1, Limit: math.MaxInt}, domain.Sort{})
	require.NoError(t, err)
	assert.Len(t, unbounded, 14)

	beyond, err := s.Flights.List(ctx, domain.FlightFilter{}, domain.Page{Offset: 50, Limit: 10}, domain.Sort{})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	total, err := s.Flights.Count(ctx, domain.FlightFilter{})
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	delayed := domain.FlightFilter{Status: domain.FlightDelayed}
	n, err := s.Flights.Count(ctx, delayed)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	list, err := s.Flights.List(ctx, delayed, domain.Page{Limit: 100}, domain.Sort{})
	require.NoError(t, err)
	assert.Len(t, list, n)
}

func flightSearch(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	in := flightInput("AA1234", Today, domain.FlightScheduled)
	in.Origin, in.Destination = "New York (JFK)", "Los Angeles (LAX)"
	mustFlight(t, s, in)
	in = flightInput("UA2567", Today, domain.FlightDelayed)
	in.Origin, in.Destination = "Chicago (ORD)", "San Francisco (SFO)"
	mustFlight(t, s, in)

	got, err := s.Flights.List(ctx, domain.FlightFilter{Search: "aa12"}, domain.Page{}, domain.Sort{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AA1234", got[0].FlightNumber)

	got, err = s.Flights.List(ctx, domain.FlightFilter{Search: "francisco"}, domain.Page{}, domain.Sort{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "UA2567", got[0].FlightNumber)

	n, err := s.Flights.Count(ctx, domain.FlightFilter{Search: "(", Status: domain.FlightScheduled})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Flights.Count(ctx, domain.FlightFilter{Search: "%"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	byNumber, err := s.Flights.GetByNumber(ctx, "UA2567")
	require.NoError(t, err)
	require.NotNil(t, byNumber)
	assert.Equal(t, "delayed", string(byNumber.Status))

	missing, err := s.Flights.GetByNumber(ctx, "ZZ0000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func flightSort(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	a := mustFlight(t, s, flightInput("CC1", "2025-03-09", domain.FlightScheduled))
	b := mustFlight(t, s, flightInput("AA1", "2025-03-11", domain.FlightScheduled))
	c := mustFlight(t, s, flightInput("BB1", "2025-03-09", domain.FlightScheduled))

	got, err := s.Flights.List(ctx, domain.FlightFilter{}, domain.Page{}, domain.Sort{Field: "flightNumber"})
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, c.ID, a.ID}, flightIDs(got))

	got, err = s.Flights.List(ctx, domain.FlightFilter{}, domain.Page{}, domain.Sort{Field: "departureDate", Order: domain.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, a.ID, c.ID}, flightIDs(got))

	got, err = s.Flights.List(ctx, domain.FlightFilter{}, domain.Page{}, domain.Sort{Order: domain.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID, b.ID, a.ID}, flightIDs(got))
}

func flightIDs(flights []domain.Flight) []int64 {
	ids := make([]int64, len(flights))
	for i, f := range flights {
		ids[i] = f.ID
	}
	return ids
}

func unknownSort(t *testing.T, s repository.Storage) {
	_, err := s.Flights.List(context.Background(), domain.FlightFilter{}, domain.Page{}, domain.Sort{Field: "price"})
	requireValidation(t, err, "sort")

	_, err = s.Flights.List(context.Background(), domain.FlightFilter{}, domain.Page{}, domain.Sort{Field: "id", Order: "sideways"})
	requireValidation(t, err, "order")
}

func duplicateFlightNumber(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	mustFlight(t, s, flightInput("AA1234", Today, domain.FlightScheduled))

	dup, err := s.Flights.Create(ctx, flightInput("AA1234", "2025-04-01", domain.FlightDelayed))
	requireValidation(t, err, "flightNumber")
	assert.Nil(t, dup)

	n, err := s.Flights.Count(ctx, domain.FlightFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mustGate(t, s, "A1", "A", domain.GateAvailable)
	_, err = s.Gates.Create(ctx, domain.GateInput{GateNumber: "A1", Terminal: "B", Status: domain.GateClosed})
	requireValidation(t, err, "gateNumber")

	mustEmployee(t, s, "crew@airport.com", domain.RolePilot)
	_, err = s.Employees.Create(ctx, domain.EmployeeInput{FirstName: "A", LastName: "B", Email: "crew@airport.com", Role: domain.RoleSecurity})
	requireValidation(t, err, "email")
}

func duplicateOnUpdate(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	mustFlight(t, s, flightInput("AA1", Today, domain.FlightScheduled))
	second := mustFlight(t, s, flightInput("AA2", Today, domain.FlightScheduled))

	_, err := s.Flights.Update(ctx, second.ID, domain.FlightPatch{FlightNumber: domain.Ptr("AA1")})
	requireValidation(t, err, "flightNumber")

	got, err := s.Flights.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "AA2", got.FlightNumber)

	// renaming a record to its own value is not a collision
	same, err := s.Flights.Update(ctx, second.ID, domain.FlightPatch{FlightNumber: domain.Ptr("AA2")})
	require.NoError(t, err)
	assert.Equal(t, "AA2", same.FlightNumber)
}

func nullablePatch(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	gate := mustGate(t, s, "A1", "A", domain.GateAvailable)
	in := flightInput("AA1", Today, domain.FlightScheduled)
	in.GateID = &gate.ID
	f := mustFlight(t, s, in)
	require.NotNil(t, f.GateID)

	kept, err := s.Flights.Update(ctx, f.ID, domain.FlightPatch{Airline: domain.Ptr("Other Air")})
	require.NoError(t, err)
	require.NotNil(t, kept.GateID)
	assert.Equal(t, gate.ID, *kept.GateID)
	assert.Equal(t, "Other Air", kept.Airline)

	cleared, err := s.Flights.Update(ctx, f.ID, domain.FlightPatch{GateID: domain.Null[int64]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.GateID)

	e := mustEmployee(t, s, "crew@airport.com", domain.RoleGateAgent)
	withPhone, err := s.Employees.Update(ctx, e.ID, domain.EmployeePatch{Phone: domain.Some("555-0100")})
	require.NoError(t, err)
	require.NotNil(t, withPhone.Phone)
	assert.Equal(t, "555-0100", *withPhone.Phone)
	noPhone, err := s.Employees.Update(ctx, e.ID, domain.EmployeePatch{Phone: domain.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, noPhone.Phone)
}

func departureTimeNormalized(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	in := flightInput("AA1", Today, domain.FlightScheduled)
	in.DepartureTime = "09:15"
	f := mustFlight(t, s, in)
	assert.Equal(t, "09:15:00", f.DepartureTime)
	assert.Equal(t, Today, f.DepartureDate)

	got, err := s.Flights.Update(ctx, f.ID, domain.FlightPatch{DepartureTime: domain.Ptr("23:59")})
	require.NoError(t, err)
	assert.Equal(t, "23:59:00", got.DepartureTime)
}

func invalidInput(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	in := flightInput("AA1", Today, "boarding")
	_, err := s.Flights.Create(ctx, in)
	requireValidation(t, err, "status")

	in = flightInput("AA12345678901", Today, domain.FlightScheduled)
	_, err = s.Flights.Create(ctx, in)
	requireValidation(t, err, "flightNumber")

	in = flightInput("AA1", "10/03/2025", domain.FlightScheduled)
	_, err = s.Flights.Create(ctx, in)
	requireValidation(t, err, "departureDate")

	_, err = s.Gates.Create(ctx, domain.GateInput{GateNumber: "A1", Status: domain.GateAvailable})
	requireValidation(t, err, "terminal")

	_, err = s.Passengers.Create(ctx, domain.PassengerInput{FirstName: "A", LastName: "B", Email: "not-an-email"})
	requireValidation(t, err, "email")

	n, err := s.Flights.Count(ctx, domain.FlightFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func availableGates(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	a1 := mustGate(t, s, "A1", "A", domain.GateAvailable)
	a2 := mustGate(t, s, "A2", "A", domain.GateAvailable)
	in := flightInput("AA1234", Today, domain.FlightScheduled)
	in.GateID = &a1.ID
	f := mustFlight(t, s, in)

	occupied := domain.GateOccupied
	_, err := s.Gates.Update(ctx, a1.ID, domain.GatePatch{Status: &occupied, CurrentFlightID: domain.Some(f.ID)})
	require.NoError(t, err)

	available, err := s.Gates.List(ctx, domain.GateFilter{Status: domain.GateAvailable}, domain.Page{Limit: 100})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, a2.ID, available[0].ID)

	got, err := s.Gates.GetByNumber(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, got.CurrentFlightID)
	assert.Equal(t, f.ID, *got.CurrentFlightID)
}

func employeeRoles(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	mustEmployee(t, s, "a@airport.com", domain.RoleSecurity)
	mustEmployee(t, s, "b@airport.com", domain.RolePilot)
	mustEmployee(t, s, "c@airport.com", domain.RoleSecurity)

	pilots, err := s.Employees.List(ctx, domain.EmployeeFilter{Role: domain.RolePilot}, domain.Page{})
	require.NoError(t, err)
	assert.Len(t, pilots, 1)

	n, err := s.Employees.Count(ctx, domain.EmployeeFilter{Role: domain.RoleSecurity})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dist, err := s.Stats.EmployeeRoleDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.RoleCount{
		{Role: domain.RolePilot, Count: 1},
		{Role: domain.RoleSecurity, Count: 2},
	}, dist)
}

func passengerFilter(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	f1 := mustFlight(t, s, flightInput("AA1", Today, domain.FlightScheduled))
	f2 := mustFlight(t, s, flightInput("AA2", Today, domain.FlightScheduled))
	mustPassenger(t, s, &f1.ID)
	mustPassenger(t, s, &f2.ID)
	mustPassenger(t, s, &f1.ID)
	mustPassenger(t, s, nil)

	onF1, err := s.Passengers.List(ctx, domain.PassengerFilter{FlightID: &f1.ID}, domain.Page{})
	require.NoError(t, err)
	assert.Len(t, onF1, 2)

	n, err := s.Passengers.Count(ctx, domain.PassengerFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	perFlight, err := s.Stats.PassengersPerFlight(ctx)
	require.NoError(t, err)
	require.Len(t, perFlight, 2)
	assert.Equal(t, "AA1", perFlight[0].FlightNumber)
	assert.Equal(t, 2, perFlight[0].PassengerCount)
	assert.Equal(t, "AA2", perFlight[1].FlightNumber)
	assert.Equal(t, 1, perFlight[1].PassengerCount)
}

func deleteFlightKeepsPassengers(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	f := mustFlight(t, s, flightInput("AA1", Today, domain.FlightScheduled))
	p := mustPassenger(t, s, &f.ID)

	ok, err := s.Flights.Delete(ctx, f.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.Passengers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.FlightID)
	assert.Equal(t, f.ID, *got.FlightID)

	perFlight, err := s.Stats.PassengersPerFlight(ctx)
	require.NoError(t, err)
	require.Len(t, perFlight, 1)
	assert.Equal(t, domain.UnknownFlightNumber, perFlight[0].FlightNumber)
}

func flightStatusDistribution(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	statuses := []domain.FlightStatus{
		domain.FlightCancelled, domain.FlightScheduled, domain.FlightScheduled, domain.FlightArrived, domain.FlightDelayed,
	}
	for i, st := range statuses {
		mustFlight(t, s, flightInput("ST"+string(rune('A'+i)), Today, st))
	}
	dist, err := s.Stats.FlightStatusDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.StatusCount{
		{Status: "scheduled", Count: 2},
		{Status: "delayed", Count: 1},
		{Status: "arrived", Count: 1},
		{Status: "cancelled", Count: 1},
	}, dist)

	sum := 0
	for _, c := range dist {
		sum += c.Count
	}
	total, err := s.Flights.Count(ctx, domain.FlightFilter{})
	require.NoError(t, err)
	assert.Equal(t, total, sum)
}

func gateStatusDistribution(t *testing.T, s repository.Storage) {
	mustGate(t, s, "A1", "A", domain.GateOccupied)
	mustGate(t, s, "A2", "A", domain.GateAvailable)
	mustGate(t, s, "B1", "B", domain.GateMaintenance)
	mustGate(t, s, "B2", "B", domain.GateAvailable)

	dist, err := s.Stats.GateStatusDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.StatusCount{
		{Status: "available", Count: 2},
		{Status: "occupied", Count: 1},
		{Status: "maintenance", Count: 1},
	}, dist)
}

func flightsToday(t *testing.T, s repository.Storage) {
	mustFlight(t, s, flightInput("AA1", Today, domain.FlightScheduled))
	mustFlight(t, s, flightInput("AA2", Today, domain.FlightCancelled))
	mustFlight(t, s, flightInput("AA3", "2025-03-11", domain.FlightScheduled))
	mustFlight(t, s, flightInput("AA4", "2025-03-09", domain.FlightArrived))

	n, err := s.Stats.FlightsDepartingToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func dailyTrafficWindow(t *testing.T, s repository.Storage) {
	traffic, err := s.Stats.DailyFlightTraffic(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, traffic, 7)
	assert.Equal(t, "2025-03-04", traffic[0].Date)
	assert.Equal(t, Today, traffic[6].Date)
	for i := 1; i < len(traffic); i++ {
		prev, _ := time.Parse(domain.DateLayout, traffic[i-1].Date)
		cur, _ := time.Parse(domain.DateLayout, traffic[i].Date)
		assert.Equal(t, 24*time.Hour, cur.Sub(prev))
		assert.Zero(t, traffic[i].Arrivals)
		assert.Zero(t, traffic[i].Departures)
	}
}

// Arrivals and departures are both keyed on the departure date: a flight
// that arrived is counted on the day it departed.
func dailyTrafficCounts(t *testing.T, s repository.Storage) {
	mustFlight(t, s, flightInput("AR1", Today, domain.FlightArrived))
	mustFlight(t, s, flightInput("AR2", "2025-03-08", domain.FlightArrived))
	mustFlight(t, s, flightInput("DP1", Today, domain.FlightDeparted))
	mustFlight(t, s, flightInput("DP2", Today, domain.FlightDeparted))
	mustFlight(t, s, flightInput("SC1", Today, domain.FlightScheduled))
	mustFlight(t, s, flightInput("OLD", "2025-01-01", domain.FlightArrived))

	traffic, err := s.Stats.DailyFlightTraffic(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.DailyTraffic{
		{Date: "2025-03-08", Arrivals: 1, Departures: 0},
		{Date: "2025-03-09", Arrivals: 0, Departures: 0},
		{Date: Today, Arrivals: 1, Departures: 2},
	}, traffic)
}

func dailyTrafficInvalid(t *testing.T, s repository.Storage) {
	_, err := s.Stats.DailyFlightTraffic(context.Background(), 0)
	requireValidation(t, err, "days")

	_, err = s.Stats.DailyFlightTraffic(context.Background(), domain.MaxTrafficDays+1)
	requireValidation(t, err, "days")
}

func users(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	u, err := s.Users.Create(ctx, "admin", "hash")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	_, err = s.Users.Create(ctx, "admin", "other")
	requireValidation(t, err, "username")

	got, err := s.Users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hash", got.PasswordHash)

	byID, err := s.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, got, byID)

	missing, err := s.Users.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
