package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeOverview(t *testing.T) {
	flights := []StatusCount{{Status: "scheduled", Count: 2}, {Status: "delayed", Count: 1}}
	gates := []StatusCount{{Status: "available", Count: 1}, {Status: "occupied", Count: 1}, {Status: "maintenance", Count: 1}}

	got := ComposeOverview(2, 5, flights, gates)
	assert.Equal(t, Overview{FlightsToday: 2, TotalPassengers: 5, OnTimePercentage: 67, ActiveGates: "2/3"}, got)
}

func TestComposeOverviewEmpty(t *testing.T) {
	got := ComposeOverview(0, 0, nil, nil)
	assert.Equal(t, 0, got.OnTimePercentage)
	assert.Equal(t, "0/0", got.ActiveGates)
}

func TestCountStatusesOrder(t *testing.T) {
	got := CountStatuses(GateStatuses, map[GateStatus]int{GateClosed: 3, GateAvailable: 1, GateOccupied: 0})
	assert.Equal(t, []StatusCount{{Status: "available", Count: 1}, {Status: "closed", Count: 3}}, got)
}

func TestBuildDailyTraffic(t *testing.T) {
	got := BuildDailyTraffic([]string{"2025-01-01", "2025-01-02"}, map[string]map[FlightStatus]int{
		"2025-01-02": {FlightArrived: 2, FlightDeparted: 1, FlightScheduled: 9},
	})
	assert.Equal(t, []DailyTraffic{
		{Date: "2025-01-01"},
		{Date: "2025-01-02", Arrivals: 2, Departures: 1},
	}, got)
}
