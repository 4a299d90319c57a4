package web

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/gin-gonic/gin"
)

// TrafficWindows are the selectable daily traffic ranges in days.
var TrafficWindows = []int{7, 30, 90}

const recentFlights = 5

type charts struct {
	FlightStatus []domain.StatusCount          `json:"flightStatus"`
	Passengers   []domain.FlightPassengerCount `json:"passengers"`
	Traffic      []domain.DailyTraffic         `json:"traffic"`
	Roles        []domain.RoleCount            `json:"roles"`
}

type dashboardData struct {
	Overview      *domain.Overview
	Recent        []domain.Flight
	GateNums      map[int64]string
	Charts        charts
	TrafficDays   int
	TrafficRanges []int
	AllPassengers bool
}

func (h *Handler) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	data := dashboardData{
		TrafficDays:   trafficWindow(c.Query("traffic")),
		TrafficRanges: TrafficWindows,
		AllPassengers: c.Query("passengers") == "all",
	}

	var err error
	if data.Overview, err = h.svc.Stats.Overview(ctx); err != nil {
		h.fail(c, err)
		return
	}
	if data.Charts.FlightStatus, err = h.svc.Stats.FlightStatus(ctx); err != nil {
		h.fail(c, err)
		return
	}
	if data.Charts.Passengers, err = h.svc.Stats.PassengersPerFlight(ctx); err != nil {
		h.fail(c, err)
		return
	}
	if !data.AllPassengers {
		data.Charts.Passengers = topPassengers(data.Charts.Passengers, 10)
	}
	if data.Charts.Traffic, err = h.svc.Stats.DailyTraffic(ctx, data.TrafficDays); err != nil {
		h.fail(c, err)
		return
	}
	if data.Charts.Roles, err = h.svc.Stats.EmployeeRoles(ctx); err != nil {
		h.fail(c, err)
		return
	}

	recent := domain.Sort{Field: "id", Order: domain.SortDesc}
	if data.Recent, _, err = h.svc.Flights.List(ctx, domain.FlightFilter{}, domain.Page{Limit: recentFlights}, recent); err != nil {
		h.fail(c, err)
		return
	}
	if _, data.GateNums, err = h.gateOptions(ctx); err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "dashboard.html", view{Title: "Dashboard", Active: "dashboard", Data: data})
}

func trafficWindow(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || !slices.Contains(TrafficWindows, n) {
		return TrafficWindows[0]
	}
	return n
}

// topPassengers keeps the n flights with the most passengers, largest first.
func topPassengers(rows []domain.FlightPassengerCount, n int) []domain.FlightPassengerCount {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b domain.FlightPassengerCount) int {
		return b.PassengerCount - a.PassengerCount
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
