package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultTrafficDays = 7
	MaxTrafficDays     = 366
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type RoleCount struct {
	Role  EmployeeRole `json:"role"`
	Count int          `json:"count"`
}

type FlightPassengerCount struct {
	FlightID       int64  `json:"-"`
	FlightNumber   string `json:"flightNumber"`
	PassengerCount int    `json:"passengerCount"`
}

type DailyTraffic struct {
	Date       string `json:"date"`
	Arrivals   int    `json:"arrivals"`
	Departures int    `json:"departures"`
}

type Overview struct {
	FlightsToday     int    `json:"flightsToday"`
	TotalPassengers  int    `json:"totalPassengers"`
	OnTimePercentage int    `json:"onTimePercentage"`
	ActiveGates      string `json:"activeGates"`
}

// UnknownFlightNumber labels passengers whose flight no longer exists.
const UnknownFlightNumber = "Unknown"

// CalendarDate formats t as a UTC calendar date.
func CalendarDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// TrafficDates returns days consecutive dates ending at today, ascending.
func TrafficDates(today time.Time, days int) ([]string, error) {
	if days < 1 {
		return nil, NewValidationError("days", "must be at least 1")
	}
	if days > MaxTrafficDays {
		return nil, NewValidationError("days", fmt.Sprintf("must be at most %d", MaxTrafficDays))
	}
	today = today.UTC()
	dates := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, today.AddDate(0, 0, -i).Format(DateLayout))
	}
	return dates, nil
}

// CountStatuses orders raw counts by the given enumeration, dropping zeros.
func CountStatuses[T ~string](order []T, counts map[T]int) []StatusCount {
	out := make([]StatusCount, 0, len(counts))
	for _, s := range order {
		if n := counts[s]; n > 0 {
			out = append(out, StatusCount{Status: string(s), Count: n})
		}
	}
	return out
}

func CountRoles(counts map[EmployeeRole]int) []RoleCount {
	out := make([]RoleCount, 0, len(counts))
	for _, r := range EmployeeRoles {
		if n := counts[r]; n > 0 {
			out = append(out, RoleCount{Role: r, Count: n})
		}
	}
	return out
}

// BuildDailyTraffic zero-fills the window. Arrivals count flights with status
// arrived on that departure date, departures count status departed.
func BuildDailyTraffic(dates []string, counts map[string]map[FlightStatus]int) []DailyTraffic {
	out := make([]DailyTraffic, len(dates))
	for i, d := range dates {
		out[i] = DailyTraffic{
			Date:       d,
			Arrivals:   counts[d][FlightArrived],
			Departures: counts[d][FlightDeparted],
		}
	}
	return out
}

// ComposeOverview derives the summary cards from the aggregate queries.
func ComposeOverview(flightsToday, passengers int, flights, gates []StatusCount) Overview {
	var totalFlights, scheduled int
	for _, c := range flights {
		totalFlights += c.Count
		if c.Status == string(FlightScheduled) {
			scheduled = c.Count
		}
	}
	var totalGates, nonAvailable int
	for _, c := range gates {
		totalGates += c.Count
		if c.Status != string(GateAvailable) {
			nonAvailable += c.Count
		}
	}
	onTime := 0
	if totalFlights > 0 {
		onTime = int(math.Round(float64(scheduled) / float64(totalFlights) * 100))
	}
	return Overview{
		FlightsToday:     flightsToday,
		TotalPassengers:  passengers,
		OnTimePercentage: onTime,
		ActiveGates:      fmt.Sprintf("%d/%d", nonAvailable, totalGates),
	}
}
