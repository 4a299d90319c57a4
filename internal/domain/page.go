package domain

import "strings"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page selects a window of a listing. A non-positive Limit means DefaultLimit.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// Window returns the [start, end) bounds of the page within n items.
func (p Page) Window(n int) (int, int) {
	p = p.Normalize()
	start := p.Offset
	if start > n {
		start = n
	}
	end := n
	if p.Limit < n-start {
		end = start + p.Limit
	}
	return start, end
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Sort struct {
	Field string
	Order SortOrder
}

// FlightSortFields are the accepted flight sort keys.
var FlightSortFields = []string{
	"id", "flightNumber", "airline", "origin", "destination",
	"departureDate", "departureTime", "status", "gateId",
}

// NormalizeFlightSort fills defaults (id, asc) and rejects unknown keys.
func NormalizeFlightSort(s Sort) (Sort, error) {
	if s.Field == "" {
		s.Field = "id"
	}
	s.Order = SortOrder(strings.ToLower(string(s.Order)))
	if s.Order == "" {
		s.Order = SortAsc
	}
	known := false
	for _, f := range FlightSortFields {
		if f == s.Field {
			known = true
			break
		}
	}
	if !known {
		return s, NewValidationError("sort", "must be one of: "+strings.Join(FlightSortFields, ", "))
	}
	if s.Order != SortAsc && s.Order != SortDesc {
		return s, NewValidationError("order", "must be one of: asc, desc")
	}
	return s, nil
}
