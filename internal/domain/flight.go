package domain

import "strings"

type FlightStatus string

const (
	FlightScheduled FlightStatus = "scheduled"
	FlightDelayed   FlightStatus = "delayed"
	FlightDeparted  FlightStatus = "departed"
	FlightArrived   FlightStatus = "arrived"
	FlightCancelled FlightStatus = "cancelled"
)

// FlightStatuses lists the statuses in enumeration order.
var FlightStatuses = []FlightStatus{FlightScheduled, FlightDelayed, FlightDeparted, FlightArrived, FlightCancelled}

type Flight struct {
	ID            int64        `json:"id"`
	FlightNumber  string       `json:"flightNumber"`
	Airline       string       `json:"airline"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureDate string       `json:"departureDate"`
	DepartureTime string       `json:"departureTime"`
	GateID        *int64       `json:"gateId"`
	Status        FlightStatus `json:"status"`
}

type FlightInput struct {
	FlightNumber  string       `json:"flightNumber" validate:"required,max=10"`
	Airline       string       `json:"airline" validate:"required,max=100"`
	Origin        string       `json:"origin" validate:"required,max=100"`
	Destination   string       `json:"destination" validate:"required,max=100"`
	DepartureDate string       `json:"departureDate" validate:"required,datetime=2006-01-02"`
	DepartureTime string       `json:"departureTime" validate:"required,clock"`
	GateID        *int64       `json:"gateId" validate:"omitnil,gt=0"`
	Status        FlightStatus `json:"status" validate:"required,oneof=scheduled delayed departed arrived cancelled"`
}

// Normalize trims text fields and rewrites HH:MM departure times as HH:MM:SS.
func (in *FlightInput) Normalize() {
	in.FlightNumber = strings.TrimSpace(in.FlightNumber)
	in.Airline = strings.TrimSpace(in.Airline)
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)
	in.DepartureDate = strings.TrimSpace(in.DepartureDate)
	if t, ok := NormalizeClock(in.DepartureTime); ok {
		in.DepartureTime = t
	}
}

func (in *FlightInput) Validate() error {
	in.Normalize()
	return validateStruct(in)
}

func (in FlightInput) Flight(id int64) Flight {
	return Flight{
		ID:            id,
		FlightNumber:  in.FlightNumber,
		Airline:       in.Airline,
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate,
		DepartureTime: in.DepartureTime,
		GateID:        copyPtr(in.GateID),
		Status:        in.Status,
	}
}

type FlightPatch struct {
	FlightNumber  *string         `json:"flightNumber" validate:"omitnil,min=1,max=10"`
	Airline       *string         `json:"airline" validate:"omitnil,min=1,max=100"`
	Origin        *string         `json:"origin" validate:"omitnil,min=1,max=100"`
	Destination   *string         `json:"destination" validate:"omitnil,min=1,max=100"`
	DepartureDate *string         `json:"departureDate" validate:"omitnil,datetime=2006-01-02"`
	DepartureTime *string         `json:"departureTime" validate:"omitnil,clock"`
	GateID        Nullable[int64] `json:"gateId"`
	Status        *FlightStatus   `json:"status" validate:"omitnil,oneof=scheduled delayed departed arrived cancelled"`
}

func (p *FlightPatch) Validate() error {
	trimPtr(p.FlightNumber)
	trimPtr(p.Airline)
	trimPtr(p.Origin)
	trimPtr(p.Destination)
	trimPtr(p.DepartureDate)
	normalizeClockPtr(p.DepartureTime)
	if err := validateStruct(p); err != nil {
		return err
	}
	return positiveRef("gateId", p.GateID)
}

func (p FlightPatch) IsEmpty() bool {
	return p.FlightNumber == nil && p.Airline == nil && p.Origin == nil && p.Destination == nil &&
		p.DepartureDate == nil && p.DepartureTime == nil && !p.GateID.Set && p.Status == nil
}

// Apply copies the provided fields onto f.
func (p FlightPatch) Apply(f *Flight) {
	setIf(&f.FlightNumber, p.FlightNumber)
	setIf(&f.Airline, p.Airline)
	setIf(&f.Origin, p.Origin)
	setIf(&f.Destination, p.Destination)
	setIf(&f.DepartureDate, p.DepartureDate)
	setIf(&f.DepartureTime, p.DepartureTime)
	p.GateID.Apply(&f.GateID)
	setIf(&f.Status, p.Status)
}

type FlightFilter struct {
	Search string
	Status FlightStatus
}

func (f FlightFilter) Validate() error {
	if f.Status != "" && !validFlightStatus(f.Status) {
		return NewValidationError("status", "must be one of: "+joinValues(FlightStatuses))
	}
	return nil
}

// Matches reports whether the flight satisfies the filter. Search is a
// case-insensitive substring match on flight number, origin or destination.
func (f FlightFilter) Matches(fl Flight) bool {
	if f.Status != "" && fl.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(fl.FlightNumber), q) ||
		strings.Contains(strings.ToLower(fl.Origin), q) ||
		strings.Contains(strings.ToLower(fl.Destination), q)
}

func validFlightStatus(s FlightStatus) bool {
	for _, v := range FlightStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func positiveRef(field string, n Nullable[int64]) error {
	if n.Value != nil && *n.Value <= 0 {
		return NewValidationError(field, "must be greater than 0")
	}
	return nil
}

func joinValues[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
