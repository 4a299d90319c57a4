package domain

import (
	"strings"
	"unicode/utf8"
)

type Passenger struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	FlightID   *int64  `json:"flightId"`
	SeatNumber *string `json:"seatNumber"`
	CheckedIn  bool    `json:"checkedIn"`
}

type PassengerInput struct {
	FirstName  string  `json:"firstName" validate:"required,max=100"`
	LastName   string  `json:"lastName" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	FlightID   *int64  `json:"flightId" validate:"omitnil,gt=0"`
	SeatNumber *string `json:"seatNumber" validate:"omitnil,max=10"`
	CheckedIn  bool    `json:"checkedIn"`
}

func (in *PassengerInput) Validate() error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	trimPtr(in.SeatNumber)
	return validateStruct(in)
}

func (in PassengerInput) Passenger(id int64) Passenger {
	return Passenger{
		ID:         id,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		FlightID:   copyPtr(in.FlightID),
		SeatNumber: copyPtr(in.SeatNumber),
		CheckedIn:  in.CheckedIn,
	}
}

type PassengerPatch struct {
	FirstName  *string          `json:"firstName" validate:"omitnil,min=1,max=100"`
	LastName   *string          `json:"lastName" validate:"omitnil,min=1,max=100"`
	Email      *string          `json:"email" validate:"omitnil,email,max=255"`
	FlightID   Nullable[int64]  `json:"flightId"`
	SeatNumber Nullable[string] `json:"seatNumber"`
	CheckedIn  *bool            `json:"checkedIn"`
}

func (p *PassengerPatch) Validate() error {
	trimPtr(p.FirstName)
	trimPtr(p.LastName)
	trimPtr(p.Email)
	trimPtr(p.SeatNumber.Value)
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.SeatNumber.Value != nil && utf8.RuneCountInString(*p.SeatNumber.Value) > 10 {
		return NewValidationError("seatNumber", "must be at most 10 characters")
	}
	return positiveRef("flightId", p.FlightID)
}

func (p PassengerPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		!p.FlightID.Set && !p.SeatNumber.Set && p.CheckedIn == nil
}

func (p PassengerPatch) Apply(ps *Passenger) {
	setIf(&ps.FirstName, p.FirstName)
	setIf(&ps.LastName, p.LastName)
	setIf(&ps.Email, p.Email)
	p.FlightID.Apply(&ps.FlightID)
	p.SeatNumber.Apply(&ps.SeatNumber)
	setIf(&ps.CheckedIn, p.CheckedIn)
}

type PassengerFilter struct {
	FlightID *int64
}

func (f PassengerFilter) Matches(p Passenger) bool {
	if f.FlightID == nil {
		return true
	}
	return p.FlightID != nil && *p.FlightID == *f.FlightID
}
