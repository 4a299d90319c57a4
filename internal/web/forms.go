package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Domenick1991/airport-ops/internal/domain"
)

// optionalID reads a reference field; an empty value means no reference.
func optionalID(form url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be a number")
	}
	return &id, nil
}

func optionalText(form url.Values, key string) *string {
	v := strings.TrimSpace(form.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func nullable[T any](p *T) domain.Nullable[T] {
	if p == nil {
		return domain.Null[T]()
	}
	return domain.Some(*p)
}

func flightInput(form url.Values) (domain.FlightInput, error) {
	gateID, err := optionalID(form, "gateId")
	if err != nil {
		return domain.FlightInput{}, err
	}
	return domain.FlightInput{
		FlightNumber:  form.Get("flightNumber"),
		Airline:       form.Get("airline"),
		Origin:        form.Get("origin"),
		Destination:   form.Get("destination"),
		DepartureDate: form.Get("departureDate"),
		DepartureTime: form.Get("departureTime"),
		GateID:        gateID,
		Status:        domain.FlightStatus(form.Get("status")),
	}, nil
}

// flightPatch treats the edit form as a full replacement: every field is set
// and an empty gate clears the assignment.
func flightPatch(form url.Values) (domain.FlightPatch, error) {
	in, err := flightInput(form)
	if err != nil {
		return domain.FlightPatch{}, err
	}
	return domain.FlightPatch{
		FlightNumber:  &in.FlightNumber,
		Airline:       &in.Airline,
		Origin:        &in.Origin,
		Destination:   &in.Destination,
		DepartureDate: &in.DepartureDate,
		DepartureTime: &in.DepartureTime,
		GateID:        nullable(in.GateID),
		Status:        &in.Status,
	}, nil
}

func gateInput(form url.Values) (domain.GateInput, error) {
	flightID, err := optionalID(form, "currentFlightId")
	if err != nil {
		return domain.GateInput{}, err
	}
	return domain.GateInput{
		GateNumber:      form.Get("gateNumber"),
		Terminal:        form.Get("terminal"),
		Status:          domain.GateStatus(form.Get("status")),
		CurrentFlightID: flightID,
	}, nil
}

func gatePatch(form url.Values) (domain.GatePatch, error) {
	in, err := gateInput(form)
	if err != nil {
		return domain.GatePatch{}, err
	}
	return domain.GatePatch{
		GateNumber:      &in.GateNumber,
		Terminal:        &in.Terminal,
		Status:          &in.Status,
		CurrentFlightID: nullable(in.CurrentFlightID),
	}, nil
}

func employeeInput(form url.Values) (domain.EmployeeInput, error) {
	flightID, err := optionalID(form, "assignedFlightId")
	if err != nil {
		return domain.EmployeeInput{}, err
	}
	gateID, err := optionalID(form, "assignedGateId")
	if err != nil {
		return domain.EmployeeInput{}, err
	}
	return domain.EmployeeInput{
		FirstName:        form.Get("firstName"),
		LastName:         form.Get("lastName"),
		Email:            form.Get("email"),
		Phone:            optionalText(form, "phone"),
		Role:             domain.EmployeeRole(form.Get("role")),
		AssignedFlightID: flightID,
		AssignedGateID:   gateID,
	}, nil
}

func employeePatch(form url.Values) (domain.EmployeePatch, error) {
	in, err := employeeInput(form)
	if err != nil {
		return domain.EmployeePatch{}, err
	}
	return domain.EmployeePatch{
		FirstName:        &in.FirstName,
		LastName:         &in.LastName,
		Email:            &in.Email,
		Phone:            nullable(in.Phone),
		Role:             &in.Role,
		AssignedFlightID: nullable(in.AssignedFlightID),
		AssignedGateID:   nullable(in.AssignedGateID),
	}, nil
}

func passengerInput(form url.Values) (domain.PassengerInput, error) {
	flightID, err := optionalID(form, "flightId")
	if err != nil {
		return domain.PassengerInput{}, err
	}
	return domain.PassengerInput{
		FirstName:  form.Get("firstName"),
		LastName:   form.Get("lastName"),
		Email:      form.Get("email"),
		FlightID:   flightID,
		SeatNumber: optionalText(form, "seatNumber"),
		CheckedIn:  form.Get("checkedIn") != "",
	}, nil
}

func passengerPatch(form url.Values) (domain.PassengerPatch, error) {
	in, err := passengerInput(form)
	if err != nil {
		return domain.PassengerPatch{}, err
	}
	return domain.PassengerPatch{
		FirstName:  &in.FirstName,
		LastName:   &in.LastName,
		Email:      &in.Email,
		FlightID:   nullable(in.FlightID),
		SeatNumber: nullable(in.SeatNumber),
		CheckedIn:  &in.CheckedIn,
	}, nil
}
