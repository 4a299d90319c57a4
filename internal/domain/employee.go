package domain

import (
	"strings"
	"unicode/utf8"
)

type EmployeeRole string

const (
	RolePilot           EmployeeRole = "pilot"
	RoleFlightAttendant EmployeeRole = "flight_attendant"
	RoleGateAgent       EmployeeRole = "gate_agent"
	RoleGroundStaff     EmployeeRole = "ground_staff"
	RoleSecurity        EmployeeRole = "security"
	RoleAdministration  EmployeeRole = "administration"
)

var EmployeeRoles = []EmployeeRole{
	RolePilot, RoleFlightAttendant, RoleGateAgent, RoleGroundStaff, RoleSecurity, RoleAdministration,
}

type Employee struct {
	ID               int64        `json:"id"`
	FirstName        string       `json:"firstName"`
	LastName         string       `json:"lastName"`
	Email            string       `json:"email"`
	Phone            *string      `json:"phone"`
	Role             EmployeeRole `json:"role"`
	AssignedFlightID *int64       `json:"assignedFlightId"`
	AssignedGateID   *int64       `json:"assignedGateId"`
}

type EmployeeInput struct {
	FirstName        string       `json:"firstName" validate:"required,max=100"`
	LastName         string       `json:"lastName" validate:"required,max=100"`
	Email            string       `json:"email" validate:"required,email,max=255"`
	Phone            *string      `json:"phone" validate:"omitnil,max=30"`
	Role             EmployeeRole `json:"role" validate:"required,oneof=pilot flight_attendant gate_agent ground_staff security administration"`
	AssignedFlightID *int64       `json:"assignedFlightId" validate:"omitnil,gt=0"`
	AssignedGateID   *int64       `json:"assignedGateId" validate:"omitnil,gt=0"`
}

func (in *EmployeeInput) Validate() error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	trimPtr(in.Phone)
	return validateStruct(in)
}

func (in EmployeeInput) Employee(id int64) Employee {
	return Employee{
		ID:               id,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            copyPtr(in.Phone),
		Role:             in.Role,
		AssignedFlightID: copyPtr(in.AssignedFlightID),
		AssignedGateID:   copyPtr(in.AssignedGateID),
	}
}

type EmployeePatch struct {
	FirstName        *string          `json:"firstName" validate:"omitnil,min=1,max=100"`
	LastName         *string          `json:"lastName" validate:"omitnil,min=1,max=100"`
	Email            *string          `json:"email" validate:"omitnil,email,max=255"`
	Phone            Nullable[string] `json:"phone"`
	Role             *EmployeeRole    `json:"role" validate:"omitnil,oneof=pilot flight_attendant gate_agent ground_staff security administration"`
	AssignedFlightID Nullable[int64]  `json:"assignedFlightId"`
	AssignedGateID   Nullable[int64]  `json:"assignedGateId"`
}

func (p *EmployeePatch) Validate() error {
	trimPtr(p.FirstName)
	trimPtr(p.LastName)
	trimPtr(p.Email)
	trimPtr(p.Phone.Value)
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Phone.Value != nil && utf8.RuneCountInString(*p.Phone.Value) > 30 {
		return NewValidationError("phone", "must be at most 30 characters")
	}
	if err := positiveRef("assignedFlightId", p.AssignedFlightID); err != nil {
		return err
	}
	return positiveRef("assignedGateId", p.AssignedGateID)
}

func (p EmployeePatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && !p.Phone.Set &&
		p.Role == nil && !p.AssignedFlightID.Set && !p.AssignedGateID.Set
}

func (p EmployeePatch) Apply(e *Employee) {
	setIf(&e.FirstName, p.FirstName)
	setIf(&e.LastName, p.LastName)
	setIf(&e.Email, p.Email)
	p.Phone.Apply(&e.Phone)
	setIf(&e.Role, p.Role)
	p.AssignedFlightID.Apply(&e.AssignedFlightID)
	p.AssignedGateID.Apply(&e.AssignedGateID)
}

type EmployeeFilter struct {
	Role EmployeeRole
}

func (f EmployeeFilter) Validate() error {
	for _, r := range EmployeeRoles {
		if f.Role == "" || f.Role == r {
			return nil
		}
	}
	return NewValidationError("role", "must be one of: "+joinValues(EmployeeRoles))
}

func (f EmployeeFilter) Matches(e Employee) bool {
	return f.Role == "" || e.Role == f.Role
}
