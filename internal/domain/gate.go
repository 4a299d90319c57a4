package domain

import "strings"

type GateStatus string

const (
	GateAvailable   GateStatus = "available"
	GateOccupied    GateStatus = "occupied"
	GateMaintenance GateStatus = "maintenance"
	GateClosed      GateStatus = "closed"
)

var GateStatuses = []GateStatus{GateAvailable, GateOccupied, GateMaintenance, GateClosed}

type Gate struct {
	ID              int64      `json:"id"`
	GateNumber      string     `json:"gateNumber"`
	Terminal        string     `json:"terminal"`
	Status          GateStatus `json:"status"`
	CurrentFlightID *int64     `json:"currentFlightId"`
}

type GateInput struct {
	GateNumber      string     `json:"gateNumber" validate:"required,max=10"`
	Terminal        string     `json:"terminal" validate:"required,max=50"`
	Status          GateStatus `json:"status" validate:"required,oneof=available occupied maintenance closed"`
	CurrentFlightID *int64     `json:"currentFlightId" validate:"omitnil,gt=0"`
}

func (in *GateInput) Validate() error {
	in.GateNumber = strings.TrimSpace(in.GateNumber)
	in.Terminal = strings.TrimSpace(in.Terminal)
	return validateStruct(in)
}

func (in GateInput) Gate(id int64) Gate {
	return Gate{
		ID:              id,
		GateNumber:      in.GateNumber,
		Terminal:        in.Terminal,
		Status:          in.Status,
		CurrentFlightID: copyPtr(in.CurrentFlightID),
	}
}

type GatePatch struct {
	GateNumber      *string         `json:"gateNumber" validate:"omitnil,min=1,max=10"`
	Terminal        *string         `json:"terminal" validate:"omitnil,min=1,max=50"`
	Status          *GateStatus     `json:"status" validate:"omitnil,oneof=available occupied maintenance closed"`
	CurrentFlightID Nullable[int64] `json:"currentFlightId"`
}

func (p *GatePatch) Validate() error {
	trimPtr(p.GateNumber)
	trimPtr(p.Terminal)
	if err := validateStruct(p); err != nil {
		return err
	}
	return positiveRef("currentFlightId", p.CurrentFlightID)
}

func (p GatePatch) IsEmpty() bool {
	return p.GateNumber == nil && p.Terminal == nil && p.Status == nil && !p.CurrentFlightID.Set
}

func (p GatePatch) Apply(g *Gate) {
	setIf(&g.GateNumber, p.GateNumber)
	setIf(&g.Terminal, p.Terminal)
	setIf(&g.Status, p.Status)
	p.CurrentFlightID.Apply(&g.CurrentFlightID)
}

type GateFilter struct {
	Status GateStatus
}

func (f GateFilter) Validate() error {
	for _, s := range GateStatuses {
		if f.Status == "" || f.Status == s {
			return nil
		}
	}
	return NewValidationError("status", "must be one of: "+joinValues(GateStatuses))
}

func (f GateFilter) Matches(g Gate) bool {
	return f.Status == "" || g.Status == f.Status
}
