package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EntityEvent records one create, update or delete of a dashboard record.
// Payload is the record after the change; it is empty for deletes.
type EntityEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Entity     string          `json:"entity"`
	EntityID   int64           `json:"entityId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

func NewEntityEvent(entity, action string, entityID int64, payload any) (EntityEvent, error) {
	ev := EntityEvent{
		ID:         uuid.NewString(),
		Type:       entity + "." + action,
		Entity:     entity,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return ev, fmt.Errorf("marshal %s payload: %w", entity, err)
		}
		ev.Payload = data
	}
	return ev, nil
}

// Key partitions events of one record onto the same partition.
func (e EntityEvent) Key() string {
	return fmt.Sprintf("%s:%d", e.Entity, e.EntityID)
}

// FlightStatusChanged is published when a flight moves to another status.
// The worker notifies every passenger booked on the flight.
type FlightStatusChanged struct {
	ID           string    `json:"id"`
	FlightID     int64     `json:"flightId"`
	FlightNumber string    `json:"flightNumber"`
	OldStatus    string    `json:"oldStatus"`
	NewStatus    string    `json:"newStatus"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func NewFlightStatusChanged(flightID int64, number, oldStatus, newStatus string) FlightStatusChanged {
	return FlightStatusChanged{
		ID:           uuid.NewString(),
		FlightID:     flightID,
		FlightNumber: number,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		OccurredAt:   time.Now().UTC(),
	}
}
