package kafka

import (
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityEvent(t *testing.T) {
	ev, err := NewEntityEvent("gate", ActionUpdated, 7, map[string]string{"status": "closed"})
	require.NoError(t, err)
	assert.Equal(t, "gate.updated", ev.Type)
	assert.Equal(t, "gate:7", ev.Key())
	assert.NotEmpty(t, ev.ID)
	assert.JSONEq(t, `{"status":"closed"}`, string(ev.Payload))

	deleted, err := NewEntityEvent("gate", ActionDeleted, 7, nil)
	require.NoError(t, err)
	data, err := json.Marshal(deleted)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "payload")
}

func TestDecodeFlightStatusChanged(t *testing.T) {
	data, err := json.Marshal(NewFlightStatusChanged(3, "AA1234", "scheduled", "delayed"))
	require.NoError(t, err)

	ev, err := DecodeFlightStatusChanged(kafka.Message{Value: data})
	require.NoError(t, err)
	assert.Equal(t, int64(3), ev.FlightID)
	assert.Equal(t, "delayed", ev.NewStatus)

	_, err = DecodeFlightStatusChanged(kafka.Message{Value: []byte(`{"flightNumber":"AA1"}`)})
	assert.Error(t, err)

	_, err = DecodeFlightStatusChanged(kafka.Message{Value: []byte(`not json`)})
	assert.Error(t, err)
}
