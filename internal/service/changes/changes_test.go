package changes

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airport-ops/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestPublisher_Record(t *testing.T) {
	producer := &MockProducer{}
	ctx := context.Background()
	producer.On("Publish", ctx, "airport.events", "flight:3", mock.MatchedBy(func(ev kafka.EntityEvent) bool {
		return ev.Type == "flight.created" && ev.EntityID == 3
	})).Return(nil).Once()

	NewPublisher(producer, "airport.events").Record(ctx, "flight", kafka.ActionCreated, 3, map[string]int{"id": 3})

	producer.AssertExpectations(t)
}

func TestPublisher_RecordSwallowsErrors(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Publish", mock.Anything, "airport.events", "gate:1", mock.Anything).Return(errors.New("broker down")).Once()

	assert.NotPanics(t, func() {
		NewPublisher(producer, "airport.events").Record(context.Background(), "gate", kafka.ActionDeleted, 1, nil)
	})
	producer.AssertExpectations(t)
}

func TestPublisher_Disabled(t *testing.T) {
	var nilPublisher *Publisher
	assert.NotPanics(t, func() {
		nilPublisher.Record(context.Background(), "gate", kafka.ActionDeleted, 1, nil)
		NewPublisher(nil, "topic").Record(context.Background(), "gate", kafka.ActionDeleted, 1, nil)
	})

	producer := &MockProducer{}
	NewPublisher(producer, "").Record(context.Background(), "gate", kafka.ActionDeleted, 1, nil)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
