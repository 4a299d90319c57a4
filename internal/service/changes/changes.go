// Package changes publishes entity change events for the CRUD services.
package changes

import (
	"context"
	"log"

	"github.com/Domenick1991/airport-ops/internal/kafka"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Publisher sends kafka.EntityEvent values to one topic. A nil Publisher, or
// one without producer or topic, drops events.
type Publisher struct {
	producer Producer
	topic    string
}

func NewPublisher(producer Producer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// Record never fails the caller: publish errors are logged.
func (p *Publisher) Record(ctx context.Context, entity, action string, id int64, payload any) {
	if p == nil || p.producer == nil || p.topic == "" {
		return
	}
	ev, err := kafka.NewEntityEvent(entity, action, id, payload)
	if err != nil {
		log.Printf("WARNING: build %s event for %s %d: %v", action, entity, id, err)
		return
	}
	if err := p.producer.Publish(ctx, p.topic, ev.Key(), ev); err != nil {
		log.Printf("WARNING: failed to publish %s event for %s %d: %v", action, entity, id, err)
	}
}
