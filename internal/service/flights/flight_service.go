package flights

import (
	"context"
	"log"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/kafka"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/Domenick1991/airport-ops/internal/service/changes"
)

const entity = "flight"

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter, page domain.Page, sort domain.Sort) ([]domain.Flight, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, patch domain.FlightPatch) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type FlightService struct {
	repo               repository.FlightRepository
	changes            *changes.Publisher
	producer           changes.Producer
	notificationsTopic string
}

type FlightServiceOption func(*FlightService)

func WithChanges(p *changes.Publisher) FlightServiceOption {
	return func(s *FlightService) {
		s.changes = p
	}
}

// WithStatusNotifications publishes kafka.FlightStatusChanged to topic
// whenever an update moves a flight to another status.
func WithStatusNotifications(producer changes.Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.notificationsTopic = topic
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter, page domain.Page, sort domain.Sort) ([]domain.Flight, int, error) {
	flights, err := s.repo.List(ctx, filter, page, sort)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	flight, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.changes.Record(ctx, entity, kafka.ActionCreated, flight.ID, flight)
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, patch domain.FlightPatch) (*domain.Flight, error) {
	var before *domain.Flight
	if patch.Status != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, nil
		}
		before = current
	}

	flight, err := s.repo.Update(ctx, id, patch)
	if err != nil || flight == nil {
		return flight, err
	}
	s.changes.Record(ctx, entity, kafka.ActionUpdated, flight.ID, flight)
	if before != nil && before.Status != flight.Status {
		s.notifyStatus(ctx, before.Status, flight)
	}
	return flight, nil
}

func (s *FlightService) notifyStatus(ctx context.Context, old domain.FlightStatus, flight *domain.Flight) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	ev := kafka.NewFlightStatusChanged(flight.ID, flight.FlightNumber, string(old), string(flight.Status))
	if err := s.producer.Publish(ctx, s.notificationsTopic, flight.FlightNumber, ev); err != nil {
		log.Printf("WARNING: failed to publish status change for flight %s: %v", flight.FlightNumber, err)
	}
}

func (s *FlightService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.changes.Record(ctx, entity, kafka.ActionDeleted, id, nil)
	return true, nil
}

var _ FlightUseCase = (*FlightService)(nil)
