package passengers

import (
	"context"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/kafka"
	"github.com/Domenick1991/airport-ops/internal/repository"
	"github.com/Domenick1991/airport-ops/internal/service/changes"
)

const entity = "passenger"

type PassengerUseCase interface {
	List(ctx context.Context, filter domain.PassengerFilter, page domain.Page) ([]domain.Passenger, int, error)
	OnFlight(ctx context.Context, flightID int64) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, input domain.PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, patch domain.PassengerPatch) (*domain.Passenger, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PassengerService struct {
	repo    repository.PassengerRepository
	changes *changes.Publisher
}

func NewPassengerService(repo repository.PassengerRepository, changes *changes.Publisher) *PassengerService {
	return &PassengerService{repo: repo, changes: changes}
}

func (s *PassengerService) List(ctx context.Context, filter domain.PassengerFilter, page domain.Page) ([]domain.Passenger, int, error) {
	passengers, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return passengers, total, nil
}

// OnFlight returns every passenger booked on the flight.
func (s *PassengerService) OnFlight(ctx context.Context, flightID int64) ([]domain.Passenger, error) {
	filter := domain.PassengerFilter{FlightID: &flightID}
	out := make([]domain.Passenger, 0)
	for offset := 0; ; offset += domain.MaxLimit {
		page, err := s.repo.List(ctx, filter, domain.Page{Offset: offset, Limit: domain.MaxLimit})
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < domain.MaxLimit {
			return out, nil
		}
	}
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) Create(ctx context.Context, input domain.PassengerInput) (*domain.Passenger, error) {
	passenger, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.changes.Record(ctx, entity, kafka.ActionCreated, passenger.ID, passenger)
	return passenger, nil
}

func (s *PassengerService) Update(ctx context.Context, id int64, patch domain.PassengerPatch) (*domain.Passenger, error) {
	passenger, err := s.repo.Update(ctx, id, patch)
	if err != nil || passenger == nil {
		return passenger, err
	}
	s.changes.Record(ctx, entity, kafka.ActionUpdated, passenger.ID, passenger)
	return passenger, nil
}

func (s *PassengerService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.changes.Record(ctx, entity, kafka.ActionDeleted, id, nil)
	return true, nil
}

var _ PassengerUseCase = (*PassengerService)(nil)
