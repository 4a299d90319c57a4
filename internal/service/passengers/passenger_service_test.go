package passengers

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) List(ctx context.Context, filter domain.PassengerFilter, page domain.Page) ([]domain.Passenger, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Count(ctx context.Context, filter domain.PassengerFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Create(ctx context.Context, input domain.PassengerInput) (*domain.Passenger, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Update(ctx context.Context, id int64, patch domain.PassengerPatch) (*domain.Passenger, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestPassengerService_OnFlight(t *testing.T) {
	ctx := context.Background()
	repo := memory.New().Storage().Passengers
	flightID := int64(1)
	other := int64(2)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, domain.PassengerInput{FirstName: "A", LastName: "B", Email: "a@b.com", FlightID: &flightID})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, domain.PassengerInput{FirstName: "C", LastName: "D", Email: "c@d.com", FlightID: &other})
	require.NoError(t, err)

	list, err := NewPassengerService(repo, nil).OnFlight(ctx, flightID)

	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestPassengerService_CountError(t *testing.T) {
	repo := &MockPassengerRepository{}
	service := NewPassengerService(repo, nil)
	ctx := context.Background()

	repo.On("List", ctx, domain.PassengerFilter{}, domain.Page{}).Return([]domain.Passenger{}, nil).Once()
	repo.On("Count", ctx, domain.PassengerFilter{}).Return(0, errors.New("timeout")).Once()

	list, total, err := service.List(ctx, domain.PassengerFilter{}, domain.Page{})

	assert.EqualError(t, err, "timeout")
	assert.Nil(t, list)
	assert.Zero(t, total)
}

func TestPassengerService_DeleteMissing(t *testing.T) {
	repo := &MockPassengerRepository{}
	service := NewPassengerService(repo, nil)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(3)).Return(false, nil).Once()

	ok, err := service.Delete(ctx, 3)

	assert.NoError(t, err)
	assert.False(t, ok)
	repo.AssertExpectations(t)
}
