package gates

import (
	"context"
	"fmt"
	"testing"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGateRepository struct {
	mock.Mock
}

func (m *MockGateRepository) List(ctx context.Context, filter domain.GateFilter, page domain.Page) ([]domain.Gate, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gate), args.Error(1)
}

func (m *MockGateRepository) Count(ctx context.Context, filter domain.GateFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockGateRepository) GetByID(ctx context.Context, id int64) (*domain.Gate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gate), args.Error(1)
}

func (m *MockGateRepository) GetByNumber(ctx context.Context, number string) (*domain.Gate, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gate), args.Error(1)
}

func (m *MockGateRepository) Create(ctx context.Context, input domain.GateInput) (*domain.Gate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gate), args.Error(1)
}

func (m *MockGateRepository) Update(ctx context.Context, id int64, patch domain.GatePatch) (*domain.Gate, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gate), args.Error(1)
}

func (m *MockGateRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestGateService_List(t *testing.T) {
	repo := &MockGateRepository{}
	service := NewGateService(repo, nil)
	ctx := context.Background()

	gates := []domain.Gate{{ID: 1, GateNumber: "A1", Terminal: "A", Status: domain.GateAvailable}}
	repo.On("List", ctx, domain.GateFilter{}, domain.Page{Limit: 10}).Return(gates, nil).Once()
	repo.On("Count", ctx, domain.GateFilter{}).Return(1, nil).Once()

	result, total, err := service.List(ctx, domain.GateFilter{}, domain.Page{Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, gates, result)
	assert.Equal(t, 1, total)
	repo.AssertExpectations(t)
}

func TestGateService_AvailableWalksPages(t *testing.T) {
	ctx := context.Background()
	storage := memory.New().Storage()
	for i := 0; i < 2*domain.MaxLimit+5; i++ {
		status := domain.GateAvailable
		if i%10 == 0 {
			status = domain.GateOccupied
		}
		_, err := storage.Gates.Create(ctx, domain.GateInput{GateNumber: fmt.Sprintf("G%d", i), Terminal: "G", Status: status})
		require.NoError(t, err)
	}

	available, err := NewGateService(storage.Gates, nil).Available(ctx)

	require.NoError(t, err)
	assert.Len(t, available, 2*domain.MaxLimit+5-21)
	for _, g := range available {
		assert.Equal(t, domain.GateAvailable, g.Status)
	}
}

func TestGateService_UpdateNotFound(t *testing.T) {
	repo := &MockGateRepository{}
	service := NewGateService(repo, nil)
	ctx := context.Background()

	patch := domain.GatePatch{Terminal: domain.Ptr("C")}
	repo.On("Update", ctx, int64(5), patch).Return(nil, nil).Once()

	gate, err := service.Update(ctx, 5, patch)

	assert.NoError(t, err)
	assert.Nil(t, gate)
}
