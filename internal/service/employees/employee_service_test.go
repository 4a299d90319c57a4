package employees

import (
	"context"
	"testing"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository/memory"
	"github.com/Domenick1991/airport-ops/internal/service/changes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestEmployeeService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	producer := &MockProducer{}
	producer.On("Publish", ctx, "airport.events", "employee:1", mock.Anything).Return(nil).Times(3)
	service := NewEmployeeService(memory.New().Storage().Employees, changes.NewPublisher(producer, "airport.events"))

	created, err := service.Create(ctx, domain.EmployeeInput{
		FirstName: "John", LastName: "Doe", Email: "john.doe@airport.com", Role: domain.RolePilot,
	})
	require.NoError(t, err)

	list, total, err := service.List(ctx, domain.EmployeeFilter{Role: domain.RolePilot}, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, []domain.Employee{*created}, list)

	updated, err := service.Update(ctx, created.ID, domain.EmployeePatch{AssignedGateID: domain.Some[int64](2)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), *updated.AssignedGateID)

	ok, err := service.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	producer.AssertExpectations(t)
}

func TestEmployeeService_InvalidRole(t *testing.T) {
	service := NewEmployeeService(memory.New().Storage().Employees, nil)

	_, _, err := service.List(context.Background(), domain.EmployeeFilter{Role: "captain"}, domain.Page{})

	assert.True(t, domain.IsValidationError(err))
}
