package goal

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// MockGoalRepository is a mock implementation of GoalRepository for testing
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListActive(ctx context.Context) ([]*domain.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func TestCreate_DefaultsGoalType(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockGoalRepository)

	service := NewGoalService(mockRepo)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(g *domain.Goal) bool {
		return g.GoalType == "Savings" && g.IsActive
	})).Return(nil)

	goal, err := service.Create(ctx, CreateGoalInput{
		Name:         "Emergency Fund",
		TargetAmount: decimal.NewFromInt(10000),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Savings", goal.GoalType)
	assert.True(t, goal.IsActive)

	mockRepo.AssertExpectations(t)
}

func TestCreate_MissingName(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockGoalRepository)

	service := NewGoalService(mockRepo)

	_, err := service.Create(ctx, CreateGoalInput{
		TargetAmount: decimal.NewFromInt(10000),
	})

	assert.Error(t, err)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "goal name and target amount are required")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdateCurrentAmount(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockGoalRepository)

	service := NewGoalService(mockRepo)

	goal := &domain.Goal{
		ID:            1,
		Name:          "House Deposit",
		TargetAmount:  decimal.NewFromInt(50000),
		CurrentAmount: decimal.NewFromInt(12000),
		GoalType:      "Savings",
		IsActive:      true,
	}

	mockRepo.On("GetByID", ctx, int64(1)).Return(goal, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(g *domain.Goal) bool {
		return g.CurrentAmount.Equal(decimal.NewFromInt(15000))
	})).Return(nil)

	updated, err := service.UpdateCurrentAmount(ctx, 1, decimal.NewFromInt(15000))

	assert.NoError(t, err)
	assert.True(t, updated.CurrentAmount.Equal(decimal.NewFromInt(15000)))

	mockRepo.AssertExpectations(t)
}

func TestUpdateCurrentAmount_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockGoalRepository)

	service := NewGoalService(mockRepo)

	mockRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrNotFound)

	_, err := service.UpdateCurrentAmount(ctx, 42, decimal.NewFromInt(100))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update")
}
