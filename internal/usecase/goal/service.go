package goal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

const defaultGoalType = "Savings"

// CreateGoalInput represents the input for creating a savings goal
type CreateGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *string
	GoalType      string
	Description   string
}

// GoalService handles savings goal tracking
type GoalService struct {
	GoalRepo domain.GoalRepository
}

// NewGoalService creates a new GoalService instance
func NewGoalService(goalRepo domain.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

// ListActive returns all active goals
func (s *GoalService) ListActive(ctx context.Context) ([]*domain.Goal, error) {
	return s.GoalRepo.ListActive(ctx)
}

// Create registers a new savings goal
func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goalType := input.GoalType
	if goalType == "" {
		goalType = defaultGoalType
	}

	goal := &domain.Goal{
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		TargetDate:    input.TargetDate,
		GoalType:      goalType,
		Description:   input.Description,
		IsActive:      true,
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.GoalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// UpdateCurrentAmount sets the saved amount on a goal
func (s *GoalService) UpdateCurrentAmount(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Goal, error) {
	goal, err := s.GoalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = amount

	if err := s.GoalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return goal, nil
}
