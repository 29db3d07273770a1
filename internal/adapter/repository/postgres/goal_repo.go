package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// goalRepository implements domain.GoalRepository
type goalRepository struct {
	db *DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *DB) domain.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (goal_name, target_amount, current_amount, target_date, goal_type, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var targetDate interface{}
	if goal.TargetDate != nil {
		targetDate = *goal.TargetDate
	}

	err := r.db.QueryRowContext(ctx, query,
		goal.Name,
		goal.TargetAmount.String(),
		goal.CurrentAmount.String(),
		targetDate,
		goal.GoalType,
		goal.Description,
		goal.IsActive,
	).Scan(&goal.ID)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *goalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	query := `
		SELECT id, goal_name, target_amount, current_amount, target_date, goal_type, description, is_active
		FROM goals
		WHERE id = $1
	`

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal by ID: %w", err)
	}
	return goal, nil
}

func (r *goalRepository) ListActive(ctx context.Context) ([]*domain.Goal, error) {
	query := `
		SELECT id, goal_name, target_amount, current_amount, target_date, goal_type, description, is_active
		FROM goals
		WHERE is_active = TRUE
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	query := `
		UPDATE goals
		SET goal_name = $1, target_amount = $2, current_amount = $3, target_date = $4,
		    goal_type = $5, description = $6, is_active = $7
		WHERE id = $8
	`

	var targetDate interface{}
	if goal.TargetDate != nil {
		targetDate = *goal.TargetDate
	}

	result, err := r.db.ExecContext(ctx, query,
		goal.Name,
		goal.TargetAmount.String(),
		goal.CurrentAmount.String(),
		targetDate,
		goal.GoalType,
		goal.Description,
		goal.IsActive,
		goal.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return requireRow(result)
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var goal domain.Goal
	var targetStr, currentStr string
	var targetDate sql.NullTime

	if err := row.Scan(
		&goal.ID,
		&goal.Name,
		&targetStr,
		&currentStr,
		&targetDate,
		&goal.GoalType,
		&goal.Description,
		&goal.IsActive,
	); err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(targetStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target amount: %w", err)
	}
	current, err := decimal.NewFromString(currentStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current amount: %w", err)
	}
	goal.TargetAmount = target
	goal.CurrentAmount = current
	if targetDate.Valid {
		formatted := targetDate.Time.Format(domain.DateLayout)
		goal.TargetDate = &formatted
	}
	return &goal, nil
}
