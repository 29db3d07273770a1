package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// contributionRepository implements domain.ContributionRepository
type contributionRepository struct {
	db *DB
}

// NewContributionRepository creates a new monthly contribution repository
func NewContributionRepository(db *DB) domain.ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) Create(ctx context.Context, c *domain.MonthlyContribution) error {
	query := `
		INSERT INTO monthly_contributions (year, month, amount, cumulative, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		c.Year,
		c.Month,
		c.Amount.String(),
		c.Cumulative.String(),
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create contribution: %w", err)
	}
	return nil
}

func (r *contributionRepository) GetByID(ctx context.Context, id int64) (*domain.MonthlyContribution, error) {
	query := `
		SELECT id, year, month, amount, cumulative, created_at, updated_at
		FROM monthly_contributions
		WHERE id = $1
	`

	c, err := scanContribution(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contribution by ID: %w", err)
	}
	return c, nil
}

func (r *contributionRepository) GetByMonth(ctx context.Context, year, month int) (*domain.MonthlyContribution, error) {
	query := `
		SELECT id, year, month, amount, cumulative, created_at, updated_at
		FROM monthly_contributions
		WHERE year = $1 AND month = $2
	`

	c, err := scanContribution(r.db.QueryRowContext(ctx, query, year, month))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contribution by month: %w", err)
	}
	return c, nil
}

func (r *contributionRepository) List(ctx context.Context) ([]*domain.MonthlyContribution, error) {
	query := `
		SELECT id, year, month, amount, cumulative, created_at, updated_at
		FROM monthly_contributions
		ORDER BY year ASC, month ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	contributions := make([]*domain.MonthlyContribution, 0)
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}

func (r *contributionRepository) Update(ctx context.Context, c *domain.MonthlyContribution) error {
	query := `
		UPDATE monthly_contributions
		SET amount = $1, cumulative = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Amount.String(),
		c.Cumulative.String(),
		c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contribution: %w", err)
	}
	return requireRow(result)
}

func (r *contributionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM monthly_contributions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contribution: %w", err)
	}
	return requireRow(result)
}

func scanContribution(row rowScanner) (*domain.MonthlyContribution, error) {
	var c domain.MonthlyContribution
	var amountStr, cumulativeStr string

	if err := row.Scan(
		&c.ID,
		&c.Year,
		&c.Month,
		&amountStr,
		&cumulativeStr,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	cumulative, err := decimal.NewFromString(cumulativeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cumulative: %w", err)
	}
	c.Amount = amount
	c.Cumulative = cumulative
	return &c, nil
}
