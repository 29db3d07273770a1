package contribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// ContributionService handles the monthly contribution table and keeps the
// derived cumulative column consistent. Every mutation is followed by a full
// cumulative recompute; the stored cumulative values are never authoritative
// on their own.
type ContributionService struct {
	ContributionRepo domain.ContributionRepository
}

// NewContributionService creates a new ContributionService instance
func NewContributionService(contributionRepo domain.ContributionRepository) *ContributionService {
	return &ContributionService{
		ContributionRepo: contributionRepo,
	}
}

// List returns all contributions ordered by (year, month) ascending
func (s *ContributionService) List(ctx context.Context) ([]*domain.MonthlyContribution, error) {
	return s.ContributionRepo.List(ctx)
}

// Create adds a new month with a zero amount
// Logic:
//  1. Validate (year, month); reject a duplicate (year, month) pair
//  2. Persist with amount 0
//  3. Recompute cumulative sums and return the refreshed record
func (s *ContributionService) Create(ctx context.Context, year, month int) (*domain.MonthlyContribution, error) {
	now := time.Now()
	mc := &domain.MonthlyContribution{
		Year:       year,
		Month:      month,
		Amount:     decimal.Zero,
		Cumulative: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := mc.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.ContributionRepo.GetByMonth(ctx, year, month)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing month: %w", err)
	}
	if existing != nil {
		return nil, domain.NewValidationError("this month already exists")
	}

	if err := s.ContributionRepo.Create(ctx, mc); err != nil {
		return nil, fmt.Errorf("failed to create monthly contribution: %w", err)
	}

	if err := s.RecalculateCumulative(ctx); err != nil {
		return nil, err
	}

	return s.ContributionRepo.GetByID(ctx, mc.ID)
}

// UpdateAmount sets the amount for a month and recomputes cumulative sums.
// A missing amount in the request becomes zero, matching the spreadsheet-style
// editing the dashboard table does.
func (s *ContributionService) UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) (*domain.MonthlyContribution, error) {
	mc, err := s.ContributionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mc.Amount = amount
	mc.UpdatedAt = time.Now()

	if err := s.ContributionRepo.Update(ctx, mc); err != nil {
		return nil, fmt.Errorf("failed to update monthly contribution: %w", err)
	}

	if err := s.RecalculateCumulative(ctx); err != nil {
		return nil, err
	}

	return s.ContributionRepo.GetByID(ctx, id)
}

// Delete removes a month and recomputes cumulative sums
func (s *ContributionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.ContributionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.ContributionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete monthly contribution: %w", err)
	}

	return s.RecalculateCumulative(ctx)
}

// RecalculateCumulative rebuilds the running total column
// Logic: walk all contributions ordered by (year, month) ascending and assign
// each record's cumulative = running total after adding its own amount, so
// cumulative[k] = cumulative[k-1] + amount[k]
func (s *ContributionService) RecalculateCumulative(ctx context.Context) error {
	contributions, err := s.ContributionRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list contributions for recompute: %w", err)
	}

	running := decimal.Zero
	for _, mc := range contributions {
		running = running.Add(mc.Amount)
		if mc.Cumulative.Equal(running) {
			continue
		}
		mc.Cumulative = running
		if err := s.ContributionRepo.Update(ctx, mc); err != nil {
			return fmt.Errorf("failed to store cumulative for %s: %w", mc.MonthKey(), err)
		}
	}

	return nil
}
