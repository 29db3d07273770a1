package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

const defaultCategory = "General"

// CreateInvestmentInput represents the input for creating an investment
type CreateInvestmentInput struct {
	Amount      decimal.Decimal
	Date        string
	Description string
	Category    string
}

// UpdateInvestmentInput represents the input for updating an investment.
// Zero values mean "keep the current value": the amount is applied only when
// positive, string fields only when non-empty.
type UpdateInvestmentInput struct {
	Amount      decimal.Decimal
	Date        string
	Description string
	Category    string
	ChangeNote  string
}

// InvestmentService handles the versioned investment lifecycle.
// Every mutation appends to the append-only history log kept by HistoryRepo;
// version numbers increase by exactly one per mutation and are never reused.
type InvestmentService struct {
	InvestmentRepo domain.InvestmentRepository
	HistoryRepo    domain.InvestmentHistoryRepository
}

// NewInvestmentService creates a new InvestmentService instance
func NewInvestmentService(investmentRepo domain.InvestmentRepository, historyRepo domain.InvestmentHistoryRepository) *InvestmentService {
	return &InvestmentService{
		InvestmentRepo: investmentRepo,
		HistoryRepo:    historyRepo,
	}
}

// List returns all live investments ordered by date descending
func (s *InvestmentService) List(ctx context.Context) ([]*domain.Investment, error) {
	return s.InvestmentRepo.List(ctx)
}

// Create creates a new investment at version 1 and seeds its history
// Logic:
//  1. Build the investment with version 1 and defaults (empty description,
//     "General" category)
//  2. Validate and persist it
//  3. Append a "created" history entry capturing the initial state
func (s *InvestmentService) Create(ctx context.Context, input CreateInvestmentInput) (*domain.Investment, error) {
	now := time.Now()

	category := input.Category
	if category == "" {
		category = defaultCategory
	}

	inv := &domain.Investment{
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		Category:    category,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.InvestmentRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	entry := inv.Snapshot(domain.ChangeTypeCreated, "Investment created", now)
	if err := s.HistoryRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append creation history: %w", err)
	}

	return inv, nil
}

// Update applies new field values to an investment and versions the change
// Logic:
//  1. Fetch the investment (not-found surfaces as domain.ErrNotFound)
//  2. Build and validate the candidate state; a rejected update leaves both
//     the investment and its history untouched
//  3. Append an "updated" history entry capturing the PRE-update state and
//     version, with the caller-supplied note
//  4. Persist the candidate with the version incremented by exactly 1
//
// There is no multi-write atomicity: a crash between the history append and
// the field update can leave the two inconsistent. Accepted limitation.
func (s *InvestmentService) Update(ctx context.Context, id int64, input UpdateInvestmentInput) (*domain.Investment, error) {
	inv, err := s.InvestmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	candidate := *inv
	if input.Amount.IsPositive() {
		candidate.Amount = input.Amount
	}
	if input.Date != "" {
		candidate.Date = input.Date
	}
	if input.Description != "" {
		candidate.Description = input.Description
	}
	if input.Category != "" {
		candidate.Category = input.Category
	}
	candidate.Version++
	candidate.UpdatedAt = now

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	note := input.ChangeNote
	if note == "" {
		note = "Investment updated"
	}

	entry := inv.Snapshot(domain.ChangeTypeUpdated, note, now)
	if err := s.HistoryRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append update history: %w", err)
	}

	if err := s.InvestmentRepo.Update(ctx, &candidate); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &candidate, nil
}

// Delete removes an investment from the live set after logging its final state.
// The history remains queryable; deleted investments can only come back as new
// records with new IDs.
func (s *InvestmentService) Delete(ctx context.Context, id int64) error {
	inv, err := s.InvestmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	entry := inv.Snapshot(domain.ChangeTypeDeleted, "Investment deleted", time.Now())
	if err := s.HistoryRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append deletion history: %w", err)
	}

	if err := s.InvestmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	return nil
}

// History returns all history entries for an investment, most recent first.
// An unknown investment ID yields an empty list, not an error: history stays
// queryable after the investment itself is deleted.
func (s *InvestmentService) History(ctx context.Context, id int64) ([]*domain.InvestmentHistory, error) {
	return s.HistoryRepo.ListByInvestment(ctx, id)
}

// Restore rolls an investment back to the field values captured at a previous
// version
// Logic:
//  1. Fetch the investment and the history entry for (id, version); if either
//     is missing, fail with domain.ErrNotFound and change nothing
//  2. Append a "backup_before_restore" entry capturing the current state
//  3. Copy the captured field values onto the live investment and increment
//     the version (field values may now match an older version exactly, but
//     version numbers are never reused)
//  4. Append a "restored" entry capturing the new post-restore state
//
// Restoring to the current version is permitted and still produces the
// backup+restore pair.
func (s *InvestmentService) Restore(ctx context.Context, id int64, version int) (*domain.Investment, error) {
	inv, err := s.InvestmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target, err := s.HistoryRepo.GetVersion(ctx, id, version)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	backup := inv.Snapshot(domain.ChangeTypeBackupBeforeRestore,
		fmt.Sprintf("Backup before restore to version %d", version), now)
	if err := s.HistoryRepo.Append(ctx, backup); err != nil {
		return nil, fmt.Errorf("failed to append backup history: %w", err)
	}

	inv.Amount = target.Amount
	inv.Date = target.Date
	inv.Description = target.Description
	inv.Category = target.Category
	inv.Version++
	inv.UpdatedAt = now

	if err := s.InvestmentRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to restore investment: %w", err)
	}

	restored := inv.Snapshot(domain.ChangeTypeRestored,
		fmt.Sprintf("Restored from version %d", version), now)
	if err := s.HistoryRepo.Append(ctx, restored); err != nil {
		return nil, fmt.Errorf("failed to append restore history: %w", err)
	}

	return inv, nil
}
