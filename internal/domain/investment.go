package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates (investment dates,
// loan start dates, payment dates, goal target dates).
const DateLayout = "2006-01-02"

// ChangeType classifies an investment history entry
type ChangeType string

const (
	ChangeTypeCreated             ChangeType = "created"
	ChangeTypeUpdated             ChangeType = "updated"
	ChangeTypeDeleted             ChangeType = "deleted"
	ChangeTypeRestored            ChangeType = "restored"
	ChangeTypeBackupBeforeRestore ChangeType = "backup_before_restore"
)

// Investment represents a single tracked investment in the domain layer.
// Every mutation increments Version by exactly one and appends an
// InvestmentHistory entry; version numbers are never reused.
type Investment struct {
	ID          int64
	Amount      decimal.Decimal
	Date        string // calendar date, DateLayout
	Description string
	Category    string
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate ensures the investment adheres to domain rules
func (i *Investment) Validate() error {
	if i.Amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("amount and date are required")
	}
	if i.Date == "" {
		return NewValidationError("amount and date are required")
	}
	if _, err := time.Parse(DateLayout, i.Date); err != nil {
		return NewValidationError("date must be in YYYY-MM-DD format")
	}
	return nil
}

// InvestmentHistory is an immutable snapshot of an investment's state at the
// moment of a change. For kinds created/updated/deleted it captures the
// pre-mutation state; for backup_before_restore/restored it captures the state
// around a restore operation.
type InvestmentHistory struct {
	ID           int64
	InvestmentID int64
	Amount       decimal.Decimal
	Date         string
	Description  string
	Category     string
	Version      int
	ChangeType   ChangeType
	ChangeNote   string
	ChangedAt    time.Time
}

// Snapshot builds a history entry capturing the investment's current field
// values. The repository assigns the entry ID on append.
func (i *Investment) Snapshot(changeType ChangeType, note string, at time.Time) *InvestmentHistory {
	return &InvestmentHistory{
		InvestmentID: i.ID,
		Amount:       i.Amount,
		Date:         i.Date,
		Description:  i.Description,
		Category:     i.Category,
		Version:      i.Version,
		ChangeType:   changeType,
		ChangeNote:   note,
		ChangedAt:    at,
	}
}
