package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Goal represents a savings goal in the domain layer
type Goal struct {
	ID            int64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *string // optional calendar date, DateLayout
	GoalType      string
	Description   string
	IsActive      bool
}

// Validate ensures the goal adheres to domain rules
func (g *Goal) Validate() error {
	if g.Name == "" || g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("goal name and target amount are required")
	}
	if g.TargetDate != nil {
		if _, err := time.Parse(DateLayout, *g.TargetDate); err != nil {
			return NewValidationError("target date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

// Progress returns the completion percentage for this goal, clamped to [0, 100].
// The dashboard-level completion rate is a separate, unclamped weighted aggregate.
func (g *Goal) Progress() decimal.Decimal {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
