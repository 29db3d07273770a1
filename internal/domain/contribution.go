package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyContribution represents the amount invested in a single calendar
// month. At most one record exists per (year, month) pair.
//
// Cumulative is a derived field: it is recomputed as the prefix sum over all
// contributions ordered by (year, month) ascending after every mutation and is
// never independently authoritative.
type MonthlyContribution struct {
	ID         int64
	Year       int
	Month      int // 1-12
	Amount     decimal.Decimal
	Cumulative decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate ensures the contribution adheres to domain rules
func (m *MonthlyContribution) Validate() error {
	if m.Year <= 0 || m.Month == 0 {
		return NewValidationError("year and month are required")
	}
	if m.Month < 1 || m.Month > 12 {
		return NewValidationError("month must be between 1 and 12")
	}
	return nil
}

// Label returns the display label for the month, e.g. "January 2024"
func (m *MonthlyContribution) Label() string {
	return fmt.Sprintf("%s %d", time.Month(m.Month).String(), m.Year)
}

// MonthKey returns the chart key for the month, e.g. "2024-01"
func (m *MonthlyContribution) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Before reports whether m is strictly earlier than other in (year, month) order
func (m *MonthlyContribution) Before(other *MonthlyContribution) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}
