package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan represents a tracked debt in the domain layer. CurrentBalance only
// decreases via payments and is clamped at zero, never negative.
type Loan struct {
	ID              int64
	PrincipalAmount decimal.Decimal
	CurrentBalance  decimal.Decimal
	InterestRate    decimal.Decimal // annual percentage
	MonthlyPayment  decimal.Decimal
	StartDate       string // calendar date, DateLayout
	Description     string
	Lender          string
	LoanType        string
	IsActive        bool
}

// Validate ensures the loan adheres to domain rules
func (l *Loan) Validate() error {
	if l.PrincipalAmount.LessThanOrEqual(decimal.Zero) || l.CurrentBalance.LessThanOrEqual(decimal.Zero) || l.StartDate == "" {
		return NewValidationError("principal amount, current balance and start date are required")
	}
	if _, err := time.Parse(DateLayout, l.StartDate); err != nil {
		return NewValidationError("start date must be in YYYY-MM-DD format")
	}
	return nil
}

// ApplyPayment reduces the balance by the principal portion, clamped at zero
func (l *Loan) ApplyPayment(principal decimal.Decimal) {
	l.CurrentBalance = l.CurrentBalance.Sub(principal)
	if l.CurrentBalance.IsNegative() {
		l.CurrentBalance = decimal.Zero
	}
}

// LoanPayment records a single payment made against a loan
type LoanPayment struct {
	ID            int64
	LoanID        int64
	PaymentAmount decimal.Decimal
	PrincipalPaid decimal.Decimal
	PaymentDate   string // calendar date, DateLayout
	Description   string
	CreatedAt     time.Time
}

// Validate ensures the payment adheres to domain rules
func (p *LoanPayment) Validate() error {
	if p.PaymentAmount.LessThanOrEqual(decimal.Zero) || p.PaymentDate == "" {
		return NewValidationError("payment amount and payment date are required")
	}
	if _, err := time.Parse(DateLayout, p.PaymentDate); err != nil {
		return NewValidationError("payment date must be in YYYY-MM-DD format")
	}
	return nil
}
