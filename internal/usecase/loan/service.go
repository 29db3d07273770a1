package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

const defaultLoanType = "General"

// CreateLoanInput represents the input for registering a loan
type CreateLoanInput struct {
	PrincipalAmount decimal.Decimal
	CurrentBalance  decimal.Decimal
	InterestRate    decimal.Decimal
	MonthlyPayment  decimal.Decimal
	StartDate       string
	Description     string
	Lender          string
	LoanType        string
}

// PaymentInput represents the input for recording a loan payment.
// PrincipalPaid is the portion applied to the balance; when zero, the full
// payment amount is treated as principal.
type PaymentInput struct {
	PaymentAmount decimal.Decimal
	PrincipalPaid decimal.Decimal
	PaymentDate   string
	Description   string
}

// LoanService handles loan tracking and payments
type LoanService struct {
	LoanRepo    domain.LoanRepository
	PaymentRepo domain.LoanPaymentRepository
}

// NewLoanService creates a new LoanService instance
func NewLoanService(loanRepo domain.LoanRepository, paymentRepo domain.LoanPaymentRepository) *LoanService {
	return &LoanService{
		LoanRepo:    loanRepo,
		PaymentRepo: paymentRepo,
	}
}

// ListActive returns all active loans
func (s *LoanService) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	return s.LoanRepo.ListActive(ctx)
}

// Create registers a new loan
func (s *LoanService) Create(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	loanType := input.LoanType
	if loanType == "" {
		loanType = defaultLoanType
	}

	loan := &domain.Loan{
		PrincipalAmount: input.PrincipalAmount,
		CurrentBalance:  input.CurrentBalance,
		InterestRate:    input.InterestRate,
		MonthlyPayment:  input.MonthlyPayment,
		StartDate:       input.StartDate,
		Description:     input.Description,
		Lender:          input.Lender,
		LoanType:        loanType,
		IsActive:        true,
	}

	if err := loan.Validate(); err != nil {
		return nil, err
	}

	if err := s.LoanRepo.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return loan, nil
}

// RecordPayment applies a payment to a loan's balance and persists the record
// Logic:
//  1. Validate the payment; fetch the loan (not-found surfaces as ErrNotFound)
//  2. Decrement the balance by the principal portion, clamped at zero
//  3. Persist the updated loan, then the payment record
//
// The balance update and the payment insert are two separate writes with no
// shared transaction; concurrent payments against the persisted backend can
// race. Known limitation.
func (s *LoanService) RecordPayment(ctx context.Context, loanID int64, input PaymentInput) (*domain.LoanPayment, *domain.Loan, error) {
	principal := input.PrincipalPaid
	if principal.LessThanOrEqual(decimal.Zero) {
		principal = input.PaymentAmount
	}

	payment := &domain.LoanPayment{
		LoanID:        loanID,
		PaymentAmount: input.PaymentAmount,
		PrincipalPaid: principal,
		PaymentDate:   input.PaymentDate,
		Description:   input.Description,
		CreatedAt:     time.Now(),
	}

	if err := payment.Validate(); err != nil {
		return nil, nil, err
	}

	loan, err := s.LoanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}

	loan.ApplyPayment(principal)

	if err := s.LoanRepo.Update(ctx, loan); err != nil {
		return nil, nil, fmt.Errorf("failed to update loan balance: %w", err)
	}

	if err := s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return payment, loan, nil
}

// ListPayments returns all payments for a loan, most recent first
func (s *LoanService) ListPayments(ctx context.Context, loanID int64) ([]*domain.LoanPayment, error) {
	if _, err := s.LoanRepo.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	return s.PaymentRepo.ListByLoan(ctx, loanID)
}
