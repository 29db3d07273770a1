package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// loanRepository implements domain.LoanRepository
type loanRepository struct {
	db *DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *DB) domain.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans
			(principal_amount, current_balance, interest_rate, monthly_payment, start_date, description, lender, loan_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		loan.PrincipalAmount.String(),
		loan.CurrentBalance.String(),
		loan.InterestRate.String(),
		loan.MonthlyPayment.String(),
		loan.StartDate,
		loan.Description,
		loan.Lender,
		loan.LoanType,
		loan.IsActive,
	).Scan(&loan.ID)
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	query := `
		SELECT id, principal_amount, current_balance, interest_rate, monthly_payment, start_date, description, lender, loan_type, is_active
		FROM loans
		WHERE id = $1
	`

	loan, err := scanLoan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get loan by ID: %w", err)
	}
	return loan, nil
}

func (r *loanRepository) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	query := `
		SELECT id, principal_amount, current_balance, interest_rate, monthly_payment, start_date, description, lender, loan_type, is_active
		FROM loans
		WHERE is_active = TRUE
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]*domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	query := `
		UPDATE loans
		SET principal_amount = $1, current_balance = $2, interest_rate = $3, monthly_payment = $4,
		    start_date = $5, description = $6, lender = $7, loan_type = $8, is_active = $9
		WHERE id = $10
	`

	result, err := r.db.ExecContext(ctx, query,
		loan.PrincipalAmount.String(),
		loan.CurrentBalance.String(),
		loan.InterestRate.String(),
		loan.MonthlyPayment.String(),
		loan.StartDate,
		loan.Description,
		loan.Lender,
		loan.LoanType,
		loan.IsActive,
		loan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	return requireRow(result)
}

func scanLoan(row rowScanner) (*domain.Loan, error) {
	var loan domain.Loan
	var principalStr, balanceStr, rateStr, paymentStr string
	var startDate time.Time

	if err := row.Scan(
		&loan.ID,
		&principalStr,
		&balanceStr,
		&rateStr,
		&paymentStr,
		&startDate,
		&loan.Description,
		&loan.Lender,
		&loan.LoanType,
		&loan.IsActive,
	); err != nil {
		return nil, err
	}

	for _, field := range []struct {
		raw  string
		dest *decimal.Decimal
	}{
		{principalStr, &loan.PrincipalAmount},
		{balanceStr, &loan.CurrentBalance},
		{rateStr, &loan.InterestRate},
		{paymentStr, &loan.MonthlyPayment},
	} {
		value, err := decimal.NewFromString(field.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse loan amount: %w", err)
		}
		*field.dest = value
	}
	loan.StartDate = startDate.Format(domain.DateLayout)
	return &loan, nil
}

// loanPaymentRepository implements domain.LoanPaymentRepository
type loanPaymentRepository struct {
	db *DB
}

// NewLoanPaymentRepository creates a new loan payment repository
func NewLoanPaymentRepository(db *DB) domain.LoanPaymentRepository {
	return &loanPaymentRepository{db: db}
}

func (r *loanPaymentRepository) Create(ctx context.Context, payment *domain.LoanPayment) error {
	query := `
		INSERT INTO loan_payments (loan_id, payment_amount, principal_paid, payment_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		payment.LoanID,
		payment.PaymentAmount.String(),
		payment.PrincipalPaid.String(),
		payment.PaymentDate,
		payment.Description,
		payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("failed to create loan payment: %w", err)
	}
	return nil
}

func (r *loanPaymentRepository) ListByLoan(ctx context.Context, loanID int64) ([]*domain.LoanPayment, error) {
	query := `
		SELECT id, loan_id, payment_amount, principal_paid, payment_date, description, created_at
		FROM loan_payments
		WHERE loan_id = $1
		ORDER BY payment_date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan payments: %w", err)
	}
	defer rows.Close()

	payments := make([]*domain.LoanPayment, 0)
	for rows.Next() {
		var payment domain.LoanPayment
		var amountStr, principalStr string
		var paymentDate time.Time

		if err := rows.Scan(
			&payment.ID,
			&payment.LoanID,
			&amountStr,
			&principalStr,
			&paymentDate,
			&payment.Description,
			&payment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan payment: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse payment amount: %w", err)
		}
		principal, err := decimal.NewFromString(principalStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse principal paid: %w", err)
		}
		payment.PaymentAmount = amount
		payment.PrincipalPaid = principal
		payment.PaymentDate = paymentDate.Format(domain.DateLayout)
		payments = append(payments, &payment)
	}
	return payments, rows.Err()
}
