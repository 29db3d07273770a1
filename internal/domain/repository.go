package domain

import "context"

// InvestmentRepository defines the interface for investment persistence operations
type InvestmentRepository interface {
	// Create persists a new investment and assigns its ID
	Create(ctx context.Context, investment *Investment) error

	// GetByID retrieves an investment by its ID
	GetByID(ctx context.Context, id int64) (*Investment, error)

	// List retrieves all live investments ordered by date descending
	List(ctx context.Context) ([]*Investment, error)

	// Update persists changed field values for an existing investment
	Update(ctx context.Context, investment *Investment) error

	// Delete removes an investment from the live set.
	// History entries for the investment are kept by the history repository.
	Delete(ctx context.Context, id int64) error
}

// InvestmentHistoryRepository defines the interface for the append-only
// investment audit log
type InvestmentHistoryRepository interface {
	// Append persists a new history entry and assigns its ID.
	// Entries are never updated or deleted.
	Append(ctx context.Context, entry *InvestmentHistory) error

	// ListByInvestment retrieves all entries for an investment ordered by
	// changed_at descending, most recent first (entry ID breaks ties, since
	// the two entries of a restore can share a timestamp)
	ListByInvestment(ctx context.Context, investmentID int64) ([]*InvestmentHistory, error)

	// GetVersion retrieves the entry capturing the given version of an investment
	GetVersion(ctx context.Context, investmentID int64, version int) (*InvestmentHistory, error)
}

// ContributionRepository defines the interface for monthly contribution
// persistence operations
type ContributionRepository interface {
	// Create persists a new contribution and assigns its ID
	Create(ctx context.Context, contribution *MonthlyContribution) error

	// GetByID retrieves a contribution by its ID
	GetByID(ctx context.Context, id int64) (*MonthlyContribution, error)

	// GetByMonth retrieves the contribution for a (year, month) pair
	GetByMonth(ctx context.Context, year, month int) (*MonthlyContribution, error)

	// List retrieves all contributions ordered by (year, month) ascending
	List(ctx context.Context) ([]*MonthlyContribution, error)

	// Update persists changed field values (amount, cumulative) for a contribution
	Update(ctx context.Context, contribution *MonthlyContribution) error

	// Delete removes a contribution
	Delete(ctx context.Context, id int64) error
}

// LoanRepository defines the interface for loan persistence operations
type LoanRepository interface {
	// Create persists a new loan and assigns its ID
	Create(ctx context.Context, loan *Loan) error

	// GetByID retrieves a loan by its ID
	GetByID(ctx context.Context, id int64) (*Loan, error)

	// ListActive retrieves all active loans
	ListActive(ctx context.Context) ([]*Loan, error)

	// Update persists changed field values for an existing loan
	Update(ctx context.Context, loan *Loan) error
}

// LoanPaymentRepository defines the interface for loan payment records
type LoanPaymentRepository interface {
	// Create persists a new payment record and assigns its ID
	Create(ctx context.Context, payment *LoanPayment) error

	// ListByLoan retrieves all payments for a loan ordered by payment date
	// descending, most recent first
	ListByLoan(ctx context.Context, loanID int64) ([]*LoanPayment, error)
}

// GoalRepository defines the interface for goal persistence operations
type GoalRepository interface {
	// Create persists a new goal and assigns its ID
	Create(ctx context.Context, goal *Goal) error

	// GetByID retrieves a goal by its ID
	GetByID(ctx context.Context, id int64) (*Goal, error)

	// ListActive retrieves all active goals
	ListActive(ctx context.Context) ([]*Goal, error)

	// Update persists changed field values for an existing goal
	Update(ctx context.Context, goal *Goal) error
}
