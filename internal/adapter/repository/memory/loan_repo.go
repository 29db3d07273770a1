package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// LoanRepo implements domain.LoanRepository in memory
type LoanRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.Loan
}

// NewLoanRepo creates a new in-memory loan repository
func NewLoanRepo() *LoanRepo {
	return &LoanRepo{items: make(map[int64]*domain.Loan)}
}

func (r *LoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	loan.ID = r.nextID
	stored := *loan
	r.items[loan.ID] = &stored
	return nil
}

func (r *LoanRepo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *LoanRepo) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loans := make([]*domain.Loan, 0, len(r.items))
	for _, stored := range r.items {
		if !stored.IsActive {
			continue
		}
		copied := *stored
		loans = append(loans, &copied)
	}
	sort.Slice(loans, func(i, j int) bool {
		return loans[i].ID < loans[j].ID
	})
	return loans, nil
}

func (r *LoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[loan.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *loan
	r.items[loan.ID] = &stored
	return nil
}

// LoanPaymentRepo implements domain.LoanPaymentRepository in memory
type LoanPaymentRepo struct {
	mu       sync.RWMutex
	nextID   int64
	payments []*domain.LoanPayment
}

// NewLoanPaymentRepo creates a new in-memory loan payment repository
func NewLoanPaymentRepo() *LoanPaymentRepo {
	return &LoanPaymentRepo{}
}

func (r *LoanPaymentRepo) Create(ctx context.Context, payment *domain.LoanPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	payment.ID = r.nextID
	stored := *payment
	r.payments = append(r.payments, &stored)
	return nil
}

func (r *LoanPaymentRepo) ListByLoan(ctx context.Context, loanID int64) ([]*domain.LoanPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]*domain.LoanPayment, 0)
	for _, stored := range r.payments {
		if stored.LoanID == loanID {
			copied := *stored
			payments = append(payments, &copied)
		}
	}
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].PaymentDate != payments[j].PaymentDate {
			return payments[i].PaymentDate > payments[j].PaymentDate
		}
		return payments[i].ID > payments[j].ID
	})
	return payments, nil
}
