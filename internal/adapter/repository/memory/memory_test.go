package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

func TestInvestmentRepo_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentRepo()

	first := &domain.Investment{Amount: decimal.NewFromInt(100), Date: "2024-01-15", Version: 1}
	second := &domain.Investment{Amount: decimal.NewFromInt(200), Date: "2024-02-15", Version: 1}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestInvestmentRepo_ListOrdersByDateDescending(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentRepo()

	require.NoError(t, repo.Create(ctx, &domain.Investment{Amount: decimal.NewFromInt(1), Date: "2024-02-01", Version: 1}))
	require.NoError(t, repo.Create(ctx, &domain.Investment{Amount: decimal.NewFromInt(2), Date: "2024-03-01", Version: 1}))
	require.NoError(t, repo.Create(ctx, &domain.Investment{Amount: decimal.NewFromInt(3), Date: "2024-01-01", Version: 1}))

	investments, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, investments, 3)
	assert.Equal(t, "2024-03-01", investments[0].Date)
	assert.Equal(t, "2024-02-01", investments[1].Date)
	assert.Equal(t, "2024-01-01", investments[2].Date)
}

func TestInvestmentRepo_GetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentRepo()

	created := &domain.Investment{Amount: decimal.NewFromInt(100), Date: "2024-01-15", Version: 1}
	require.NoError(t, repo.Create(ctx, created))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	// Mutating the returned value must not leak into the store
	fetched.Amount = decimal.NewFromInt(999)

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, again.Amount.Equal(decimal.NewFromInt(100)))
}

func TestHistoryRepo_RestorePairOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentHistoryRepo()

	at := time.Now()
	backup := &domain.InvestmentHistory{InvestmentID: 1, Version: 2, ChangeType: domain.ChangeTypeBackupBeforeRestore, ChangedAt: at}
	restored := &domain.InvestmentHistory{InvestmentID: 1, Version: 3, ChangeType: domain.ChangeTypeRestored, ChangedAt: at}

	require.NoError(t, repo.Append(ctx, backup))
	require.NoError(t, repo.Append(ctx, restored))

	entries, err := repo.ListByInvestment(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Same timestamp: the later entry lists first
	assert.Equal(t, domain.ChangeTypeRestored, entries[0].ChangeType)
	assert.Equal(t, domain.ChangeTypeBackupBeforeRestore, entries[1].ChangeType)
}

func TestHistoryRepo_GetVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewInvestmentHistoryRepo()

	require.NoError(t, repo.Append(ctx, &domain.InvestmentHistory{InvestmentID: 1, Version: 1, Amount: decimal.NewFromInt(100), ChangedAt: time.Now()}))
	require.NoError(t, repo.Append(ctx, &domain.InvestmentHistory{InvestmentID: 1, Version: 2, Amount: decimal.NewFromInt(150), ChangedAt: time.Now()}))

	entry, err := repo.GetVersion(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(100)))

	_, err = repo.GetVersion(ctx, 1, 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContributionRepo_ListOrdersChronologically(t *testing.T) {
	ctx := context.Background()
	repo := NewContributionRepo()

	require.NoError(t, repo.Create(ctx, &domain.MonthlyContribution{Year: 2024, Month: 3, Amount: decimal.NewFromInt(1)}))
	require.NoError(t, repo.Create(ctx, &domain.MonthlyContribution{Year: 2023, Month: 12, Amount: decimal.NewFromInt(2)}))
	require.NoError(t, repo.Create(ctx, &domain.MonthlyContribution{Year: 2024, Month: 1, Amount: decimal.NewFromInt(3)}))

	contributions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contributions, 3)
	assert.Equal(t, "2023-12", contributions[0].MonthKey())
	assert.Equal(t, "2024-01", contributions[1].MonthKey())
	assert.Equal(t, "2024-03", contributions[2].MonthKey())
}

func TestContributionRepo_GetByMonth(t *testing.T) {
	ctx := context.Background()
	repo := NewContributionRepo()

	require.NoError(t, repo.Create(ctx, &domain.MonthlyContribution{Year: 2024, Month: 1, Amount: decimal.NewFromInt(5000)}))

	found, err := repo.GetByMonth(ctx, 2024, 1)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(5000)))

	_, err = repo.GetByMonth(ctx, 2024, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoanRepo_ListActiveSkipsInactive(t *testing.T) {
	ctx := context.Background()
	repo := NewLoanRepo()

	active := &domain.Loan{PrincipalAmount: decimal.NewFromInt(1000), CurrentBalance: decimal.NewFromInt(500), StartDate: "2023-01-01", IsActive: true}
	inactive := &domain.Loan{PrincipalAmount: decimal.NewFromInt(2000), CurrentBalance: decimal.NewFromInt(100), StartDate: "2023-01-01", IsActive: false}

	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	loans, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, active.ID, loans[0].ID)
}

func TestLoanPaymentRepo_ListByLoanMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewLoanPaymentRepo()

	require.NoError(t, repo.Create(ctx, &domain.LoanPayment{LoanID: 1, PaymentAmount: decimal.NewFromInt(100), PrincipalPaid: decimal.NewFromInt(100), PaymentDate: "2024-01-01"}))
	require.NoError(t, repo.Create(ctx, &domain.LoanPayment{LoanID: 1, PaymentAmount: decimal.NewFromInt(200), PrincipalPaid: decimal.NewFromInt(200), PaymentDate: "2024-02-01"}))
	require.NoError(t, repo.Create(ctx, &domain.LoanPayment{LoanID: 2, PaymentAmount: decimal.NewFromInt(300), PrincipalPaid: decimal.NewFromInt(300), PaymentDate: "2024-03-01"}))

	payments, err := repo.ListByLoan(ctx, 1)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "2024-02-01", payments[0].PaymentDate)
	assert.Equal(t, "2024-01-01", payments[1].PaymentDate)
}

func TestGoalRepo_UpdateUnknownGoal(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepo()

	err := repo.Update(ctx, &domain.Goal{ID: 42, Name: "Ghost", TargetAmount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
