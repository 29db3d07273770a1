package dashboard

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

type MockContributionRepository struct {
	mock.Mock
}

func (m *MockContributionRepository) Create(ctx context.Context, c *domain.MonthlyContribution) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContributionRepository) GetByID(ctx context.Context, id int64) (*domain.MonthlyContribution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyContribution), args.Error(1)
}

func (m *MockContributionRepository) GetByMonth(ctx context.Context, year, month int) (*domain.MonthlyContribution, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyContribution), args.Error(1)
}

func (m *MockContributionRepository) List(ctx context.Context) ([]*domain.MonthlyContribution, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MonthlyContribution), args.Error(1)
}

func (m *MockContributionRepository) Update(ctx context.Context, c *domain.MonthlyContribution) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContributionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListActive(ctx context.Context) ([]*domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListActive(ctx context.Context) ([]*domain.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func newService() (*DashboardService, *MockContributionRepository, *MockLoanRepository, *MockGoalRepository) {
	contributions := new(MockContributionRepository)
	loans := new(MockLoanRepository)
	goals := new(MockGoalRepository)
	return NewDashboardService(contributions, loans, goals), contributions, loans, goals
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	service, contributions, loans, goals := newService()

	contributions.On("List", ctx).Return([]*domain.MonthlyContribution{
		{ID: 1, Year: 2024, Month: 1, Amount: decimal.NewFromInt(5000), Cumulative: decimal.NewFromInt(5000)},
		{ID: 2, Year: 2024, Month: 2, Amount: decimal.NewFromInt(3000), Cumulative: decimal.NewFromInt(8000)},
	}, nil)
	loans.On("ListActive", ctx).Return([]*domain.Loan{
		{ID: 1, CurrentBalance: decimal.NewFromInt(2500), IsActive: true},
		{ID: 2, CurrentBalance: decimal.NewFromInt(1500), IsActive: true},
	}, nil)
	goals.On("ListActive", ctx).Return([]*domain.Goal{
		{ID: 1, CurrentAmount: decimal.NewFromInt(3000), TargetAmount: decimal.NewFromInt(10000), IsActive: true},
		{ID: 2, CurrentAmount: decimal.NewFromInt(2000), TargetAmount: decimal.NewFromInt(10000), IsActive: true},
	}, nil)

	summary, err := service.GetSummary(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TotalInvestments.Equal(decimal.NewFromInt(8000)))
	assert.True(t, summary.TotalDebts.Equal(decimal.NewFromInt(4000)))
	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(4000)))

	assert.Equal(t, 2, summary.Goals.TotalGoals)
	assert.True(t, summary.Goals.TotalSaved.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summary.Goals.TotalTarget.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, int64(25), summary.Goals.CompletionRate)

	require.Len(t, summary.MonthlyInvestments, 2)
	assert.Equal(t, "2024-01", summary.MonthlyInvestments[0].Month)
	assert.True(t, summary.MonthlyInvestments[0].Total.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "2024-02", summary.MonthlyInvestments[1].Month)
	assert.True(t, summary.MonthlyInvestments[1].Total.Equal(decimal.NewFromInt(8000)))
}

func TestGetSummary_NegativeNetWorth(t *testing.T) {
	ctx := context.Background()
	service, contributions, loans, goals := newService()

	contributions.On("List", ctx).Return([]*domain.MonthlyContribution{
		{ID: 1, Year: 2024, Month: 1, Amount: decimal.NewFromInt(1000), Cumulative: decimal.NewFromInt(1000)},
	}, nil)
	loans.On("ListActive", ctx).Return([]*domain.Loan{
		{ID: 1, CurrentBalance: decimal.NewFromInt(5000), IsActive: true},
	}, nil)
	goals.On("ListActive", ctx).Return([]*domain.Goal{}, nil)

	summary, err := service.GetSummary(ctx)
	require.NoError(t, err)

	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(-4000)), "net worth is not clamped at zero")
}

func TestGetSummary_NoGoals(t *testing.T) {
	ctx := context.Background()
	service, contributions, loans, goals := newService()

	contributions.On("List", ctx).Return([]*domain.MonthlyContribution{}, nil)
	loans.On("ListActive", ctx).Return([]*domain.Loan{}, nil)
	goals.On("ListActive", ctx).Return([]*domain.Goal{}, nil)

	summary, err := service.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Goals.TotalGoals)
	assert.Equal(t, int64(0), summary.Goals.CompletionRate, "zero target yields a zero rate, not a division error")
	assert.NotNil(t, summary.MonthlyInvestments)
	assert.Empty(t, summary.MonthlyInvestments)
}

func TestGetSummary_CompletionRateRounds(t *testing.T) {
	ctx := context.Background()
	service, contributions, loans, goals := newService()

	contributions.On("List", ctx).Return([]*domain.MonthlyContribution{}, nil)
	loans.On("ListActive", ctx).Return([]*domain.Loan{}, nil)
	goals.On("ListActive", ctx).Return([]*domain.Goal{
		{ID: 1, CurrentAmount: decimal.NewFromInt(1), TargetAmount: decimal.NewFromInt(3), IsActive: true},
	}, nil)

	summary, err := service.GetSummary(ctx)
	require.NoError(t, err)

	// 1/3 of the way there rounds to 33 percent
	assert.Equal(t, int64(33), summary.Goals.CompletionRate)
}
