package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// MonthlyPoint is one point in the monthly investment series
type MonthlyPoint struct {
	Month string
	Total decimal.Decimal
}

// GoalsSummary aggregates all active goals
type GoalsSummary struct {
	TotalGoals     int
	TotalSaved     decimal.Decimal
	TotalTarget    decimal.Decimal
	CompletionRate int64
}

// Summary represents the aggregated dashboard view
type Summary struct {
	TotalInvestments   decimal.Decimal
	TotalDebts         decimal.Decimal
	NetWorth           decimal.Decimal
	Goals              GoalsSummary
	MonthlyInvestments []MonthlyPoint
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	ContributionRepo domain.ContributionRepository
	LoanRepo         domain.LoanRepository
	GoalRepo         domain.GoalRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	contributionRepo domain.ContributionRepository,
	loanRepo domain.LoanRepository,
	goalRepo domain.GoalRepository,
) *DashboardService {
	return &DashboardService{
		ContributionRepo: contributionRepo,
		LoanRepo:         loanRepo,
		GoalRepo:         goalRepo,
	}
}

// GetSummary builds the dashboard aggregate
// Logic:
//  1. TotalInvestments: sum of all monthly contribution amounts
//  2. TotalDebts: sum of active loan balances
//  3. NetWorth: investments minus debts, may be negative
//  4. Goals: counts plus overall completion rate, rounded to a whole percent
//  5. MonthlyInvestments: the cumulative series in chronological order,
//     keyed by YYYY-MM
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	contributions, err := s.ContributionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	totalInvestments := decimal.Zero
	monthly := make([]MonthlyPoint, 0, len(contributions))
	for _, c := range contributions {
		totalInvestments = totalInvestments.Add(c.Amount)
		monthly = append(monthly, MonthlyPoint{
			Month: c.MonthKey(),
			Total: c.Cumulative,
		})
	}

	loans, err := s.LoanRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	totalDebts := decimal.Zero
	for _, l := range loans {
		totalDebts = totalDebts.Add(l.CurrentBalance)
	}

	goals, err := s.GoalRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	totalSaved := decimal.Zero
	totalTarget := decimal.Zero
	for _, g := range goals {
		totalSaved = totalSaved.Add(g.CurrentAmount)
		totalTarget = totalTarget.Add(g.TargetAmount)
	}

	var completionRate int64
	if totalTarget.IsPositive() {
		completionRate = totalSaved.Div(totalTarget).Mul(hundred).Round(0).IntPart()
	}

	return &Summary{
		TotalInvestments: totalInvestments,
		TotalDebts:       totalDebts,
		NetWorth:         totalInvestments.Sub(totalDebts),
		Goals: GoalsSummary{
			TotalGoals:     len(goals),
			TotalSaved:     totalSaved,
			TotalTarget:    totalTarget,
			CompletionRate: completionRate,
		},
		MonthlyInvestments: monthly,
	}, nil
}
