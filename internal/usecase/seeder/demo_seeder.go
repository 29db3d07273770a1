// Package seeder loads a small demo dataset so a fresh instance has
// something to show on the dashboard. Enabled with SEED_DEMO=1.
package seeder

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/usecase/contribution"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/goal"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/investment"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/loan"
)

// DemoSeeder populates the store with sample data through the regular
// services, so seeded records carry proper history and running totals.
type DemoSeeder struct {
	Investments   *investment.InvestmentService
	Contributions *contribution.ContributionService
	Loans         *loan.LoanService
	Goals         *goal.GoalService
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(
	investments *investment.InvestmentService,
	contributions *contribution.ContributionService,
	loans *loan.LoanService,
	goals *goal.GoalService,
) *DemoSeeder {
	return &DemoSeeder{
		Investments:   investments,
		Contributions: contributions,
		Loans:         loans,
		Goals:         goals,
	}
}

// Seed loads the sample dataset. It is not idempotent; run it against an
// empty store only.
func (s *DemoSeeder) Seed(ctx context.Context) error {
	investments := []investment.CreateInvestmentInput{
		{Amount: decimal.NewFromInt(5000), Date: "2024-01-15", Description: "TA-35 index fund", Category: "Mutual Funds"},
		{Amount: decimal.NewFromInt(3000), Date: "2024-02-15", Description: "Teva shares", Category: "Stocks"},
		{Amount: decimal.NewFromInt(4000), Date: "2024-03-15", Description: "Bitcoin", Category: "Crypto"},
		{Amount: decimal.NewFromInt(5500), Date: "2024-04-15", Description: "Nasdaq fund", Category: "Mutual Funds"},
	}
	for _, in := range investments {
		if _, err := s.Investments.Create(ctx, in); err != nil {
			return fmt.Errorf("failed to seed investment: %w", err)
		}
	}

	monthlyAmounts := []int64{5000, 3000, 4000, 5500, 2800, 4500, 3400, 4400, 2800}
	for i, amount := range monthlyAmounts {
		created, err := s.Contributions.Create(ctx, 2024, i+1)
		if err != nil {
			return fmt.Errorf("failed to seed month: %w", err)
		}
		if _, err := s.Contributions.UpdateAmount(ctx, created.ID, decimal.NewFromInt(amount)); err != nil {
			return fmt.Errorf("failed to seed contribution amount: %w", err)
		}
	}

	loans := []loan.CreateLoanInput{
		{
			PrincipalAmount: decimal.NewFromInt(800000),
			CurrentBalance:  decimal.NewFromInt(720000),
			InterestRate:    decimal.NewFromFloat(4.5),
			MonthlyPayment:  decimal.NewFromInt(4200),
			StartDate:       "2023-01-01",
			Description:     "Apartment mortgage",
			Lender:          "Bank Hapoalim",
			LoanType:        "Mortgage",
		},
		{
			PrincipalAmount: decimal.NewFromInt(50000),
			CurrentBalance:  decimal.NewFromInt(35000),
			InterestRate:    decimal.NewFromFloat(8.2),
			MonthlyPayment:  decimal.NewFromInt(1800),
			StartDate:       "2023-06-01",
			Description:     "Car loan",
			Lender:          "Bank Leumi",
			LoanType:        "Car",
		},
	}
	for _, in := range loans {
		if _, err := s.Loans.Create(ctx, in); err != nil {
			return fmt.Errorf("failed to seed loan: %w", err)
		}
	}

	emergencyDate := "2024-12-31"
	apartmentDate := "2026-06-01"
	goals := []goal.CreateGoalInput{
		{
			Name:          "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(100000),
			CurrentAmount: decimal.NewFromInt(65000),
			TargetDate:    &emergencyDate,
			GoalType:      "Savings",
			Description:   "Six months of expenses",
		},
		{
			Name:          "New Apartment",
			TargetAmount:  decimal.NewFromInt(400000),
			CurrentAmount: decimal.NewFromInt(120000),
			TargetDate:    &apartmentDate,
			GoalType:      "Investment",
			Description:   "Down payment for a new apartment",
		},
	}
	for _, in := range goals {
		if _, err := s.Goals.Create(ctx, in); err != nil {
			return fmt.Errorf("failed to seed goal: %w", err)
		}
	}

	return nil
}
