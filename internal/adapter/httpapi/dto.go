package httpapi

import (
	"time"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/dashboard"
)

// DTOs mirror the wire format: snake_case field names, amounts as JSON
// numbers. The domain keeps decimals; the edge converts to float64.

type investmentDTO struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toInvestmentDTO(inv *domain.Investment) investmentDTO {
	return investmentDTO{
		ID:          inv.ID,
		Amount:      inv.Amount.InexactFloat64(),
		Date:        inv.Date,
		Description: inv.Description,
		Category:    inv.Category,
		Version:     inv.Version,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func toInvestmentDTOs(investments []*domain.Investment) []investmentDTO {
	dtos := make([]investmentDTO, 0, len(investments))
	for _, inv := range investments {
		dtos = append(dtos, toInvestmentDTO(inv))
	}
	return dtos
}

type historyEntryDTO struct {
	ID                int64     `json:"id"`
	InvestmentID      int64     `json:"investment_id"`
	Amount            float64   `json:"amount"`
	Date              string    `json:"date"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Version           int       `json:"version"`
	ChangeType        string    `json:"change_type"`
	ChangeDescription string    `json:"change_description"`
	ChangedAt         time.Time `json:"changed_at"`
}

func toHistoryDTOs(entries []*domain.InvestmentHistory) []historyEntryDTO {
	dtos := make([]historyEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, historyEntryDTO{
			ID:                e.ID,
			InvestmentID:      e.InvestmentID,
			Amount:            e.Amount.InexactFloat64(),
			Date:              e.Date,
			Description:       e.Description,
			Category:          e.Category,
			Version:           e.Version,
			ChangeType:        string(e.ChangeType),
			ChangeDescription: e.ChangeNote,
			ChangedAt:         e.ChangedAt,
		})
	}
	return dtos
}

type contributionDTO struct {
	ID         int64     `json:"id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	MonthName  string    `json:"month_name"`
	Amount     float64   `json:"amount"`
	Cumulative float64   `json:"cumulative"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toContributionDTO(c *domain.MonthlyContribution) contributionDTO {
	return contributionDTO{
		ID:         c.ID,
		Year:       c.Year,
		Month:      c.Month,
		MonthName:  c.Label(),
		Amount:     c.Amount.InexactFloat64(),
		Cumulative: c.Cumulative.InexactFloat64(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toContributionDTOs(contributions []*domain.MonthlyContribution) []contributionDTO {
	dtos := make([]contributionDTO, 0, len(contributions))
	for _, c := range contributions {
		dtos = append(dtos, toContributionDTO(c))
	}
	return dtos
}

type loanDTO struct {
	ID              int64   `json:"id"`
	PrincipalAmount float64 `json:"principal_amount"`
	CurrentBalance  float64 `json:"current_balance"`
	InterestRate    float64 `json:"interest_rate"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	StartDate       string  `json:"start_date"`
	Description     string  `json:"description"`
	Lender          string  `json:"lender"`
	LoanType        string  `json:"loan_type"`
	IsActive        bool    `json:"is_active"`
}

func toLoanDTO(l *domain.Loan) loanDTO {
	return loanDTO{
		ID:              l.ID,
		PrincipalAmount: l.PrincipalAmount.InexactFloat64(),
		CurrentBalance:  l.CurrentBalance.InexactFloat64(),
		InterestRate:    l.InterestRate.InexactFloat64(),
		MonthlyPayment:  l.MonthlyPayment.InexactFloat64(),
		StartDate:       l.StartDate,
		Description:     l.Description,
		Lender:          l.Lender,
		LoanType:        l.LoanType,
		IsActive:        l.IsActive,
	}
}

func toLoanDTOs(loans []*domain.Loan) []loanDTO {
	dtos := make([]loanDTO, 0, len(loans))
	for _, l := range loans {
		dtos = append(dtos, toLoanDTO(l))
	}
	return dtos
}

type loanPaymentDTO struct {
	ID            int64     `json:"id"`
	LoanID        int64     `json:"loan_id"`
	PaymentAmount float64   `json:"payment_amount"`
	PrincipalPaid float64   `json:"principal_paid"`
	PaymentDate   string    `json:"payment_date"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

func toLoanPaymentDTOs(payments []*domain.LoanPayment) []loanPaymentDTO {
	dtos := make([]loanPaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, loanPaymentDTO{
			ID:            p.ID,
			LoanID:        p.LoanID,
			PaymentAmount: p.PaymentAmount.InexactFloat64(),
			PrincipalPaid: p.PrincipalPaid.InexactFloat64(),
			PaymentDate:   p.PaymentDate,
			Description:   p.Description,
			CreatedAt:     p.CreatedAt,
		})
	}
	return dtos
}

type goalDTO struct {
	ID            int64   `json:"id"`
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    *string `json:"target_date"`
	GoalType      string  `json:"goal_type"`
	Description   string  `json:"description"`
	IsActive      bool    `json:"is_active"`
}

func toGoalDTO(g *domain.Goal) goalDTO {
	return goalDTO{
		ID:            g.ID,
		GoalName:      g.Name,
		TargetAmount:  g.TargetAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		TargetDate:    g.TargetDate,
		GoalType:      g.GoalType,
		Description:   g.Description,
		IsActive:      g.IsActive,
	}
}

func toGoalDTOs(goals []*domain.Goal) []goalDTO {
	dtos := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		dtos = append(dtos, toGoalDTO(g))
	}
	return dtos
}

type goalsSummaryDTO struct {
	TotalGoals     int     `json:"totalGoals"`
	TotalSaved     float64 `json:"totalSaved"`
	TotalTarget    float64 `json:"totalTarget"`
	CompletionRate int64   `json:"completionRate"`
}

type monthlyPointDTO struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type dashboardDTO struct {
	TotalInvestments   float64           `json:"totalInvestments"`
	TotalDebts         float64           `json:"totalDebts"`
	NetWorth           float64           `json:"netWorth"`
	Goals              goalsSummaryDTO   `json:"goals"`
	MonthlyInvestments []monthlyPointDTO `json:"monthlyInvestments"`
}

func toDashboardDTO(s *dashboard.Summary) dashboardDTO {
	monthly := make([]monthlyPointDTO, 0, len(s.MonthlyInvestments))
	for _, p := range s.MonthlyInvestments {
		monthly = append(monthly, monthlyPointDTO{
			Month: p.Month,
			Total: p.Total.InexactFloat64(),
		})
	}
	return dashboardDTO{
		TotalInvestments: s.TotalInvestments.InexactFloat64(),
		TotalDebts:       s.TotalDebts.InexactFloat64(),
		NetWorth:         s.NetWorth.InexactFloat64(),
		Goals: goalsSummaryDTO{
			TotalGoals:     s.Goals.TotalGoals,
			TotalSaved:     s.Goals.TotalSaved.InexactFloat64(),
			TotalTarget:    s.Goals.TotalTarget.InexactFloat64(),
			CompletionRate: s.Goals.CompletionRate,
		},
		MonthlyInvestments: monthly,
	}
}
