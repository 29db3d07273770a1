package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/usecase/loan"
)

type createLoanRequest struct {
	PrincipalAmount float64 `json:"principal_amount"`
	CurrentBalance  float64 `json:"current_balance"`
	InterestRate    float64 `json:"interest_rate"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	StartDate       string  `json:"start_date"`
	Description     string  `json:"description"`
	Lender          string  `json:"lender"`
	LoanType        string  `json:"loan_type"`
}

type loanPaymentRequest struct {
	PaymentAmount    float64 `json:"payment_amount"`
	PrincipalPayment float64 `json:"principal_payment"`
	PaymentDate      string  `json:"payment_date"`
	Description      string  `json:"description"`
}

type loanPaymentResponse struct {
	ID               int64   `json:"id"`
	RemainingBalance float64 `json:"remaining_balance"`
}

func (s *Server) listLoans(c *gin.Context) {
	loans, err := s.Loans.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "Loan not found")
		return
	}
	respondOK(c, toLoanDTOs(loans))
}

func (s *Server) createLoan(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := s.Loans.Create(c.Request.Context(), loan.CreateLoanInput{
		PrincipalAmount: decimal.NewFromFloat(req.PrincipalAmount),
		CurrentBalance:  decimal.NewFromFloat(req.CurrentBalance),
		InterestRate:    decimal.NewFromFloat(req.InterestRate),
		MonthlyPayment:  decimal.NewFromFloat(req.MonthlyPayment),
		StartDate:       req.StartDate,
		Description:     req.Description,
		Lender:          req.Lender,
		LoanType:        req.LoanType,
	})
	if err != nil {
		respondError(c, err, "Loan not found")
		return
	}
	respondOK(c, toLoanDTO(created))
}

func (s *Server) recordLoanPayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req loanPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	payment, updated, err := s.Loans.RecordPayment(c.Request.Context(), id, loan.PaymentInput{
		PaymentAmount: decimal.NewFromFloat(req.PaymentAmount),
		PrincipalPaid: decimal.NewFromFloat(req.PrincipalPayment),
		PaymentDate:   req.PaymentDate,
		Description:   req.Description,
	})
	if err != nil {
		respondError(c, err, "Loan not found")
		return
	}
	respondOK(c, loanPaymentResponse{
		ID:               payment.ID,
		RemainingBalance: updated.CurrentBalance.InexactFloat64(),
	})
}

func (s *Server) listLoanPayments(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	payments, err := s.Loans.ListPayments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Loan not found")
		return
	}
	respondOK(c, toLoanPaymentDTOs(payments))
}
