// Package httpapi exposes the finance tracker over REST. Responses are
// wrapped in a {success, data, error} envelope; amounts are JSON numbers.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/fekaduabera/Financial-Freedom/internal/usecase/contribution"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/dashboard"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/goal"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/investment"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/loan"
)

// Server holds the usecase services behind the REST surface
type Server struct {
	Investments   *investment.InvestmentService
	Contributions *contribution.ContributionService
	Loans         *loan.LoanService
	Goals         *goal.GoalService
	Dashboard     *dashboard.DashboardService
}

// NewServer creates a new Server instance
func NewServer(
	investments *investment.InvestmentService,
	contributions *contribution.ContributionService,
	loans *loan.LoanService,
	goals *goal.GoalService,
	dash *dashboard.DashboardService,
) *Server {
	return &Server{
		Investments:   investments,
		Contributions: contributions,
		Loans:         loans,
		Goals:         goals,
		Dashboard:     dash,
	}
}

// Router builds the gin engine with all API routes registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	// CORS sits at the engine level so OPTIONS preflights are answered even
	// though no OPTIONS routes are registered
	router.Use(gin.Logger(), gin.Recovery(), RequestID(), CORS())

	api := router.Group("/api")

	api.GET("/investments", s.listInvestments)
	api.POST("/investments", s.createInvestment)
	api.PUT("/investments/:id", s.updateInvestment)
	api.DELETE("/investments/:id", s.deleteInvestment)
	api.GET("/investments/:id/history", s.investmentHistory)
	api.POST("/investments/:id/restore/:version", s.restoreInvestment)

	api.GET("/monthly-investments", s.listContributions)
	api.POST("/monthly-investments", s.createContribution)
	api.PUT("/monthly-investments/:id", s.updateContribution)
	api.DELETE("/monthly-investments/:id", s.deleteContribution)

	api.GET("/loans", s.listLoans)
	api.POST("/loans", s.createLoan)
	api.POST("/loans/:id/payments", s.recordLoanPayment)
	api.GET("/loans/:id/payments", s.listLoanPayments)

	api.GET("/goals", s.listGoals)
	api.POST("/goals", s.createGoal)
	api.PUT("/goals/:id", s.updateGoal)

	api.GET("/dashboard", s.dashboardSummary)

	return router
}
