package httpapi

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/usecase/investment"
)

type createInvestmentRequest struct {
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type updateInvestmentRequest struct {
	Amount            float64 `json:"amount"`
	Date              string  `json:"date"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	ChangeDescription string  `json:"change_description"`
}

func (s *Server) listInvestments(c *gin.Context) {
	investments, err := s.Investments.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Investment not found")
		return
	}
	respondOK(c, toInvestmentDTOs(investments))
}

func (s *Server) createInvestment(c *gin.Context) {
	var req createInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := s.Investments.Create(c.Request.Context(), investment.CreateInvestmentInput{
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err, "Investment not found")
		return
	}
	respondOK(c, toInvestmentDTO(created))
}

func (s *Server) updateInvestment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := s.Investments.Update(c.Request.Context(), id, investment.UpdateInvestmentInput{
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		ChangeNote:  req.ChangeDescription,
	})
	if err != nil {
		respondError(c, err, "Investment not found")
		return
	}
	respondOK(c, toInvestmentDTO(updated))
}

func (s *Server) deleteInvestment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := s.Investments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Investment not found")
		return
	}
	respondOK(c, nil)
}

func (s *Server) investmentHistory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	entries, err := s.Investments.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Investment not found")
		return
	}
	respondOK(c, toHistoryDTOs(entries))
}

func (s *Server) restoreInvestment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	version, err := strconv.Atoi(c.Param("version"))
	if err != nil {
		respondBadRequest(c, "invalid version")
		return
	}

	restored, err := s.Investments.Restore(c.Request.Context(), id, version)
	if err != nil {
		respondError(c, err, "Investment or version not found")
		return
	}
	respondOK(c, toInvestmentDTO(restored))
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
