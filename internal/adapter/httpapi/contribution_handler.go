package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createContributionRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type updateContributionRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) listContributions(c *gin.Context) {
	contributions, err := s.Contributions.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Monthly investment not found")
		return
	}
	respondOK(c, toContributionDTOs(contributions))
}

func (s *Server) createContribution(c *gin.Context) {
	var req createContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := s.Contributions.Create(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		respondError(c, err, "Monthly investment not found")
		return
	}
	respondOK(c, toContributionDTO(created))
}

func (s *Server) updateContribution(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := s.Contributions.UpdateAmount(c.Request.Context(), id, decimal.NewFromFloat(req.Amount))
	if err != nil {
		respondError(c, err, "Monthly investment not found")
		return
	}
	respondOK(c, toContributionDTO(updated))
}

func (s *Server) deleteContribution(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := s.Contributions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Monthly investment not found")
		return
	}
	respondOK(c, nil)
}
