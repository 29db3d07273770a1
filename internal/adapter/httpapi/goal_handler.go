package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fekaduabera/Financial-Freedom/internal/usecase/goal"
)

type createGoalRequest struct {
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    *string `json:"target_date"`
	GoalType      string  `json:"goal_type"`
	Description   string  `json:"description"`
}

type updateGoalRequest struct {
	CurrentAmount float64 `json:"current_amount"`
}

func (s *Server) listGoals(c *gin.Context) {
	goals, err := s.Goals.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "Goal not found")
		return
	}
	respondOK(c, toGoalDTOs(goals))
}

func (s *Server) createGoal(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	created, err := s.Goals.Create(c.Request.Context(), goal.CreateGoalInput{
		Name:          req.GoalName,
		TargetAmount:  decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount: decimal.NewFromFloat(req.CurrentAmount),
		TargetDate:    req.TargetDate,
		GoalType:      req.GoalType,
		Description:   req.Description,
	})
	if err != nil {
		respondError(c, err, "Goal not found")
		return
	}
	respondOK(c, toGoalDTO(created))
}

func (s *Server) updateGoal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if _, err := s.Goals.UpdateCurrentAmount(c.Request.Context(), id, decimal.NewFromFloat(req.CurrentAmount)); err != nil {
		respondError(c, err, "Goal not found")
		return
	}
	respondOK(c, nil)
}
