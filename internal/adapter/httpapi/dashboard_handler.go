package httpapi

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) dashboardSummary(c *gin.Context) {
	summary, err := s.Dashboard.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, toDashboardDTO(summary))
}
