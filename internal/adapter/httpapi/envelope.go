package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// envelope is the response wrapper used by every endpoint
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// respondError maps domain errors to status codes:
// validation failures to 400, missing records to 404, everything else to 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: vErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, envelope{Success: false, Error: notFoundMsg})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Error: message})
}
