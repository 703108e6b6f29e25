package handler

import (
	"net/http"

	"gamevault/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// svc is the catalog service all handlers delegate to; set once at startup.
var svc *catalog.Service

// Init wires the handlers to a catalog service.
func Init(s *catalog.Service) {
	svc = s
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"An error message"`
}

// MessageResponse represents a generic success message.
type MessageResponse struct {
	Message string `json:"message" example:"Game deleted"`
}

// respondError maps catalog errors to HTTP status codes. Validation and gate
// failures are the caller's to fix; anything else is a persistence failure.
func respondError(c *gin.Context, err error) {
	switch {
	case catalog.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case catalog.IsRejected(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
