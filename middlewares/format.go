package middlewares

import (
	"errors"
	"log"
	"net/http"

	"hospitalflow/models"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"error": message})
}

// RespondError maps a workflow error to its HTTP status so each failure kind
// reaches the frontend as a distinguishable message.
func RespondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs), errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": "not_found"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "kind": "invalid_transition"})
	case errors.Is(err, models.ErrInvalidTransfer):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "kind": "invalid_transfer"})
	case errors.Is(err, models.ErrOverpayment):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "kind": "overpayment"})
	default:
		log.Printf("HTTP 500 - unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
