package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hospitalflow/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func respondErrorStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondError(c, err)
	return rec.Code
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", errors.Wrap(models.ErrValidation, "start date malformed"), http.StatusBadRequest},
		{"not found", errors.Wrap(models.ErrNotFound, "consultation missing"), http.StatusNotFound},
		{"invalid transition", errors.Wrap(models.ErrInvalidTransition, "completed is terminal"), http.StatusConflict},
		{"invalid transfer", errors.Wrap(models.ErrInvalidTransfer, "same doctor"), http.StatusConflict},
		{"overpayment", errors.Wrap(models.ErrOverpayment, "amount exceeds balance"), http.StatusConflict},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, respondErrorStatus(t, tt.err))
		})
	}
}
