package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hospitalflow/models"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTransferRouter mirrors the clinical route group: transfers belong to
// doctors and admins.
func newTransferRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	clinical := router.Group("/",
		TokenAuthMiddleware(),
		RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin),
	)
	clinical.POST("/visits/:id/transfer", func(c *gin.Context) {
		c.JSON(200, gin.H{"doctor_id": ExtractDoctorIDFromContext(c.Request.Context())})
	})
	return router
}

func TestDoctorRoleMayInvokeTransfer(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	router := newTransferRouter()

	token, err := utils.GenerateAccessToken("usr4", models.RoleDoctor, "doc1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/visits/visit-1/transfer?accessToken="+token, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "doc1", "doctor id from the token reaches the handler")
}

func TestReceptionRoleCannotInvokeTransfer(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	router := newTransferRouter()

	token, err := utils.GenerateAccessToken("usr2", models.RoleReception, "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/visits/visit-1/transfer?accessToken="+token, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	router := newTransferRouter()

	req := httptest.NewRequest(http.MethodPost, "/visits/visit-1/transfer", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
