package handlers

import (
	"fmt"

	"hospitalflow/models"
	"hospitalflow/services"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// extractAccessToken pulls the token from URL query parameters.
func extractAccessToken(c *gin.Context) (string, error) {
	token := c.DefaultQuery("accessToken", "")
	if token == "" {
		return "", fmt.Errorf("access token is required")
	}
	return token, nil
}

// Login authenticates a static staff account and returns tokens along with
// the role the frontend routes on.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.service.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid username or password"})
		return
	}

	doctorID := ""
	if user.DoctorID != nil {
		doctorID = *user.DoctorID
	}
	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Role, doctorID)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate tokens: %v", err)})
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
			"doctorId": doctorID,
		},
	})
}

// RefreshToken refreshes the user's access token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token,
		models.RoleAdmin, models.RoleReception, models.RoleFinancial, models.RoleDoctor)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role, claims.DoctorID)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate access token: %v", err)})
		return
	}

	c.JSON(200, gin.H{"accessToken": accessToken})
}

// Logoff logs the user out by clearing cookies.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// GetUserProfile retrieves the current user's profile.
func (h *AuthHandler) GetUserProfile(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token,
		models.RoleAdmin, models.RoleReception, models.RoleFinancial, models.RoleDoctor)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	c.JSON(200, gin.H{"user": user})
}
