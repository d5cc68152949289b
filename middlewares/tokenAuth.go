package middlewares

import (
	"context"
	"errors"
	"net/http"

	"hospitalflow/models"
	"hospitalflow/utils"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store user details in the context.
type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
	doctorIDKey contextKey = "doctorID"
)

// TokenAuthMiddleware validates the token and adds user details to the request context.
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.DefaultQuery("accessToken", "")
		if token == "" {
			if cookie, err := c.Cookie("accessToken"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token,
			models.RoleAdmin, models.RoleReception, models.RoleFinancial, models.RoleDoctor)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		ctx = context.WithValue(ctx, doctorIDKey, claims.DoctorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleAuthMiddleware restricts access to users with one of the given roles.
func RoleAuthMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := ExtractUserRoleFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found in context"})
			c.Abort()
			return
		}

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
		c.Abort()
	}
}

// ExtractUserIDFromContext retrieves the userID from the context.
func ExtractUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}

// ExtractUserRoleFromContext retrieves the user role from the context.
func ExtractUserRoleFromContext(ctx context.Context) (string, error) {
	userRole, ok := ctx.Value(userRoleKey).(string)
	if !ok {
		return "", errors.New("user role not found in context")
	}
	return userRole, nil
}

// ExtractDoctorIDFromContext retrieves the linked doctor id for doctor
// accounts. Empty for non-doctor roles.
func ExtractDoctorIDFromContext(ctx context.Context) string {
	doctorID, _ := ctx.Value(doctorIDKey).(string)
	return doctorID
}
