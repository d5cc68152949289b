package controllers

import (
	"hospitalflow/handlers"
	"hospitalflow/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public route: no authentication required
	router.POST("/auth/login", ac.Handler.Login)

	// Protected routes: requires a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.POST("/logoff", ac.Handler.Logoff)
		authGroup.GET("/user/profile", ac.Handler.GetUserProfile)
		authGroup.POST("/refresh-token", ac.Handler.RefreshToken)
	}
}
