package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CorsConfig lists the cross-origin settings for the hospital frontend.
type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// CorsMiddleware answers preflight requests and stamps CORS and security
// headers on every response. The joined header values and the origin set
// are computed once at setup.
func CorsMiddleware(config *CorsConfig) gin.HandlerFunc {
	origins := make(map[string]bool, len(config.AllowedOrigins))
	for _, origin := range config.AllowedOrigins {
		origins[origin] = true
	}
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origins[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		if config.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "deny")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
