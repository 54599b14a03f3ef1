package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"auction-house/internal/auth"
	handler "auction-house/services/auction/handler"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// SessionMiddleware resolves the bearer token into a session and aborts
// with 401 when the token is missing or unknown.
func SessionMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing bearer token"), "authentication required")
			c.Abort()
			return
		}

		session, found := authService.Get(token)
		if !found {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("unknown session token"), "authentication required")
			c.Abort()
			return
		}

		c.Set(handler.SessionContextKey, session)
		c.Next()
	}
}
