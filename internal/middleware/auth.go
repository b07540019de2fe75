package middleware

import (
	"dashboard-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireSession rejects requests while the dashboard holds no bearer token.
// Token expiry is left to the gateway, which tears the session down on first use.
func (m Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := m.tokens.Token(ctx)
		if err != nil {
			m.l.Errorf(ctx, "middleware.RequireSession: Token failed: %v", err)
			response.Error(c, errSessionUnavailable)
			c.Abort()
			return
		}
		if token == "" {
			response.Unauthorized(c, gin.H{"redirect": m.loginPath})
			c.Abort()
			return
		}

		c.Next()
	}
}
