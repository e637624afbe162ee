package middleware

import (
	"mybudget/internal/auth" // Token authority
	"net/http"               // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// BearerAuth guards owner-scoped routes. An absent or invalid bearer
// token aborts the request with a bodiless 401; a valid one has its
// client claim stored into the request context for the handler.
func BearerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractToken(c.Request) // Extract the bearer token
		// Check if a credential was presented at all
		if tokenStr == "" {
			c.AbortWithStatus(http.StatusUnauthorized) // No credential, empty body
			return
		}
		claims, err := auth.ParseToken(tokenStr, secret) // Validate signature and expiry
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized) // Invalid or expired token, empty body
			return
		}
		c.Set("clientID", claims.ClientID) // Store the token's client claim in context
		c.Next()                           // Proceed to the next handler
	}
}
