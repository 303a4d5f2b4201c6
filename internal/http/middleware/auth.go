package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bistro/internal/service"
)

// Context keys set by Auth for downstream gates and handlers.
const (
	CtxClaims = "claims"
	CtxEmail  = "email"
)

// Auth requires a valid "Authorization: Bearer <token>" header and attaches
// the decoded claims to the request context.
func Auth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}
		c.Set(CtxClaims, claims)
		if email, ok := claims[CtxEmail].(string); ok {
			c.Set(CtxEmail, email)
		}
		c.Next()
	}
}
