package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/internal/models"
	"bistro/internal/repo"
)

// Admin composes after Auth. The role is read from the store on every request;
// promoting or demoting a user takes effect on their next call.
func Admin(users repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxEmail)
		u, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if u == nil || u.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
