package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/internal/repo"
)

// storeFail maps a repository error onto a response: malformed ids are the
// caller's fault, anything else is a store failure.
func storeFail(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
}
