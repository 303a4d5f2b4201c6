package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/internal/service"
)

type TokenHandler struct{ tokens service.TokenService }

func NewTokenHandler(t service.TokenService) *TokenHandler { return &TokenHandler{tokens: t} }

// Create signs whatever claims object is posted and returns the token. The
// email claim is what the auth gates key on later.
func (h *TokenHandler) Create(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	tok, err := h.tokens.Issue(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok})
}
