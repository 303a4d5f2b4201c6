package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/internal/repo"
)

// Cart routes are deliberately ungated to match the behavior the frontend
// depends on; see DESIGN.md for the ownership discussion.
type CartHandler struct{ carts repo.CartRepo }

func NewCartHandler(r repo.CartRepo) *CartHandler { return &CartHandler{carts: r} }

func (h *CartHandler) List(c *gin.Context) {
	items, err := h.carts.List(c.Request.Context())
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) Create(c *gin.Context) {
	var in map[string]interface{}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	ack, err := h.carts.Insert(c.Request.Context(), in)
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *CartHandler) Delete(c *gin.Context) {
	ack, err := h.carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
