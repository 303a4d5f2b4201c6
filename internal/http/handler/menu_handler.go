package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/internal/models"
	"bistro/internal/repo"
)

type MenuHandler struct{ menu repo.MenuRepo }

func NewMenuHandler(m repo.MenuRepo) *MenuHandler { return &MenuHandler{menu: m} }

func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menu.List(c.Request.Context())
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get answers 200 with a null body for an unknown id; a missing document is
// not an error on this surface.
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.menu.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) Create(c *gin.Context) {
	var in models.MenuItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	ack, err := h.menu.Insert(c.Request.Context(), in)
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *MenuHandler) Update(c *gin.Context) {
	var in models.MenuItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	ack, err := h.menu.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	ack, err := h.menu.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
