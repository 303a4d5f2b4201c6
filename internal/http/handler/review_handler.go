package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/internal/repo"
)

type ReviewHandler struct{ reviews repo.ReviewRepo }

func NewReviewHandler(r repo.ReviewRepo) *ReviewHandler { return &ReviewHandler{reviews: r} }

func (h *ReviewHandler) List(c *gin.Context) {
	rs, err := h.reviews.List(c.Request.Context())
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}
