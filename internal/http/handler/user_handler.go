package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro/internal/http/middleware"
	"bistro/internal/models"
	"bistro/internal/repo"
)

type UserHandler struct{ users repo.UserRepo }

func NewUserHandler(u repo.UserRepo) *UserHandler { return &UserHandler{users: u} }

func (h *UserHandler) List(c *gin.Context) {
	us, err := h.users.List(c.Request.Context())
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, us)
}

// AdminFlag reports whether the given email belongs to an admin. Only the
// authenticated identity may ask about itself.
func (h *UserHandler) AdminFlag(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.CtxEmail) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": u != nil && u.Role == models.RoleAdmin})
}

func (h *UserHandler) Promote(c *gin.Context) {
	ack, err := h.users.PromoteAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// Register inserts a new user unless the email is already present, in which
// case it answers with a notice rather than an error.
func (h *UserHandler) Register(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}
	existing, err := h.users.FindByEmail(c.Request.Context(), u.Email)
	if err != nil {
		storeFail(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists in database"})
		return
	}
	ack, err := h.users.Insert(c.Request.Context(), u)
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *UserHandler) Delete(c *gin.Context) {
	ack, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFail(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
