package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/services/user"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the user and admin-role endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// GetAllUsersHandler returns every user.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdminHandler answers {admin: bool} for :email.
func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// GrantAdminHandler makes :email an admin. The caller's own admin role is checked by
// middleware.
func (h *UserHandler) GrantAdminHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.UserService.GrantAdmin(c.Request.Context(), email)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	getLogger(c).Info("Admin role granted", zap.String("email", email), zap.String("by", c.GetString("email")))
	c.JSON(http.StatusOK, result)
}

// UpsertUserHandler creates or updates :email and returns a fresh token.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	email := c.Param("email")

	var req models.UserUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.AbortWithError(c, fmt.Errorf("%w: %v", utils.ErrBadRequest, err))
		return
	}

	resp, err := h.UserService.UpsertUser(c.Request.Context(), email, req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
