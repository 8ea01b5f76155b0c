package handlers

import (
	"net/http"

	"favorites_api/internal/responses"
	"favorites_api/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService UserService
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, users)
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Error(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, user)
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, user)
}

// UpdateUser handles PUT /user/:id. Only the fields present in the body change.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Error(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.JSON(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Text(c, http.StatusOK, "User deleted")
}
