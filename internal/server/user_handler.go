package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(c, err)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := objectIDParam(c)
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) GetOrders(c *gin.Context) {
	userID, ok := objectIDParam(c)
	if !ok {
		return
	}

	userOrders, err := h.users.GetUserOrders(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserOrdersResponse(userOrders))
}
