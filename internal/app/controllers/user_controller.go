package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/app/services"
	"github.com/ozan/alumnisphere/internal/middleware"
)

// UserController handles user lookups
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetNameByID handles GET /user/:id. Only the display name is exposed.
func (c *UserController) GetNameByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	name, err := c.userService.GetNameByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserNameResponse{Name: name})
}
