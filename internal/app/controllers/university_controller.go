package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/app/services"
	"github.com/ozan/alumnisphere/internal/middleware"
)

// UniversityController handles the university directory
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// Register handles POST /university
func (c *UniversityController) Register(ctx *gin.Context) {
	var req dto.RegisterUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	if _, err := c.universityService.Register(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("University registered successfully"))
}

// GetByID handles GET /university/:id
func (c *UniversityController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	university, err := c.universityService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, university)
}

// GetAll handles GET /university. The directory list is public.
func (c *UniversityController) GetAll(ctx *gin.Context) {
	universities, err := c.universityService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, universities)
}
