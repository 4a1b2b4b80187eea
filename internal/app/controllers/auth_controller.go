package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozan/alumnisphere/internal/app/models"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/app/services"
	"github.com/ozan/alumnisphere/internal/middleware"
)

// AuthController handles registration, login and token verification
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// register binds the shared registration payload and delegates with the role
// fixed by the route.
func (c *AuthController) register(ctx *gin.Context, role models.RoleType) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	if _, err := c.authService.Register(ctx, role, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Registered successfully"))
}

// RegisterAdmin handles POST /auth/register/admin
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	c.register(ctx, models.RoleAdmin)
}

// RegisterStudent handles POST /auth/register/user
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	c.register(ctx, models.RoleStudent)
}

// RegisterAlumni handles POST /auth/register/alumni
func (c *AuthController) RegisterAlumni(ctx *gin.Context) {
	c.register(ctx, models.RoleAlumni)
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Verify handles GET /auth/verify. The auth middleware has already rejected
// missing and invalid tokens; reaching the handler means the caller is in.
func (c *AuthController) Verify(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Authorized"))
}
