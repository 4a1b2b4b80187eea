package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ozan/alumnisphere/internal/app/controllers"
	"github.com/ozan/alumnisphere/internal/middleware"
	"github.com/ozan/alumnisphere/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	universityController *controllers.UniversityController,
	interactionController *controllers.InteractionController,
	userController *controllers.UserController,
	jwtService *auth.JWTService,
) {
	jwtAuth := middleware.JWTAuth(jwtService)

	// --- Public routes ---
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register/admin", authController.RegisterAdmin)
		authGroup.POST("/register/user", authController.RegisterStudent)
		authGroup.POST("/register/alumni", authController.RegisterAlumni)
		authGroup.POST("/register/university", jwtAuth, universityController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/verify", jwtAuth, authController.Verify)
	}

	// The directory list is public; detail lookup and registration are not.
	university := router.Group("/university")
	{
		university.GET("", universityController.GetAll)
		university.GET("/:id", jwtAuth, universityController.GetByID)
		university.POST("", jwtAuth, universityController.Register)
	}

	interaction := router.Group("/interaction")
	interaction.Use(jwtAuth)
	{
		interaction.POST("/post", interactionController.CreatePost)
		interaction.POST("/comment", interactionController.CreateComment)
		interaction.GET("/post/for/:id", interactionController.PostsVisibleTo)
		interaction.GET("/post/by/:id", interactionController.PostsByAuthor)
		interaction.GET("/comment/for/:post_id", interactionController.CommentsFor)
		interaction.PUT("/:id", interactionController.Update)
		interaction.DELETE("/:id", interactionController.Delete)
		interaction.POST("/post/upvote/:id", interactionController.Upvote)
		interaction.POST("/post/downvote/:id", interactionController.Downvote)
	}

	user := router.Group("/user")
	user.Use(jwtAuth)
	{
		user.GET("/:id", userController.GetNameByID)
	}
}
