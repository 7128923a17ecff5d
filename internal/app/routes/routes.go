package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/interncompass/api/internal/app/controllers"
	"github.com/interncompass/api/internal/app/models/dto"
	"github.com/interncompass/api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	internshipController *controllers.InternshipController,
	applicationController *controllers.ApplicationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public internship routes ---
	// Browsing and search are open; inactive listings are excluded from
	// search but remain reachable by ID.
	internships := v1.Group("/internships")
	{
		internships.GET("", internshipController.GetAllInternships)
		internships.GET("/search", internshipController.SearchInternships)
		internships.GET("/:id", internshipController.GetInternshipByID)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/test-token", authController.TestToken)

		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/me", userController.GetMyProfile)
			users.PUT("/me", userController.UpdateMyProfile)
			users.GET("/:id", userController.GetUserByID)
		}

		internshipsProtected := authenticated.Group("/internships")
		{
			internshipsProtected.POST("", internshipController.CreateInternship)
			internshipsProtected.GET("/my", internshipController.GetMyInternships)
			internshipsProtected.PUT("/:id", internshipController.UpdateInternship)
			internshipsProtected.DELETE("/:id", internshipController.DeleteInternship)
		}

		applications := authenticated.Group("/applications")
		{
			applications.POST("", applicationController.CreateApplication)
			applications.GET("", applicationController.GetMyApplications)
			applications.GET("/:id", applicationController.GetApplicationByID)
			applications.PUT("/:id", applicationController.UpdateApplication)
			applications.DELETE("/:id", applicationController.DeleteApplication)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
