package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/placementcell/online-mocks-api/internal/app/controllers"
	"github.com/placementcell/online-mocks-api/internal/app/models"
	"github.com/placementcell/online-mocks-api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	adminController *controllers.AdminController,
	hrController *controllers.HRController,
	volunteerController *controllers.VolunteerController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Admin routes ---
	admin := router.Group("/admin")
	{
		// Public login
		admin.POST("/login", adminController.Login)

		adminProtected := admin.Group("")
		adminProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			// Directory
			adminProtected.GET("/volunteers", adminController.GetVolunteers)
			adminProtected.GET("/hrs", adminController.GetHRs)
			adminProtected.GET("/students", adminController.GetStudents)
			adminProtected.POST("/add-volunteer", adminController.AddVolunteer)
			adminProtected.POST("/add-hr", adminController.AddHR)
			adminProtected.DELETE("/delete-volunteer/:id", adminController.DeleteVolunteer)
			adminProtected.DELETE("/delete-hr/:id", adminController.DeleteHR)

			// Volunteer <-> HR allocation edges
			adminProtected.POST("/allocate", adminController.AllocateVolunteer)
			adminProtected.POST("/deallocate", adminController.DeallocateVolunteer)

			// Student <-> HR allocation edges (reviewed pairs protected)
			adminProtected.POST("/allocate-student", adminController.AllocateStudent)
			adminProtected.POST("/deallocate-hr-from-student", adminController.DeallocateHRFromStudent)

			adminProtected.PUT("/update-student/:id", adminController.UpdateStudent)
			adminProtected.GET("/feedback", adminController.GetFeedback)
		}
	}

	// --- HR routes ---
	hr := router.Group("/hr")
	{
		hr.POST("/login", hrController.Login)

		hrProtected := hr.Group("")
		hrProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleHR)))
		{
			hrProtected.GET("/getStudents", hrController.GetStudents)
			hrProtected.POST("/personalReport", hrController.SubmitPersonalReport)
			hrProtected.POST("/feedback", hrController.SubmitFeedback)
		}
	}

	// --- Volunteer routes ---
	volunteer := router.Group("/volunteer")
	{
		volunteer.POST("/login", volunteerController.Login)

		volunteerProtected := volunteer.Group("")
		volunteerProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleVolunteer)))
		{
			volunteerProtected.GET("/profile", volunteerController.GetProfile)
			volunteerProtected.GET("/allocated-hrs", volunteerController.GetAllocatedHRs)
			volunteerProtected.POST("/add-student", volunteerController.AddStudent)
			volunteerProtected.GET("/students/:hrId", volunteerController.GetStudentsByHR)
			volunteerProtected.POST("/deallocate-student/:studentId/:hrId", volunteerController.DeallocateStudent)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
