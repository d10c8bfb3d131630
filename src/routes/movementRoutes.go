package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMovementRoutes(router *gin.Engine, service *services.MovementService) {
	controller := controllers.NewMovementController(service)

	// Protected routes
	movement := router.Group("/movements")
	movement.Use(middleware.AuthMiddleware())
	{
		movement.GET("/", controller.GetAllMovements)
		movement.GET("/check", controller.CheckField)
		movement.GET("/summaries", controller.GetMovementSummaries)
		movement.GET("/form-data", controller.GetMovementFormData)
		movement.GET("/:id", controller.GetMovementByID)
		movement.POST("/", controller.CreateMovement)
		movement.PUT("/:id", controller.UpdateMovement)
		movement.DELETE("/:id", controller.DeleteMovement)
	}
}
