package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupConservationStatusRoutes(router *gin.Engine, service *services.ConservationStatusService) {
	controller := controllers.NewConservationStatusController(service)

	// Protected routes
	conservation := router.Group("/conservation-statuses")
	conservation.Use(middleware.AuthMiddleware())
	{
		conservation.GET("/", controller.GetAllConservationStatuses)
		conservation.GET("/check", controller.CheckField)
		conservation.GET("/form-data", controller.GetConservationStatusFormData)
		conservation.GET("/:id", controller.GetConservationStatusByID)
		conservation.POST("/", controller.CreateConservationStatus)
		conservation.PUT("/:id", controller.UpdateConservationStatus)
		conservation.DELETE("/:id", controller.DeleteConservationStatus)
	}
}
