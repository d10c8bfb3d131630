package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLocationHistoryRoutes(router *gin.Engine, service *services.LocationHistoryService) {
	controller := controllers.NewLocationHistoryController(service)

	// Protected routes
	history := router.Group("/location-history")
	history.Use(middleware.AuthMiddleware())
	{
		history.GET("/", controller.GetAllLocationHistory)
		history.GET("/check", controller.CheckField)
		history.GET("/form-data", controller.GetLocationHistoryFormData)
		history.GET("/:id", controller.GetLocationHistoryByID)
		history.POST("/", controller.CreateLocationHistory)
		history.PUT("/:id", controller.UpdateLocationHistory)
		history.DELETE("/:id", controller.DeleteLocationHistory)
	}
}
