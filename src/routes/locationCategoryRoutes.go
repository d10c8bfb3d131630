package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLocationCategoryRoutes(router *gin.Engine, service *services.LocationCategoryService) {
	controller := controllers.NewLocationCategoryController(service)

	// Protected routes
	location := router.Group("/locations")
	location.Use(middleware.AuthMiddleware())
	{
		location.GET("/", controller.GetAllLocationCategories)
		location.GET("/check", controller.CheckField)
		location.GET("/:id", controller.GetLocationCategoryByID)
		location.POST("/", controller.CreateLocationCategory)
		location.PUT("/:id", controller.UpdateLocationCategory)
		location.DELETE("/:id", controller.DeleteLocationCategory)
	}
}
