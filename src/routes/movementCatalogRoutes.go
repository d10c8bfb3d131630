package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMovementCatalogRoutes(router *gin.Engine, service *services.MovementCatalogService) {
	controller := controllers.NewMovementCatalogController(service)

	// Protected routes
	catalog := router.Group("/movement-types")
	catalog.Use(middleware.AuthMiddleware())
	{
		catalog.GET("/", controller.GetAllMovementCatalogs)
		catalog.GET("/check", controller.CheckField)
		catalog.GET("/:id", controller.GetMovementCatalogByID)
		catalog.POST("/", controller.CreateMovementCatalog)
		catalog.PUT("/:id", controller.UpdateMovementCatalog)
		catalog.DELETE("/:id", controller.DeleteMovementCatalog)
	}
}
