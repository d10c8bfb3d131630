package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupClassificationRoutes(router *gin.Engine, service *services.ClassificationService) {
	controller := controllers.NewClassificationController(service)

	// Protected routes
	classification := router.Group("/classifications")
	classification.Use(middleware.AuthMiddleware())
	{
		classification.GET("/", controller.GetAllClassifications)
		classification.GET("/check", controller.CheckField)
		classification.GET("/:id", controller.GetClassificationByID)
		classification.POST("/", controller.CreateClassification)
		classification.PUT("/:id", controller.UpdateClassification)
		classification.DELETE("/:id", controller.DeleteClassification)
	}
}
