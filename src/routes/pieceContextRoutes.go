package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPieceContextRoutes(router *gin.Engine, service *services.PieceContextService) {
	controller := controllers.NewPieceContextController(service)

	// Protected routes
	context := router.Group("/contexts")
	context.Use(middleware.AuthMiddleware())
	{
		context.GET("/", controller.GetAllPieceContexts)
		context.GET("/check", controller.CheckField)
		context.GET("/form-data", controller.GetPieceContextFormData)
		context.GET("/:id", controller.GetPieceContextByID)
		context.POST("/", controller.CreatePieceContext)
		context.PUT("/:id", controller.UpdatePieceContext)
		context.DELETE("/:id", controller.DeletePieceContext)
	}
}
