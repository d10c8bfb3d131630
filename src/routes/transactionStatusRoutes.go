package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupTransactionStatusRoutes(router *gin.Engine, service *services.TransactionStatusService) {
	controller := controllers.NewTransactionStatusController(service)

	// Protected routes
	status := router.Group("/transaction-statuses")
	status.Use(middleware.AuthMiddleware())
	{
		status.GET("/", controller.GetAllTransactionStatuses)
		status.GET("/check", controller.CheckField)
		status.GET("/:id", controller.GetTransactionStatusByID)
		status.POST("/", controller.CreateTransactionStatus)
		status.PUT("/:id", controller.UpdateTransactionStatus)
		status.DELETE("/:id", controller.DeleteTransactionStatus)
	}
}
