package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAgentRoutes(router *gin.Engine, service *services.AgentService) {
	controller := controllers.NewAgentController(service)

	// Protected routes
	agent := router.Group("/agents")
	agent.Use(middleware.AuthMiddleware())
	{
		agent.GET("/", controller.GetAllAgents)
		agent.GET("/check", controller.CheckField)
		agent.GET("/:id", controller.GetAgentByID)
		agent.POST("/", controller.CreateAgent)
		agent.PUT("/:id", controller.UpdateAgent)
		agent.DELETE("/:id", controller.DeleteAgent)
	}
}
