package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupRoleRoutes(router *gin.Engine, service *services.RoleService) {
	controller := controllers.NewRoleController(service)

	// Protected routes
	role := router.Group("/roles")
	role.Use(middleware.AuthMiddleware())
	{
		role.GET("/", controller.GetAllRoles)
		role.GET("/check", controller.CheckField)
		role.GET("/:id", controller.GetRoleByID)
		role.POST("/", controller.CreateRole)
		role.PUT("/:id", controller.UpdateRole)
		role.DELETE("/:id", controller.DeleteRole)
	}
}
