package routes

import (
	"github.com/MUSEO/MUSEO-Backend/src/controllers"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupPieceRoutes(router *gin.Engine, service *services.PieceService) {
	controller := controllers.NewPieceController(service)

	// Protected routes
	piece := router.Group("/pieces")
	piece.Use(middleware.AuthMiddleware())
	{
		// CRUD
		piece.GET("/", controller.GetAllPieces)
		piece.GET("/check", controller.CheckField)
		piece.GET("/summaries", controller.GetPieceSummaries)
		piece.GET("/form-data", controller.GetPieceFormData)
		piece.GET("/:id", controller.GetPieceByID)
		piece.POST("/", controller.CreatePiece)
		piece.PUT("/:id", controller.UpdatePiece)
		piece.DELETE("/:id", controller.DeletePiece)

		// Images
		piece.POST("/:id/image", controller.UploadImage)
		piece.POST("/:id/drive-image", controller.LinkDriveImage)
		piece.GET("/:id/image", controller.ServeImage)
		piece.DELETE("/:id/image", controller.DeleteImage)

		// Bulk import
		piece.POST("/import", controller.ImportPieces)
	}
}
