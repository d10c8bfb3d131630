package main

import (
	"log"
	"os"

	"github.com/MUSEO/MUSEO-Backend/src/db"
	"github.com/MUSEO/MUSEO-Backend/src/middleware"
	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/routes"
	"github.com/MUSEO/MUSEO-Backend/src/seed"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Seed roles, catalogs and the admin user
	seed.Seed(db)

	// JWT secret setup
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}
	middleware.SetSecretKey(secret)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())
	router.Use(middleware.MetricsMiddleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Services setup
	classificationService := services.NewClassificationService(db)
	locationCategoryService := services.NewLocationCategoryService(db)
	movementCatalogService := services.NewMovementCatalogService(db)
	transactionStatusService := services.NewTransactionStatusService(db)
	roleService := services.NewRoleService(db)
	agentService := services.NewAgentService(db)
	userService := services.NewUserService(db)
	pieceService := services.NewPieceService(db)
	movementService := services.NewMovementService(db)
	pieceContextService := services.NewPieceContextService(db)
	locationHistoryService := services.NewLocationHistoryService(db)
	conservationStatusService := services.NewConservationStatusService(db)

	// Routes setup
	routes.SetupClassificationRoutes(router, classificationService)
	routes.SetupLocationCategoryRoutes(router, locationCategoryService)
	routes.SetupMovementCatalogRoutes(router, movementCatalogService)
	routes.SetupTransactionStatusRoutes(router, transactionStatusService)
	routes.SetupRoleRoutes(router, roleService)
	routes.SetupAgentRoutes(router, agentService)
	routes.SetupUserRoutes(router, userService)
	routes.SetupPieceRoutes(router, pieceService)
	routes.SetupMovementRoutes(router, movementService)
	routes.SetupPieceContextRoutes(router, pieceContextService)
	routes.SetupLocationHistoryRoutes(router, locationHistoryService)
	routes.SetupConservationStatusRoutes(router, conservationStatusService)

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
