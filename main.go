package main

import (
	"github.com/Y-A-Dawit/alx-backend-graphql-crm/database"
	"github.com/Y-A-Dawit/alx-backend-graphql-crm/graph"
	"github.com/Y-A-Dawit/alx-backend-graphql-crm/logger"
	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"
	repositories "github.com/Y-A-Dawit/alx-backend-graphql-crm/repository"
	"github.com/Y-A-Dawit/alx-backend-graphql-crm/routes"
	"github.com/Y-A-Dawit/alx-backend-graphql-crm/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Initialize("development")
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	// Connect to database
	if err := database.Connect(cfg.DSN()); err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.DB.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	); err != nil {
		zap.L().Fatal("Migration failed", zap.Error(err))
	}

	customerRepo := repositories.NewGormCustomerRepository(database.DB)
	productRepo := repositories.NewGormProductRepository(database.DB)
	orderRepo := repositories.NewGormOrderRepository(database.DB)

	customerService := services.NewCustomerService(customerRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, productRepo)

	schema := graph.NewSchema(customerService, productService, orderService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())

	routes.RegisterGraphQLRoutes(r, schema)

	zap.L().Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("Error starting server", zap.Error(err))
	}
}
