package main

import (
	"os"

	"github.com/iamkimedel22/SAVR/config"
	"github.com/iamkimedel22/SAVR/db"
	"github.com/iamkimedel22/SAVR/handlers"
	"github.com/iamkimedel22/SAVR/logger"
	"github.com/iamkimedel22/SAVR/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is not up yet; fail loudly on stderr.
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(gin.Mode() != gin.ReleaseMode, cfg.LogLevel); err != nil {
		os.Stderr.WriteString("logger error: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if err := db.InitDB(cfg.DB); err != nil {
		logger.Get().Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	if err := db.RunMigrations(); err != nil {
		logger.Get().Fatal("failed to run migrations", zap.Error(err))
	}

	handlers.JWTSecret = cfg.JWTSecret

	router := NewRouter(cfg.JWTSecret)

	logger.Get().Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}

// NewRouter wires up middleware and the resource routes. The bearer
// check lives solely in the auth middleware; handlers never repeat it.
func NewRouter(jwtSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorsMiddleware)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", handlers.HandleRegister)
		authRoutes.POST("/login", handlers.HandleLogin)
	}

	api := router.Group("/")
	api.Use(middleware.AuthMiddleware(jwtSecret))
	{
		api.GET("/categories", handlers.HandleGetCategories)
		api.POST("/categories", handlers.HandleCreateCategory)
		api.PUT("/categories/:id", handlers.HandleUpdateCategory)
		api.PATCH("/categories/:id", handlers.HandleUpdateCategory)
		api.DELETE("/categories/:id", handlers.HandleDeleteCategory)

		api.GET("/transactions", handlers.HandleGetTransactions)
		api.POST("/transactions", handlers.HandleCreateTransaction)
		api.PUT("/transactions/:id", handlers.HandleUpdateTransaction)
		api.PATCH("/transactions/:id", handlers.HandleUpdateTransaction)
		api.DELETE("/transactions/:id", handlers.HandleDeleteTransaction)

		api.GET("/budgets", handlers.HandleGetBudgets)
		api.POST("/budgets", handlers.HandleCreateBudget)
		api.PUT("/budgets/:id", handlers.HandleUpdateBudget)
		api.PATCH("/budgets/:id", handlers.HandleUpdateBudget)
		api.DELETE("/budgets/:id", handlers.HandleDeleteBudget)

		api.GET("/goals", handlers.HandleGetGoals)
		api.POST("/goals", handlers.HandleCreateGoal)
		api.PUT("/goals/:id", handlers.HandleUpdateGoal)
		api.PATCH("/goals/:id", handlers.HandleUpdateGoal)
		api.DELETE("/goals/:id", handlers.HandleDeleteGoal)

		api.GET("/dashboard", handlers.HandleGetDashboard)
		api.GET("/analytics", handlers.HandleGetAnalytics)
	}

	return router
}
