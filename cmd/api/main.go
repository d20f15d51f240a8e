package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/handlers"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/services"
	"finboard/internal/validator"

	_ "finboard/internal/docs" // swagger spec registration
)

// @title           finboard API
// @version         1.0
// @description     finboard is a single-user personal finance dashboard: a transaction ledger with per-category budgets, savings goals, and a derived financial health score.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	goalService := services.NewGoalService(db)
	ledgerService := services.NewLedgerService(db, goalService)
	budgetService := services.NewBudgetService(db, ledgerService)
	healthService := services.NewHealthService()
	profileService := services.NewProfileService(db, ledgerService)
	snapshotService := services.NewSnapshotService(db, ledgerService)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	categoryHandler := handlers.NewCategoryHandler(ledgerService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	profileHandler := handlers.NewProfileHandler(profileService)
	summaryHandler := handlers.NewSummaryHandler(ledgerService, profileService, healthService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS: the dashboard frontend is served separately during development.
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/transactions", transactionHandler.CreateTransaction)
		v1.GET("/transactions", transactionHandler.GetTransactions)
		v1.GET("/transactions/:id", transactionHandler.GetTransactionByID)
		v1.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

		v1.GET("/categories", categoryHandler.GetCategories)
		v1.GET("/categories/:category/total", categoryHandler.GetCategoryTotal)

		v1.GET("/budgets", budgetHandler.GetBudgets)
		v1.GET("/budgets/comparison", budgetHandler.GetComparison)
		v1.PUT("/budgets/:category", budgetHandler.SetBudget)
		v1.DELETE("/budgets/:category", budgetHandler.DeleteBudget)

		v1.POST("/goals", goalHandler.CreateGoal)
		v1.GET("/goals", goalHandler.GetGoals)
		v1.DELETE("/goals/:id", goalHandler.DeleteGoal)
		v1.POST("/goals/:id/contributions", goalHandler.Contribute)

		v1.GET("/summary", summaryHandler.GetSummary)

		v1.POST("/profile", profileHandler.CreateProfile)
		v1.GET("/profile", profileHandler.GetProfile)
		v1.PUT("/profile", profileHandler.UpdateProfile)
		v1.POST("/reset", profileHandler.Reset)

		v1.GET("/export", snapshotHandler.Export)
		v1.POST("/import", snapshotHandler.Import)
	}

	addr := ":" + appConfig.Port
	log.Infof("Starting finboard API on %s", addr)
	return router.Run(addr)
}
