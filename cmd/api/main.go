package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fdtrack/internal/config"
	"fdtrack/internal/database"
	"fdtrack/internal/handlers"
	"fdtrack/internal/logger"
	"fdtrack/internal/middleware"
	"fdtrack/internal/services"
	"fdtrack/internal/validator"

	_ "fdtrack/internal/docs" // Import swagger docs
)

// @title           fdtrack API
// @version         1.0
// @description     fdtrack tracks fixed deposits and household finances: deposits, incomes, expenses, savings goals and portfolio projections.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	depositService := services.NewDepositService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	goalService := services.NewGoalService(db)
	budgetService := services.NewBudgetService(db)
	dashboardService := services.NewDashboardService(db)
	projectionService := services.NewProjectionService(db)
	maturityService := services.NewMaturityService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	depositHandler := handlers.NewDepositHandler(depositService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	goalHandler := handlers.NewGoalHandler(goalService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)
	maturityHandler := handlers.NewMaturityHandler(maturityService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	protected := v1.Group("/")
	if appConfig.SingleUserMode {
		// Single-user deployments skip authentication and attribute every
		// request to the configured default user.
		log.Infow("running in single-user mode", "user_id", appConfig.DefaultUserID)
		protected.Use(middleware.SingleUserMiddleware(appConfig.DefaultUserID))
	} else {
		// Public routes
		auth := v1.Group("/auth")
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		protected.Use(middleware.AuthMiddleware())
		protected.GET("/profile", authHandler.GetProfile)
	}

	// Fixed deposit routes
	deposits := protected.Group("/fixed-deposits")
	deposits.POST("", depositHandler.CreateDeposit)
	deposits.GET("", depositHandler.GetUserDeposits)
	deposits.GET("/:id", depositHandler.GetDepositByID)
	deposits.PUT("/:id", depositHandler.UpdateDeposit)
	deposits.DELETE("/:id", depositHandler.DeleteDeposit)
	deposits.POST("/:id/reinvest", maturityHandler.Reinvest)
	deposits.POST("/:id/goal", maturityHandler.SeedGoal)

	// Income routes
	incomes := protected.Group("/incomes")
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("", incomeHandler.GetUserIncomes)
	incomes.GET("/:id", incomeHandler.GetIncomeByID)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/categories", expenseHandler.GetSuggestedCategories)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetUserGoals)
	goals.GET("/:id", goalHandler.GetGoalByID)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)

	// Dashboard and projections
	protected.GET("/dashboard/summary", dashboardHandler.GetSummary)
	protected.GET("/projections", projectionHandler.GetGrowthProjection)
	protected.GET("/projections/by-bank", projectionHandler.GetBankBreakdown)
	protected.GET("/projections/by-maturity", projectionHandler.GetMaturityBreakdown)

	log.Infof("Starting fdtrack backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
