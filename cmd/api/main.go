package main

import (
	"fmt"
	"net/http"
	"os"

	"centsible/internal/config"
	"centsible/internal/database"
	"centsible/internal/handlers"
	"centsible/internal/logger"
	"centsible/internal/middleware"
	"centsible/internal/services"
	"centsible/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "centsible/internal/docs" // Import swagger docs
)

// @title           Centsible API
// @version         1.0
// @description     Centsible is a personal finance tracker: accounts, transactions, budgets, debt payoff planning, and an emergency fund, with derived dashboard metrics.
// @termsOfService  http://swagger.io/terms/

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

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	userService := services.NewUserService(db)
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db, accountService)
	budgetService := services.NewBudgetService(db)
	debtService := services.NewDebtService(db)
	fundService := services.NewFundService(db)
	dashboardService := services.NewDashboardService(db, fundService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	debtHandler := handlers.NewDebtHandler(debtService, auditService)
	fundHandler := handlers.NewFundHandler(fundService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

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

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Account routes
	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetUserAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.GET("/:id/transactions", transactionHandler.GetAccountTransactions)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Debt routes
	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetUserDebts)
	debts.GET("/payoff-plan", debtHandler.GetPayoffPlan)
	debts.GET("/:id", debtHandler.GetDebtByID)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.GET("/:id/projection", debtHandler.GetPayoffProjection)

	// Emergency fund routes
	fund := protected.Group("/emergency-fund")
	fund.GET("", fundHandler.GetFund)
	fund.PUT("", fundHandler.UpsertFund)
	fund.DELETE("", fundHandler.DeleteFund)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/trends", dashboardHandler.GetTrends)
	dashboard.GET("/expense-breakdown", dashboardHandler.GetExpenseBreakdown)
	dashboard.GET("/budget-progress", dashboardHandler.GetBudgetProgress)

	log.Infof("Starting Centsible backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
