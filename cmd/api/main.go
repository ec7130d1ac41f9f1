package main

import (
	"fmt"
	"net/http"
	"os"

	"budgetbook/internal/config"
	"budgetbook/internal/database"
	"budgetbook/internal/handlers"
	"budgetbook/internal/logger"
	"budgetbook/internal/middleware"
	"budgetbook/internal/services"
	"budgetbook/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgetbook/internal/docs" // Import swagger docs
)

// @title           Budgetbook API
// @version         1.0
// @description     Budgetbook is a personal budgeting application for tracking expenses, monthly budgets, and spending summaries.

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

	// Register custom request validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	planService := services.NewPlanService(db)
	expenseService := services.NewExpenseService(db)
	summaryService := services.NewSummaryService(db)
	budgetService := services.NewBudgetService(db, summaryService)
	settingsService := services.NewSettingsService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	planHandler := handlers.NewPlanHandler(planService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, userService, auditService)

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
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/auth/logout", authHandler.Logout)

	// Plan routes. Finders come before /:id so gin matches them first.
	plans := protected.Group("/plans")
	plans.POST("", planHandler.CreatePlan)
	plans.GET("", planHandler.GetUserPlans)
	plans.GET("/find_by_date", planHandler.FindByDate)
	plans.GET("/find_by_month_year", planHandler.FindByMonthYear)
	plans.GET("/find_by_year", planHandler.FindByYear)
	plans.GET("/find_by_category", planHandler.FindByCategory)
	plans.GET("/:id", planHandler.GetPlanByID)
	plans.PUT("/:id", planHandler.UpdatePlan)
	plans.DELETE("/:id", planHandler.DeletePlan)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Budget routes. The period lookup lives under /lookup to keep the
	// path parameters distinct from /:id.
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.SetMonthlyBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.GET("/lookup/:month/:year", budgetHandler.GetBudgetStatus)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Summary routes
	summary := protected.Group("/summary")
	summary.GET("/budget/:month/:year", summaryHandler.GetBudgetSummary)
	summary.GET("/categories/:month/:year", summaryHandler.GetCategoryBreakdown)
	summary.GET("/daily/:month/:year", summaryHandler.GetDailyTotals)

	// Settings routes
	settings := protected.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.POST("/clear_history", settingsHandler.ClearHistory)

	log.Infof("Starting Budgetbook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
