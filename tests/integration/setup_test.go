package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"budgetbook/internal/handlers"
	"budgetbook/internal/logger"
	"budgetbook/internal/middleware"
	"budgetbook/internal/models"
	"budgetbook/internal/services"
	"budgetbook/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Plan{},
		&models.Expense{},
		&models.MonthlyBudget{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	planService := services.NewPlanService(db)
	expenseService := services.NewExpenseService(db)
	summaryService := services.NewSummaryService(db)
	budgetService := services.NewBudgetService(db, summaryService)
	settingsService := services.NewSettingsService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	planHandler := handlers.NewPlanHandler(planService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, userService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/auth/logout", authHandler.Logout)

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

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.SetMonthlyBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.GET("/lookup/:month/:year", budgetHandler.GetBudgetStatus)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	summary := protected.Group("/summary")
	summary.GET("/budget/:month/:year", summaryHandler.GetBudgetSummary)
	summary.GET("/categories/:month/:year", summaryHandler.GetCategoryBreakdown)
	summary.GET("/daily/:month/:year", summaryHandler.GetDailyTotals)

	settings := protected.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.POST("/clear_history", settingsHandler.ClearHistory)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"password_confirmation":%q,"first_name":"Test","last_name":"User"}`,
		email, password, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}
