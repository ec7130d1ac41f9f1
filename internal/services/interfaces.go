package services

import (
	"time"

	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
	ClearRefreshTokenHash(userID uint) error
}

// PlanInput holds the mutable fields of a plan. Updates replace every
// field, matching the full-replacement edit semantics of the record.
type PlanInput struct {
	Title          string
	PlannedExpense float64
	ActualExpense  float64
	Day            *int
	Month          *int
	Year           *int
	Category       string
	Notes          string
}

// PlanFilter holds optional filter parameters for the plan finder endpoints.
type PlanFilter struct {
	Day      *int
	Month    *int
	Year     *int
	Category string
}

// PlanServicer defines the contract for the legacy plan records.
type PlanServicer interface {
	CreatePlan(userID uint, input PlanInput) (*models.Plan, error)
	GetUserPlans(userID uint, category string) ([]models.Plan, error)
	FindPlans(userID uint, filter PlanFilter) ([]models.Plan, error)
	GetPlanByID(userID, planID uint) (*models.Plan, error)
	UpdatePlan(userID, planID uint, input PlanInput) (*models.Plan, error)
	DeletePlan(userID, planID uint) error
}

// ExpenseInput holds the mutable fields of an expense.
type ExpenseInput struct {
	Title    string
	Date     time.Time
	Amount   float64
	Category string
	Note     string
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Year     *int
	Month    *int
	Day      *int
	Category string
	Query    string
	Sort     string
}

// ExpenseServicer defines the contract for expense records.
type ExpenseServicer interface {
	CreateExpense(userID uint, input ExpenseInput) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

// BudgetStatus is a monthly budget joined with the spending for its period.
type BudgetStatus struct {
	BudgetID  uint    `json:"budget_id"`
	Budget    float64 `json:"budget"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	Notes     string  `json:"notes"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

// BudgetServicer defines the contract for monthly budget records.
type BudgetServicer interface {
	SetMonthlyBudget(userID uint, budget float64, month, year int, notes string) (*models.MonthlyBudget, bool, error)
	GetUserBudgets(userID uint) ([]models.MonthlyBudget, error)
	GetBudgetStatus(userID uint, month, year int) (*BudgetStatus, error)
	UpdateBudget(userID, budgetID uint, budget float64, month, year int, notes string) (*models.MonthlyBudget, error)
	DeleteBudget(userID, budgetID uint) error
}

// BudgetSummary contains spending vs budget for a (month, year) period.
// Budget and Remaining are nil when no budget document exists.
type BudgetSummary struct {
	Month     int      `json:"month"`
	Year      int      `json:"year"`
	Spent     float64  `json:"spent"`
	Budget    *float64 `json:"budget"`
	Remaining *float64 `json:"remaining"`
}

// CategorySpend is one row of the per-category breakdown.
type CategorySpend struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
	Count    int64   `json:"count"`
}

// DailyTotal is the total spend for one calendar date.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// SummaryServicer defines the contract for the aggregate views. The
// grouping and summing are delegated to the store's query engine; this
// service only builds the query and reshapes rows.
type SummaryServicer interface {
	SpentForPeriod(userID uint, month, year int) (float64, error)
	BudgetSummary(userID uint, month, year int) (*BudgetSummary, error)
	CategoryBreakdown(userID uint, month, year int) ([]CategorySpend, error)
	DailyTotals(userID uint, month, year int) ([]DailyTotal, error)
}

// SettingsOverview reports how many records a user owns per collection.
type SettingsOverview struct {
	PlanCount    int64 `json:"plan_count"`
	ExpenseCount int64 `json:"expense_count"`
	BudgetCount  int64 `json:"budget_count"`
}

// SettingsServicer defines the contract for account settings operations.
type SettingsServicer interface {
	Overview(userID uint) (*SettingsOverview, error)
	ClearHistory(userID uint, confirmation string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
