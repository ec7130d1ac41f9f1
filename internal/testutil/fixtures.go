package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetbook/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPlan creates a plan with the given planned amount.
func CreateTestPlan(t *testing.T, db *gorm.DB, userID uint, planned float64) *models.Plan {
	t.Helper()

	plan := &models.Plan{
		UserID:         userID,
		Title:          fmt.Sprintf("Test Plan %d", nextID()),
		PlannedExpense: planned,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test plan: %v", err)
	}
	return plan
}

// CreateTestExpense creates an expense on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount float64, date time.Time) *models.Expense {
	t.Helper()
	return CreateTestExpenseWithCategory(t, db, userID, amount, date, "")
}

// CreateTestExpenseWithCategory creates an expense with an explicit category.
func CreateTestExpenseWithCategory(t *testing.T, db *gorm.DB, userID uint, amount float64, date time.Time, category string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Date:     date,
		Amount:   amount,
		Category: category,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestMonthlyBudget creates a monthly budget for the given period.
func CreateTestMonthlyBudget(t *testing.T, db *gorm.DB, userID uint, amount float64, month, year int) *models.MonthlyBudget {
	t.Helper()

	budget := &models.MonthlyBudget{
		UserID: userID,
		Budget: amount,
		Month:  month,
		Year:   year,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test monthly budget: %v", err)
	}
	return budget
}
