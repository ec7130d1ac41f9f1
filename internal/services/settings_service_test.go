package services

import (
	"testing"
	"time"

	"budgetbook/internal/testutil"
)

func TestOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewSettingsService(db)

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestPlan(t, db, user.ID, 100)
	testutil.CreateTestPlan(t, db, user.ID, 200)
	testutil.CreateTestExpense(t, db, user.ID, 5, time.Now())
	testutil.CreateTestMonthlyBudget(t, db, user.ID, 300, 3, 2024)
	testutil.CreateTestPlan(t, db, other.ID, 999)

	overview, err := svc.Overview(user.ID)
	testutil.AssertNoError(t, err)

	if overview.PlanCount != 2 {
		t.Errorf("expected 2 plans, got %d", overview.PlanCount)
	}
	if overview.ExpenseCount != 1 {
		t.Errorf("expected 1 expense, got %d", overview.ExpenseCount)
	}
	if overview.BudgetCount != 1 {
		t.Errorf("expected 1 budget, got %d", overview.BudgetCount)
	}
}

func TestClearHistory(t *testing.T) {
	t.Run("requires_exact_confirmation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestPlan(t, db, user.ID, 100)

		for _, confirmation := range []string{"", "delete", "Delete", "DELET", "DELETE "} {
			err := svc.ClearHistory(user.ID, confirmation)
			testutil.AssertAppError(t, err, "INVALID_CONFIRMATION")
		}

		// Nothing was removed.
		overview, err := svc.Overview(user.ID)
		testutil.AssertNoError(t, err)
		if overview.PlanCount != 1 {
			t.Errorf("expected plan to survive rejected confirmations, got %d", overview.PlanCount)
		}
	})

	t.Run("wipes_all_collections", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestPlan(t, db, user.ID, 100)
		testutil.CreateTestExpense(t, db, user.ID, 5, time.Now())
		testutil.CreateTestMonthlyBudget(t, db, user.ID, 300, 3, 2024)

		err := svc.ClearHistory(user.ID, "DELETE")
		testutil.AssertNoError(t, err)

		overview, err := svc.Overview(user.ID)
		testutil.AssertNoError(t, err)
		if overview.PlanCount != 0 || overview.ExpenseCount != 0 || overview.BudgetCount != 0 {
			t.Errorf("expected all collections empty, got %+v", overview)
		}
	})

	t.Run("other_users_data_survives", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)

		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestPlan(t, db, user.ID, 100)
		testutil.CreateTestPlan(t, db, other.ID, 200)

		err := svc.ClearHistory(user.ID, "DELETE")
		testutil.AssertNoError(t, err)

		overview, err := svc.Overview(other.ID)
		testutil.AssertNoError(t, err)
		if overview.PlanCount != 1 {
			t.Errorf("expected other user's plan to survive, got %d", overview.PlanCount)
		}
	})
}
