package services

import (
	"testing"
	"time"

	"budgetbook/internal/testutil"
)

func TestSetMonthlyBudget(t *testing.T) {
	t.Run("creates_new", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)
		budget, replaced, err := svc.SetMonthlyBudget(user.ID, 500, 6, 2024, "summer")
		testutil.AssertNoError(t, err)

		if replaced {
			t.Error("expected a fresh budget, not a replacement")
		}
		if budget.ID == 0 {
			t.Fatal("expected non-zero budget ID")
		}
		if budget.Budget != 500 || budget.Month != 6 || budget.Year != 2024 {
			t.Errorf("unexpected budget record: %+v", budget)
		}
	})

	t.Run("replaces_existing_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)
		first, _, err := svc.SetMonthlyBudget(user.ID, 500, 6, 2024, "")
		testutil.AssertNoError(t, err)

		second, replaced, err := svc.SetMonthlyBudget(user.ID, 750, 6, 2024, "revised")
		testutil.AssertNoError(t, err)

		if !replaced {
			t.Error("expected replacement of the existing period budget")
		}
		if second.ID != first.ID {
			t.Errorf("expected the existing record to be reused, got new ID %d", second.ID)
		}
		if second.Budget != 750 {
			t.Errorf("expected budget 750, got %f", second.Budget)
		}

		// Only one record exists for the period.
		budgets, err := svc.GetUserBudgets(user.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 {
			t.Errorf("expected 1 budget for the period, got %d", len(budgets))
		}
	})

	t.Run("same_period_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, _, err := svc.SetMonthlyBudget(alice.ID, 500, 6, 2024, "")
		testutil.AssertNoError(t, err)
		_, replaced, err := svc.SetMonthlyBudget(bob.ID, 300, 6, 2024, "")
		testutil.AssertNoError(t, err)

		if replaced {
			t.Error("another user's budget must not be treated as a conflict")
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)

		_, _, err := svc.SetMonthlyBudget(user.ID, 0, 6, 2024, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, _, err = svc.SetMonthlyBudget(user.ID, 100, 13, 2024, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, _, err = svc.SetMonthlyBudget(user.ID, 100, 6, 0, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBudgets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db, NewSummaryService(db))

	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestMonthlyBudget(t, db, user.ID, 100, 1, 2024)
	testutil.CreateTestMonthlyBudget(t, db, user.ID, 200, 12, 2023)
	testutil.CreateTestMonthlyBudget(t, db, user.ID, 300, 6, 2024)

	budgets, err := svc.GetUserBudgets(user.ID)
	testutil.AssertNoError(t, err)

	if len(budgets) != 3 {
		t.Fatalf("expected 3 budgets, got %d", len(budgets))
	}
	// Most recent period first.
	if budgets[0].Month != 6 || budgets[0].Year != 2024 {
		t.Errorf("expected 6/2024 first, got %d/%d", budgets[0].Month, budgets[0].Year)
	}
	if budgets[2].Year != 2023 {
		t.Errorf("expected 2023 last, got %d", budgets[2].Year)
	}
}

func TestGetBudgetStatus(t *testing.T) {
	t.Run("spent_and_remaining", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestMonthlyBudget(t, db, user.ID, 100, 3, 2024)
		testutil.CreateTestExpense(t, db, user.ID, 10.50, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestExpense(t, db, user.ID, 5.25, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
		// Outside the period; must not count.
		testutil.CreateTestExpense(t, db, user.ID, 99, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

		status, err := svc.GetBudgetStatus(user.ID, 3, 2024)
		testutil.AssertNoError(t, err)

		if status.Spent != 15.75 {
			t.Errorf("expected spent 15.75, got %f", status.Spent)
		}
		if status.Remaining != 84.25 {
			t.Errorf("expected remaining 84.25, got %f", status.Remaining)
		}
	})

	t.Run("no_budget_for_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)
		_, err := svc.GetBudgetStatus(user.ID, 3, 2024)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestMonthlyBudget(t, db, user.ID, 100, 3, 2024)

		updated, err := svc.UpdateBudget(user.ID, created.ID, 250, 4, 2024, "moved")
		testutil.AssertNoError(t, err)

		if updated.Budget != 250 || updated.Month != 4 {
			t.Errorf("unexpected updated budget: %+v", updated)
		}
	})

	t.Run("other_users_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestMonthlyBudget(t, db, owner.ID, 100, 3, 2024)

		_, err := svc.UpdateBudget(intruder.ID, created.ID, 250, 4, 2024, "")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestMonthlyBudget(t, db, user.ID, 100, 3, 2024)

		_, err := svc.UpdateBudget(user.ID, created.ID, -10, 3, 2024, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("deletes_own_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestMonthlyBudget(t, db, user.ID, 100, 3, 2024)

		err := svc.DeleteBudget(user.ID, created.ID)
		testutil.AssertNoError(t, err)

		budgets, err := svc.GetUserBudgets(user.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 0 {
			t.Errorf("expected no budgets after delete, got %d", len(budgets))
		}
	})

	t.Run("foreign_budget_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db, NewSummaryService(db))

		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestMonthlyBudget(t, db, owner.ID, 100, 3, 2024)

		err := svc.DeleteBudget(intruder.ID, created.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

		budgets, err := svc.GetUserBudgets(owner.ID)
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 {
			t.Errorf("expected owner's budget to survive, got %d budgets", len(budgets))
		}
	})
}
