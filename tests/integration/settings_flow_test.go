package integration

import (
	"net/http"
	"testing"
)

func TestSettingsFlow_OverviewAndClearHistory(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "settings@test.com", "password123")

	app.request("POST", "/api/v1/plans",
		`{"title":"Rent","planned_expense":900}`, token)
	app.request("POST", "/api/v1/expenses",
		`{"title":"Lunch","date":"2024-03-15","amount":8}`, token)
	app.request("POST", "/api/v1/expenses",
		`{"title":"Coffee","date":"2024-03-16","amount":4}`, token)
	app.request("POST", "/api/v1/budgets",
		`{"budget":100,"month":3,"year":2024}`, token)

	rec := app.request("GET", "/api/v1/settings", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	overview := result["overview"].(map[string]interface{})
	if overview["plan_count"].(float64) != 1 {
		t.Errorf("expected 1 plan, got %v", overview["plan_count"])
	}
	if overview["expense_count"].(float64) != 2 {
		t.Errorf("expected 2 expenses, got %v", overview["expense_count"])
	}
	if overview["budget_count"].(float64) != 1 {
		t.Errorf("expected 1 budget, got %v", overview["budget_count"])
	}
	user := result["user"].(map[string]interface{})
	if user["email"] != "settings@test.com" {
		t.Errorf("expected settings@test.com, got %v", user["email"])
	}

	// A wrong confirmation leaves everything in place
	rec = app.request("POST", "/api/v1/settings/clear_history",
		`{"confirmation":"delete"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_CONFIRMATION" {
		t.Errorf("expected INVALID_CONFIRMATION, got %v", errObj["code"])
	}

	rec = app.request("GET", "/api/v1/settings", "", token)
	overview = parseJSON(t, rec)["overview"].(map[string]interface{})
	if overview["expense_count"].(float64) != 2 {
		t.Errorf("expected data to survive a failed confirmation, got %v expenses", overview["expense_count"])
	}

	// The exact confirmation wipes all three collections
	rec = app.request("POST", "/api/v1/settings/clear_history",
		`{"confirmation":"DELETE"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/settings", "", token)
	overview = parseJSON(t, rec)["overview"].(map[string]interface{})
	if overview["plan_count"].(float64) != 0 || overview["expense_count"].(float64) != 0 || overview["budget_count"].(float64) != 0 {
		t.Errorf("expected all counts to be zero after clearing, got %v", overview)
	}

	// The account itself still works
	rec = app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Errorf("expected the account to survive clearing, got %d", rec.Code)
	}
}

func TestSettingsFlow_ClearHistoryIsUserScoped(t *testing.T) {
	app := setupApp(t)
	tokenA, _, _ := app.registerUser(t, "cleara@test.com", "password123")
	tokenB, _, _ := app.registerUser(t, "clearb@test.com", "password123")

	app.request("POST", "/api/v1/expenses",
		`{"title":"Mine","date":"2024-03-15","amount":8}`, tokenA)
	app.request("POST", "/api/v1/expenses",
		`{"title":"Theirs","date":"2024-03-15","amount":9}`, tokenB)

	rec := app.request("POST", "/api/v1/settings/clear_history",
		`{"confirmation":"DELETE"}`, tokenA)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/settings", "", tokenB)
	overview := parseJSON(t, rec)["overview"].(map[string]interface{})
	if overview["expense_count"].(float64) != 1 {
		t.Errorf("expected the other user's expense to survive, got %v", overview["expense_count"])
	}
}
