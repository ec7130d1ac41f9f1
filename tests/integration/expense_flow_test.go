package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestExpenseFlow_CreateListAndSummarize(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "expenses@test.com", "password123")

	// Create three expenses in March 2024 and one outside the period
	payloads := []string{
		`{"title":"Groceries","date":"2024-03-01","amount":15,"category":"Food"}`,
		`{"title":"Lunch","date":"2024-03-15","amount":8.50,"category":"food"}`,
		`{"title":"Bus ticket","date":"2024-03-15","amount":2.75}`,
		`{"title":"April rent","date":"2024-04-01","amount":900,"category":"Housing"}`,
	}
	for _, body := range payloads {
		rec := app.request("POST", "/api/v1/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	// List filtered to March 2024
	rec := app.request("GET", "/api/v1/expenses?year=2024&month=3", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 3 {
		t.Errorf("expected 3 expenses in March, got %.0f", result["total_items"].(float64))
	}

	// Category breakdown merges case variants and labels the blank category
	rec = app.request("GET", "/api/v1/summary/categories/3/2024", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	first := categories[0].(map[string]interface{})
	if first["category"] != "Food" {
		t.Errorf("expected Food with the largest spend first, got %v", first["category"])
	}
	if first["spent"].(float64) != 23.5 {
		t.Errorf("expected 23.5 spent on Food, got %v", first["spent"])
	}
	second := categories[1].(map[string]interface{})
	if second["category"] != "Uncategorized" {
		t.Errorf("expected Uncategorized, got %v", second["category"])
	}

	// Daily totals cover a 30 day window with zero fill
	rec = app.request("GET", "/api/v1/summary/daily/3/2024", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	daily := parseJSON(t, rec)["daily"].([]interface{})
	if len(daily) != 30 {
		t.Fatalf("expected 30 daily entries, got %d", len(daily))
	}
	day1 := daily[0].(map[string]interface{})
	if day1["date"] != "2024-03-01" || day1["total"].(float64) != 15 {
		t.Errorf("expected 15 on 2024-03-01, got %v on %v", day1["total"], day1["date"])
	}
	day15 := daily[14].(map[string]interface{})
	if day15["total"].(float64) != 11.25 {
		t.Errorf("expected 11.25 on day 15, got %v", day15["total"])
	}
	day2 := daily[1].(map[string]interface{})
	if day2["total"].(float64) != 0 {
		t.Errorf("expected 0 on an empty day, got %v", day2["total"])
	}
}

func TestExpenseFlow_FixedPageSize(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "paging@test.com", "password123")

	for i := 1; i <= 12; i++ {
		body := fmt.Sprintf(`{"title":"Item %d","date":"2024-05-%02d","amount":%d}`, i, i, i)
		rec := app.request("POST", "/api/v1/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/expenses", "", token)
	result := parseJSON(t, rec)
	if len(result["data"].([]interface{})) != 10 {
		t.Errorf("expected 10 items on the first page, got %d", len(result["data"].([]interface{})))
	}
	if result["total_pages"].(float64) != 2 {
		t.Errorf("expected 2 pages, got %.0f", result["total_pages"].(float64))
	}

	rec = app.request("GET", "/api/v1/expenses?page=2", "", token)
	result = parseJSON(t, rec)
	if len(result["data"].([]interface{})) != 2 {
		t.Errorf("expected 2 items on the second page, got %d", len(result["data"].([]interface{})))
	}
}

func TestExpenseFlow_UpdateRederivesDateParts(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "expupdate@test.com", "password123")

	rec := app.request("POST", "/api/v1/expenses",
		`{"title":"Dinner","date":"2024-03-10","amount":40,"category":"Food"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	expenseID := expense["id"].(float64)

	rec = app.request("PUT", fmt.Sprintf("/api/v1/expenses/%.0f", expenseID),
		`{"title":"Dinner","date":"2024-09-21","amount":40,"category":"Food"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["expense"].(map[string]interface{})
	if updated["month"].(float64) != 9 || updated["day"].(float64) != 21 {
		t.Errorf("expected month 9 day 21, got month %v day %v", updated["month"], updated["day"])
	}

	// The expense no longer shows up in the old period
	rec = app.request("GET", "/api/v1/expenses?year=2024&month=3", "", token)
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 0 {
		t.Errorf("expected 0 expenses left in March, got %.0f", result["total_items"].(float64))
	}
}

func TestExpenseFlow_TextSearch(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "expsearch@test.com", "password123")

	app.request("POST", "/api/v1/expenses",
		`{"title":"Morning coffee","date":"2024-06-01","amount":4}`, token)
	app.request("POST", "/api/v1/expenses",
		`{"title":"Snack","date":"2024-06-02","amount":3,"note":"coffee and cake"}`, token)
	app.request("POST", "/api/v1/expenses",
		`{"title":"Fuel","date":"2024-06-03","amount":50}`, token)

	rec := app.request("GET", "/api/v1/expenses?q=COFFEE", "", token)
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 2 {
		t.Errorf("expected 2 matches over title and note, got %.0f", result["total_items"].(float64))
	}
}

func TestExpenseFlow_UsersAreIsolated(t *testing.T) {
	app := setupApp(t)
	tokenA, _, _ := app.registerUser(t, "usera@test.com", "password123")
	tokenB, _, _ := app.registerUser(t, "userb@test.com", "password123")

	rec := app.request("POST", "/api/v1/expenses",
		`{"title":"Private","date":"2024-06-01","amount":10}`, tokenA)
	expenseID := parseJSON(t, rec)["expense"].(map[string]interface{})["id"].(float64)

	rec = app.request("GET", fmt.Sprintf("/api/v1/expenses/%.0f", expenseID), "", tokenB)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's expense, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/expenses", "", tokenB)
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 0 {
		t.Errorf("expected no expenses for the other user, got %.0f", result["total_items"].(float64))
	}
}
