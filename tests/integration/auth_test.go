package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAuth_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, _, userID := app.registerUser(t, "auth@test.com", "password123")
	if userID == 0 {
		t.Fatal("expected a user ID from registration")
	}

	// Profile reachable with the registration token
	rec := app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["email"] != "auth@test.com" {
		t.Errorf("expected auth@test.com, got %v", user["email"])
	}

	// Fresh login issues a working token too
	loginToken, _ := app.loginUser(t, "auth@test.com", "password123")
	rec = app.request("GET", "/api/v1/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with login token, got %d", rec.Code)
	}
}

func TestAuth_DuplicateEmailRejected(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "dupe@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/register",
		`{"email":"dupe@test.com","password":"password123","password_confirmation":"password123"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuth_RefreshRotation(t *testing.T) {
	app := setupApp(t)
	_, refreshToken, _ := app.registerUser(t, "rotate@test.com", "password123")

	// First refresh succeeds and rotates the stored token
	rec := app.request("POST", "/api/v1/auth/refresh",
		fmt.Sprintf(`{"refresh_token":%q}`, refreshToken), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	newRefresh := result["refresh_token"].(string)
	if newRefresh == refreshToken {
		t.Fatal("expected a rotated refresh token")
	}

	// The old refresh token is no longer accepted
	rec = app.request("POST", "/api/v1/auth/refresh",
		fmt.Sprintf(`{"refresh_token":%q}`, refreshToken), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale refresh token, got %d", rec.Code)
	}

	// The rotated token still works
	rec = app.request("POST", "/api/v1/auth/refresh",
		fmt.Sprintf(`{"refresh_token":%q}`, newRefresh), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for rotated token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuth_LogoutRevokesRefresh(t *testing.T) {
	app := setupApp(t)
	token, refreshToken, _ := app.registerUser(t, "logout@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/logout", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/auth/refresh",
		fmt.Sprintf(`{"refresh_token":%q}`, refreshToken), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestAuth_LockoutAfterRepeatedFailures(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "lockout@test.com", "password123")

	for i := 0; i < 5; i++ {
		rec := app.request("POST", "/api/v1/auth/login",
			`{"email":"lockout@test.com","password":"wrong-password"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, rec.Code)
		}
	}

	// Even the right password is rejected while locked
	rec := app.request("POST", "/api/v1/auth/login",
		`{"email":"lockout@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusLocked {
		t.Fatalf("expected 423, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "ACCOUNT_LOCKED" {
		t.Errorf("expected ACCOUNT_LOCKED, got %v", errObj["code"])
	}
}

func TestAuth_ProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/expenses", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/profile", "", "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
	}
}
