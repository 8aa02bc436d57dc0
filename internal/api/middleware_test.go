package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadgate/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// expiredToken signs a token whose expiry is already in the past, using
// the same secret the test router verifies with.
func expiredToken(t *testing.T) string {
	t.Helper()
	claims := &auth.Claims{
		UserUUID: "00000000-0000-0000-0000-000000000000",
		Email:    "admin@example.com",
		Role:     auth.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	return token
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/contacts", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := decode(t, rec)["error"]; got != "Authorization header required" {
		t.Errorf("unexpected error message %v", got)
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/api/contacts", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := decode(t, rec)["error"]; got != "Invalid authorization format" {
		t.Errorf("unexpected error message %v", got)
	}
}

func TestRequireAuth_ExpiredVersusInvalid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/contacts", nil, expiredToken(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
	expiredMsg := decode(t, rec)["error"]
	if expiredMsg != "Token expired" {
		t.Errorf("expected 'Token expired', got %v", expiredMsg)
	}

	rec = env.do(t, "GET", "/api/contacts", nil, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
	invalidMsg := decode(t, rec)["error"]
	if invalidMsg != "Invalid token" {
		t.Errorf("expected 'Invalid token', got %v", invalidMsg)
	}

	if expiredMsg == invalidMsg {
		t.Error("expired and invalid tokens must produce distinct messages")
	}
}

func TestRequireAuth_ValidTokenPasses(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/contacts", nil, env.adminToken(t, auth.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireRole_RejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "GET", "/api/contacts", nil, env.adminToken(t, "Intern"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a role outside the allowed set, got %d", rec.Code)
	}
}
