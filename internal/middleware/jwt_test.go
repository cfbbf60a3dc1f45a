package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"GOTRIP_BACK-END/internal/config"
	"GOTRIP_BACK-END/internal/models"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	}
}

func testUser(role string) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "aarati123",
		Role:     role,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser(models.RoleAdmin)

	token, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Username != "aarati123" || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(testUser(models.RoleUser), cfg)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	other := &config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour}
	if _, err := ValidateToken(token, other); err == nil {
		t.Fatalf("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(testUser(models.RoleUser), cfg)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ValidateToken(token, cfg); err == nil {
		t.Fatalf("expected validation to fail for expired token")
	}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser(models.RoleUser)
	token, err := GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var gotID uuid.UUID
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}, cfg)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid bearer", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer invalidToken", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.status, rec.Code)
		}
	}

	if gotID != user.ID {
		t.Fatalf("expected user id %s in context, got %s", user.ID, gotID)
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := testJWTConfig()
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	for _, tc := range []struct {
		role   string
		status int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleUser, http.StatusForbidden},
	} {
		token, err := GenerateToken(testUser(tc.role), cfg)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		AuthMiddleware(RequireAdmin(next), cfg)(rec, req)
		if rec.Code != tc.status {
			t.Fatalf("role %s: expected %d, got %d", tc.role, tc.status, rec.Code)
		}
	}
}

func TestRequireAdminWithoutAuth(t *testing.T) {
	// Gate applied without AuthMiddleware upstream sees no role at all
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
