package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func setupUserAndAdmin(t *testing.T) (env *testEnv, userToken, adminToken string) {
	t.Helper()
	env = newTestEnv(t)
	env.register(t, "Aarati Singh", "aarati123", "aarati123@gmail.com", "aarati123", "user")
	userToken = env.login(t, "aarati123", "aarati123")
	env.register(t, "Anil Singh", "anil123", "anil@gmail.com", "anil123", "admin")
	adminToken = env.login(t, "anil123", "anil123")
	return env, userToken, adminToken
}

func TestAdminCanCreateDestination(t *testing.T) {
	env, _, adminToken := setupUserAndAdmin(t)
	id := env.createDestination(t, adminToken, "Pokhara PhewaTal", "Anamnagar,ktm", "3500")
	if id == "" {
		t.Fatalf("expected destination id")
	}
}

func TestUserCannotCreateDestination(t *testing.T) {
	env, userToken, _ := setupUserAndAdmin(t)
	rec := env.do(t, http.MethodPost, "/destination/", userToken, map[string]string{
		"name":     "Pokhara PhewaTal",
		"location": "Anamnagar,ktm",
		"price":    "3500",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if !strings.Contains(body["error"], "you are not admin!") {
		t.Fatalf("expected 'you are not admin!', got %q", body["error"])
	}
}

func TestUserCanListDestinations(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	env.createDestination(t, adminToken, "Pokhara PhewaTal", "Anamnagar,ktm", "3500")

	// With and without trailing slash
	for _, path := range []string{"/destination", "/destination/"} {
		rec := env.do(t, http.MethodGet, path, userToken, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Data    []struct {
				Name string `json:"name"`
			} `json:"data"`
		}
		decodeBody(t, rec, &body)
		if !body.Success {
			t.Fatalf("GET %s: expected success true", path)
		}
		found := false
		for _, d := range body.Data {
			if d.Name == "Pokhara PhewaTal" {
				found = true
			}
		}
		if !found {
			t.Fatalf("GET %s: created destination missing from listing", path)
		}
	}
}

func TestListDestinationsRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/destination/", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetDestinationByID(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	id := env.createDestination(t, adminToken, "Pokhara PhewaTal", "Anamnagar,ktm", "3500")

	rec := env.do(t, http.MethodGet, "/destination/"+id, userToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Name    string `json:"name"`
			Reviews []any  `json:"reviews"`
		} `json:"data"`
	}
	decodeBody(t, rec, &body)
	if !body.Success || body.Data.Name != "Pokhara PhewaTal" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetDestinationNotFound(t *testing.T) {
	env, userToken, _ := setupUserAndAdmin(t)

	rec := env.do(t, http.MethodGet, "/destination/"+uuid.NewString(), userToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Destination not found" {
		t.Fatalf("expected 'Destination not found', got %q", body["error"])
	}

	rec = env.do(t, http.MethodGet, "/destination/not-a-uuid", userToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", rec.Code)
	}
}

func TestUserCanReviewDestination(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	id := env.createDestination(t, adminToken, "Pokhara PhewaTal", "Anamnagar,ktm", "3500")

	rec := env.do(t, http.MethodPost, "/destination/"+id+"/reviews", userToken, map[string]string{
		"text": "this destination is so good",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body %s", rec.Code, rec.Body.String())
	}

	// Review shows up on the detail view
	rec = env.do(t, http.MethodGet, "/destination/"+id, userToken, nil)
	var body struct {
		Data struct {
			Reviews []struct {
				Text string `json:"text"`
			} `json:"reviews"`
		} `json:"data"`
	}
	decodeBody(t, rec, &body)
	if len(body.Data.Reviews) != 1 || body.Data.Reviews[0].Text != "this destination is so good" {
		t.Fatalf("expected review embedded in detail, got %s", rec.Body.String())
	}
}

func TestReviewUnknownDestination(t *testing.T) {
	env, userToken, _ := setupUserAndAdmin(t)
	rec := env.do(t, http.MethodPost, "/destination/"+uuid.NewString()+"/reviews", userToken, map[string]string{
		"text": "nice",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
