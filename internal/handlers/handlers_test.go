package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"GOTRIP_BACK-END/internal/config"
	"GOTRIP_BACK-END/internal/handlers"
	"GOTRIP_BACK-END/internal/repository"
	"GOTRIP_BACK-END/internal/routes"
)

// testEnv wires the full route table over the in-memory stores.
type testEnv struct {
	mux          *http.ServeMux
	cfg          *config.Config
	users        *repository.MemoryUserStore
	destinations *repository.MemoryDestinationStore
	bookings     *repository.MemoryBookingStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			AccessTokenTTL: time.Hour,
		},
	}

	users := repository.NewMemoryUserStore()
	destinations := repository.NewMemoryDestinationStore()
	bookings := repository.NewMemoryBookingStore()

	usersHandler := handlers.NewUsersHandler(users, cfg)
	destinationsHandler := handlers.NewDestinationsHandler(destinations)
	bookingsHandler := handlers.NewBookingsHandler(bookings, destinations, users)
	healthHandler := handlers.NewHealthHandler(nil)

	mux := routes.SetupRoutes(cfg, usersHandler, destinationsHandler, bookingsHandler, healthHandler)

	return &testEnv{
		mux:          mux,
		cfg:          cfg,
		users:        users,
		destinations: destinations,
		bookings:     bookings,
	}
}

// do issues a request against the route table. A non-empty token is
// sent as a bearer Authorization header.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// register creates an account and fails the test on anything but 201.
func (e *testEnv) register(t *testing.T, fullname, username, email, password, role string) map[string]any {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/users/register", "", map[string]string{
		"fullname": fullname,
		"username": username,
		"email":    email,
		"password": password,
		"role":     role,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: got status %d, body %s", username, rec.Code, rec.Body.String())
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	return body
}

// login returns the session token and fails the test on anything but 200.
func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/users/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: got status %d, body %s", username, rec.Code, rec.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &body)
	if body.Token == "" {
		t.Fatalf("login %s: empty token", username)
	}
	return body.Token
}

// createDestination inserts a destination through the API as admin and
// returns its id.
func (e *testEnv) createDestination(t *testing.T, adminToken, name, location, price string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/destination/", adminToken, map[string]string{
		"name":     name,
		"location": location,
		"price":    price,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create destination: got status %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	decodeBody(t, rec, &body)
	if body.Data.ID == "" {
		t.Fatalf("create destination: missing id in %s", rec.Body.String())
	}
	return body.Data.ID
}
