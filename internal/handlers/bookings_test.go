package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func bookingPayload() map[string]any {
	return map[string]any{
		"fullname": "aarati singh",
		"email":    "aarati@gmail.com",
		"date":     "21 aug 2023",
		"time":     "5PM",
		"people":   4,
	}
}

// createBooking books the given destination as the token's user and
// returns the booking id.
func createBooking(t *testing.T, env *testEnv, token, destinationID string) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/bookings/"+destinationID+"/", token, bookingPayload())
	if rec.Code != http.StatusOK {
		t.Fatalf("create booking: expected 200, got %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		ID          string `json:"id"`
		Destination struct {
			ID string `json:"id"`
		} `json:"destination"`
	}
	decodeBody(t, rec, &body)
	if body.ID == "" {
		t.Fatalf("create booking: missing id in %s", rec.Body.String())
	}
	if body.Destination.ID != destinationID {
		t.Fatalf("create booking: expected destination %s, got %s", destinationID, body.Destination.ID)
	}
	return body.ID
}

func TestUserCanBookDestination(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	destinationID := env.createDestination(t, adminToken, "Aarati Dhangadhi", "Anamnagar,ktm", "3500")
	createBooking(t, env, userToken, destinationID)
}

func TestBookUnknownDestination(t *testing.T) {
	env, userToken, _ := setupUserAndAdmin(t)
	rec := env.do(t, http.MethodPost, "/bookings/"+uuid.NewString()+"/", userToken, bookingPayload())
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Destination not found" {
		t.Fatalf("expected 'Destination not found', got %q", body["error"])
	}
}

func TestListAllBookings(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	destinationID := env.createDestination(t, adminToken, "Aarati Dhangadhi", "Anamnagar,ktm", "3500")
	createBooking(t, env, userToken, destinationID)

	// Any authenticated caller sees the full ledger, ownership is not
	// filtered at this layer.
	rec := env.do(t, http.MethodGet, "/bookings/all", userToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Fullname string `json:"fullname"`
			User     struct {
				Username string `json:"username"`
			} `json:"user"`
			Destination struct {
				Name string `json:"name"`
			} `json:"destination"`
		} `json:"data"`
	}
	decodeBody(t, rec, &body)
	if !body.Success || len(body.Data) != 1 {
		t.Fatalf("expected one booking, got %s", rec.Body.String())
	}
	if body.Data[0].User.Username != "aarati123" {
		t.Fatalf("expected populated user summary, got %s", rec.Body.String())
	}
	if body.Data[0].Destination.Name != "Aarati Dhangadhi" {
		t.Fatalf("expected populated destination summary, got %s", rec.Body.String())
	}
}

func TestGetBookingByID(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	destinationID := env.createDestination(t, adminToken, "Aarati Dhangadhi", "Anamnagar,ktm", "3500")
	bookingID := createBooking(t, env, userToken, destinationID)

	rec := env.do(t, http.MethodGet, "/bookings/"+bookingID, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		ID     string `json:"id"`
		People int    `json:"people"`
	}
	decodeBody(t, rec, &body)
	if body.ID != bookingID || body.People != 4 {
		t.Fatalf("unexpected booking body: %s", rec.Body.String())
	}
}

func TestGetBookingNotFound(t *testing.T) {
	env, _, adminToken := setupUserAndAdmin(t)
	rec := env.do(t, http.MethodGet, "/bookings/"+uuid.NewString(), adminToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Booking not found" {
		t.Fatalf("expected 'Booking not found', got %q", body["error"])
	}
}

func TestUpdateBooking(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	destinationID := env.createDestination(t, adminToken, "Aarati Dhangadhi", "Anamnagar,ktm", "3500")
	bookingID := createBooking(t, env, userToken, destinationID)

	updated := bookingPayload()
	updated["date"] = "22 aug 2023"
	updated["time"] = "4PM"

	rec := env.do(t, http.MethodPut, "/bookings/"+bookingID, adminToken, updated)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	decodeBody(t, rec, &body)
	if body.Date != "22 aug 2023" || body.Time != "4PM" {
		t.Fatalf("expected updated fields, got %s", rec.Body.String())
	}
}

func TestUpdateBookingRequiresAdmin(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	destinationID := env.createDestination(t, adminToken, "Aarati Dhangadhi", "Anamnagar,ktm", "3500")
	bookingID := createBooking(t, env, userToken, destinationID)

	rec := env.do(t, http.MethodPut, "/bookings/"+bookingID, userToken, bookingPayload())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "you are not admin!" {
		t.Fatalf("expected 'you are not admin!', got %q", body["error"])
	}
}

func TestUpdateBookingNotFound(t *testing.T) {
	env, _, adminToken := setupUserAndAdmin(t)
	rec := env.do(t, http.MethodPut, "/bookings/"+uuid.NewString(), adminToken, bookingPayload())
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteBooking(t *testing.T) {
	env, userToken, adminToken := setupUserAndAdmin(t)
	destinationID := env.createDestination(t, adminToken, "Aarati Dhangadhi", "Anamnagar,ktm", "3500")
	bookingID := createBooking(t, env, userToken, destinationID)

	rec := env.do(t, http.MethodDelete, "/bookings/"+bookingID, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Gone afterwards
	rec = env.do(t, http.MethodGet, "/bookings/"+bookingID, adminToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestDeleteBookingNotFound(t *testing.T) {
	env, _, adminToken := setupUserAndAdmin(t)
	rec := env.do(t, http.MethodDelete, "/bookings/"+uuid.NewString(), adminToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInvalidBookingRoutes(t *testing.T) {
	env, _, adminToken := setupUserAndAdmin(t)

	// Bare collection path and nested paths have no handler
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/bookings/"},
		{http.MethodPut, "/bookings/"},
		{http.MethodPost, "/bookings/all"},
		{http.MethodPatch, "/bookings/" + uuid.NewString()},
		{http.MethodPut, "/bookings/a/b"},
	} {
		rec := env.do(t, tc.method, tc.path, adminToken, nil)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405, got %d", tc.method, tc.path, rec.Code)
		}
	}
}
