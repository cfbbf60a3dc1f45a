package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"GOTRIP_BACK-END/internal/dto"
	"GOTRIP_BACK-END/internal/middleware"
	"GOTRIP_BACK-END/internal/models"
	"GOTRIP_BACK-END/internal/repository"
	"GOTRIP_BACK-END/internal/utils"
)

// BookingsHandler manages the booking ledger endpoints
type BookingsHandler struct {
	bookings     repository.BookingStore
	destinations repository.DestinationStore
	users        repository.UserStore
}

// NewBookingsHandler creates a new BookingsHandler
func NewBookingsHandler(bookings repository.BookingStore, destinations repository.DestinationStore, users repository.UserStore) *BookingsHandler {
	return &BookingsHandler{bookings: bookings, destinations: destinations, users: users}
}

// Bookings dispatches by method and path under /bookings/. The route
// shape is fixed: POST /bookings/{destination_id}/, GET /bookings/all,
// and GET/PUT/DELETE /bookings/{booking_id}. Anything else is a 405.
func (h *BookingsHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/bookings"), "/")
	if rest == "" || strings.Contains(rest, "/") {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if rest == "all" {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.ListAll(w, r)
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.Create(w, r, rest)
	case http.MethodGet:
		middleware.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			h.Detail(w, r, rest)
		})(w, r)
	case http.MethodPut:
		middleware.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			h.Update(w, r, rest)
		})(w, r)
	case http.MethodDelete:
		middleware.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			h.Delete(w, r, rest)
		})(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Create handles POST /bookings/{destination_id}/
// @Summary Book a destination
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param destination_id path string true "Destination ID"
// @Param request body dto.BookingRequest true "Booking payload"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 404 {object} dto.ErrorResponse "Destination not found"
// @Router /bookings/{destination_id}/ [post]
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request, idStr string) {
	destinationID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Destination not found", "")
		return
	}

	if _, err := h.destinations.GetByID(r.Context(), destinationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Destination not found", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get destination", err.Error())
		return
	}

	var req dto.BookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Fullname == "" || req.Email == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "fullname and email are required")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	booking := models.Booking{
		ID:            uuid.New(),
		Fullname:      req.Fullname,
		Email:         req.Email,
		Date:          req.Date,
		Time:          req.Time,
		People:        req.People,
		UserID:        userID,
		DestinationID: destinationID,
		CreatedAt:     time.Now(),
	}

	if err := h.bookings.Create(r.Context(), &booking); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, h.populate(r.Context(), booking))
}

// ListAll handles GET /bookings/all. Every booking is returned to any
// authenticated caller; ownership is not checked at this layer.
// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BookingListResponse
// @Router /bookings/all [get]
func (h *BookingsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}

	data := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		data = append(data, h.populate(r.Context(), b))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookingListResponse{Success: true, Data: data})
}

// Detail handles GET /bookings/{booking_id} (admin only)
// @Summary Get a booking by id
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not admin"
// @Failure 404 {object} dto.ErrorResponse "Booking not found"
// @Router /bookings/{booking_id} [get]
func (h *BookingsHandler) Detail(w http.ResponseWriter, r *http.Request, idStr string) {
	booking, ok := h.lookup(w, r, idStr)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, h.populate(r.Context(), *booking))
}

// Update handles PUT /bookings/{booking_id} (admin only)
// @Summary Update a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking_id path string true "Booking ID"
// @Param request body dto.BookingRequest true "Replacement fields"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not admin"
// @Failure 404 {object} dto.ErrorResponse "Booking not found"
// @Router /bookings/{booking_id} [put]
func (h *BookingsHandler) Update(w http.ResponseWriter, r *http.Request, idStr string) {
	booking, ok := h.lookup(w, r, idStr)
	if !ok {
		return
	}

	var req dto.BookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	booking.Fullname = req.Fullname
	booking.Email = req.Email
	booking.Date = req.Date
	booking.Time = req.Time
	booking.People = req.People

	if err := h.bookings.Update(r.Context(), booking); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update booking", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, h.populate(r.Context(), *booking))
}

// Delete handles DELETE /bookings/{booking_id} (admin only)
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not admin"
// @Failure 404 {object} dto.ErrorResponse "Booking not found"
// @Router /bookings/{booking_id} [delete]
func (h *BookingsHandler) Delete(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found", "")
		return
	}

	if err := h.bookings.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete booking", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{Success: true, Message: "Booking deleted"})
}

// lookup parses and fetches a booking, writing the 404 itself when the
// id is malformed or absent.
func (h *BookingsHandler) lookup(w http.ResponseWriter, r *http.Request, idStr string) (*models.Booking, bool) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found", "")
		return nil, false
	}

	booking, err := h.bookings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Booking not found", "")
			return nil, false
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get booking", err.Error())
		return nil, false
	}
	return booking, true
}

// populate joins the destination and user summaries onto a booking.
// Dangling references are tolerated: the referenced record may have
// been deleted since the booking was created, in which case the
// summary is simply omitted.
func (h *BookingsHandler) populate(ctx context.Context, b models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:       b.ID.String(),
		Fullname: b.Fullname,
		Email:    b.Email,
		Date:     b.Date,
		Time:     b.Time,
		People:   b.People,
	}

	if d, err := h.destinations.GetByID(ctx, b.DestinationID); err == nil {
		dr := toDestinationResponse(*d)
		resp.Destination = &dr
	}
	if u, err := h.users.GetByID(ctx, b.UserID); err == nil {
		resp.User = &dto.BookingUserSummary{
			ID:       u.ID.String(),
			Username: u.Username,
			Email:    u.Email,
		}
	}
	return resp
}
