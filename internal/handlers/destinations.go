package handlers

import (
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

// DestinationsHandler manages the destination catalog endpoints
type DestinationsHandler struct {
	destinations repository.DestinationStore
}

// NewDestinationsHandler creates a new DestinationsHandler
func NewDestinationsHandler(destinations repository.DestinationStore) *DestinationsHandler {
	return &DestinationsHandler{destinations: destinations}
}

// Destinations dispatches by method and path under /destination/
func (h *DestinationsHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/destination"), "/")

	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			h.List(w, r)
		case http.MethodPost:
			middleware.RequireAdmin(h.Create)(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1:
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.Detail(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "reviews":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.AddReview(w, r, parts[0])
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Destination not found", "")
	}
}

// Create handles POST /destination/ (admin only)
// @Summary Create a destination
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDestinationRequest true "Destination payload"
// @Success 201 {object} dto.DestinationDataResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 403 {object} dto.ErrorResponse "Caller is not admin"
// @Router /destination/ [post]
func (h *DestinationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDestinationRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	if req.Name == "" || req.Location == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name and location are required")
		return
	}

	destination := models.Destination{
		ID:        uuid.New(),
		Name:      req.Name,
		Location:  req.Location,
		Price:     req.Price,
		CreatedAt: time.Now(),
	}

	if err := h.destinations.Create(r.Context(), &destination); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create destination", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.DestinationDataResponse{
		Success: true,
		Data:    toDestinationResponse(destination),
	})
}

// List handles GET /destination/
// @Summary List destinations
// @Tags destinations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DestinationListResponse
// @Router /destination/ [get]
func (h *DestinationsHandler) List(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.destinations.List(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list destinations", err.Error())
		return
	}

	data := make([]dto.DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		data = append(data, toDestinationResponse(d))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DestinationListResponse{Success: true, Data: data})
}

// Detail handles GET /destination/{id}
// @Summary Get a destination by id
// @Tags destinations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} dto.DestinationDataResponse
// @Failure 404 {object} dto.ErrorResponse "Destination not found"
// @Router /destination/{id} [get]
func (h *DestinationsHandler) Detail(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Destination not found", "")
		return
	}

	destination, err := h.destinations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Destination not found", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get destination", err.Error())
		return
	}

	reviews, err := h.destinations.ListReviews(r.Context(), id)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list reviews", err.Error())
		return
	}

	detail := dto.DestinationDetailResponse{
		DestinationResponse: toDestinationResponse(*destination),
		Reviews:             make([]dto.ReviewResponse, 0, len(reviews)),
	}
	for _, rv := range reviews {
		detail.Reviews = append(detail.Reviews, dto.ReviewResponse{
			ID:            rv.ID.String(),
			DestinationID: rv.DestinationID.String(),
			UserID:        rv.UserID.String(),
			Text:          rv.Text,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DestinationDataResponse{Success: true, Data: detail})
}

// AddReview handles POST /destination/{id}/reviews
// @Summary Review a destination
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body dto.CreateReviewRequest true "Review text"
// @Success 201 {object} dto.DestinationDataResponse
// @Failure 404 {object} dto.ErrorResponse "Destination not found"
// @Router /destination/{id}/reviews [post]
func (h *DestinationsHandler) AddReview(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Destination not found", "")
		return
	}

	if _, err := h.destinations.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Destination not found", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get destination", err.Error())
		return
	}

	var req dto.CreateReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "text is required")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	review := models.Review{
		ID:            uuid.New(),
		DestinationID: id,
		UserID:        userID,
		Text:          req.Text,
		CreatedAt:     time.Now(),
	}

	if err := h.destinations.AddReview(r.Context(), &review); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to add review", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.DestinationDataResponse{
		Success: true,
		Data: dto.ReviewResponse{
			ID:            review.ID.String(),
			DestinationID: review.DestinationID.String(),
			UserID:        review.UserID.String(),
			Text:          review.Text,
		},
	})
}

func toDestinationResponse(d models.Destination) dto.DestinationResponse {
	return dto.DestinationResponse{
		ID:       d.ID.String(),
		Name:     d.Name,
		Location: d.Location,
		Price:    d.Price,
	}
}
