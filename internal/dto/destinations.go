package dto

// CreateDestinationRequest represents the admin payload for a new destination
type CreateDestinationRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Price    string `json:"price"`
}

// DestinationResponse represents destination data in API responses
type DestinationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Price    string `json:"price"`
}

// DestinationDetailResponse is a destination with its reviews embedded
type DestinationDetailResponse struct {
	DestinationResponse
	Reviews []ReviewResponse `json:"reviews"`
}

// DestinationListResponse wraps the catalog listing
type DestinationListResponse struct {
	Success bool                  `json:"success"`
	Data    []DestinationResponse `json:"data"`
}

// DestinationDataResponse wraps a single destination payload
type DestinationDataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// CreateReviewRequest attaches a free-text review to a destination
type CreateReviewRequest struct {
	Text string `json:"text"`
}

// ReviewResponse represents review data in API responses
type ReviewResponse struct {
	ID            string `json:"id"`
	DestinationID string `json:"destination_id"`
	UserID        string `json:"user_id"`
	Text          string `json:"text"`
}
