package dto

// BookingRequest is the payload for creating or updating a booking.
// Date and time are free-form strings, passed through as received.
type BookingRequest struct {
	Fullname string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	People   int    `json:"people"`
}

// BookingUserSummary is the slice of the owning user embedded in
// booking responses
type BookingUserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// BookingResponse represents a booking populated with its destination
// and user summaries
type BookingResponse struct {
	ID          string               `json:"id"`
	Fullname    string               `json:"fullname"`
	Email       string               `json:"email"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	People      int                  `json:"people"`
	User        *BookingUserSummary  `json:"user,omitempty"`
	Destination *DestinationResponse `json:"destination,omitempty"`
}

// BookingListResponse wraps the full ledger listing
type BookingListResponse struct {
	Success bool              `json:"success"`
	Data    []BookingResponse `json:"data"`
}
