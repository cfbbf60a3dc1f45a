package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking links a user to a destination with visit details. Date and
// time are stored as the caller sent them; the upstream API never
// normalized them and nothing downstream computes on them.
type Booking struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Fullname      string    `json:"fullname" db:"fullname"`
	Email         string    `json:"email" db:"email"`
	Date          string    `json:"date" db:"date"`
	Time          string    `json:"time" db:"time"`
	People        int       `json:"people" db:"people"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	DestinationID uuid.UUID `json:"destination_id" db:"destination_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
