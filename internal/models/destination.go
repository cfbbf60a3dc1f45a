package models

import (
	"time"

	"github.com/google/uuid"
)

// Destination represents a bookable travel location
type Destination struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Price     string    `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Review is a free-text note a user leaves on a destination
type Review struct {
	ID            uuid.UUID `json:"id" db:"id"`
	DestinationID uuid.UUID `json:"destination_id" db:"destination_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Text          string    `json:"text" db:"text"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
