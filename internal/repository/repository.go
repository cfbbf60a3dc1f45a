package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"GOTRIP_BACK-END/internal/models"
)

// Sentinel errors handlers translate into HTTP statuses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserStore persists user accounts and enforces username/email uniqueness
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// DestinationStore persists destinations and their reviews
type DestinationStore interface {
	Create(ctx context.Context, destination *models.Destination) error
	List(ctx context.Context) ([]models.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error)
	AddReview(ctx context.Context, review *models.Review) error
	ListReviews(ctx context.Context, destinationID uuid.UUID) ([]models.Review, error)
}

// BookingStore persists bookings
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}
