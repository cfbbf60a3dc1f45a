package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"GOTRIP_BACK-END/internal/models"
)

// BookingRepository is the Postgres-backed BookingStore
type BookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bookings (id, fullname, email, date, time, people, user_id, destination_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		booking.ID, booking.Fullname, booking.Email, booking.Date, booking.Time,
		booking.People, booking.UserID, booking.DestinationID, booking.CreatedAt)
	return err
}

// List returns every booking in insertion order
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, fullname, email, date, time, people, user_id, destination_id, created_at
		 FROM bookings ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Fullname, &b.Email, &b.Date, &b.Time,
			&b.People, &b.UserID, &b.DestinationID, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetByID returns the booking with the given id
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	err := r.pool.QueryRow(ctx,
		`SELECT id, fullname, email, date, time, people, user_id, destination_id, created_at
		 FROM bookings WHERE id = $1`,
		id).Scan(&b.ID, &b.Fullname, &b.Email, &b.Date, &b.Time,
		&b.People, &b.UserID, &b.DestinationID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Update replaces the mutable fields of a booking
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET fullname = $1, email = $2, date = $3, time = $4, people = $5
		 WHERE id = $6`,
		booking.Fullname, booking.Email, booking.Date, booking.Time, booking.People, booking.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a booking
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
