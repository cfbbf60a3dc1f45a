package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"GOTRIP_BACK-END/internal/models"
)

// DestinationRepository is the Postgres-backed DestinationStore
type DestinationRepository struct {
	pool *pgxpool.Pool
}

// NewDestinationRepository creates a new DestinationRepository
func NewDestinationRepository(pool *pgxpool.Pool) *DestinationRepository {
	return &DestinationRepository{pool: pool}
}

// Create inserts a new destination
func (r *DestinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO destinations (id, name, location, price, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		destination.ID, destination.Name, destination.Location, destination.Price, destination.CreatedAt)
	return err
}

// List returns all destinations in insertion order
func (r *DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, location, price, created_at
		 FROM destinations ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var destinations []models.Destination
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Price, &d.CreatedAt); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

// GetByID returns the destination with the given id
func (r *DestinationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	var d models.Destination
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, location, price, created_at
		 FROM destinations WHERE id = $1`,
		id).Scan(&d.ID, &d.Name, &d.Location, &d.Price, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// AddReview attaches a review to a destination
func (r *DestinationRepository) AddReview(ctx context.Context, review *models.Review) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reviews (id, destination_id, user_id, text, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		review.ID, review.DestinationID, review.UserID, review.Text, review.CreatedAt)
	return err
}

// ListReviews returns all reviews on a destination in insertion order
func (r *DestinationRepository) ListReviews(ctx context.Context, destinationID uuid.UUID) ([]models.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, destination_id, user_id, text, created_at
		 FROM reviews WHERE destination_id = $1 ORDER BY created_at`,
		destinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.DestinationID, &rv.UserID, &rv.Text, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
