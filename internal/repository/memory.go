package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"GOTRIP_BACK-END/internal/models"
)

// In-memory store implementations. They back the handler tests and are
// handy for running the server without Postgres; the same uniqueness
// and not-found semantics the SQL schema enforces are replicated here.

// MemoryUserStore is an in-memory UserStore
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

// NewMemoryUserStore creates an empty MemoryUserStore
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicate
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return ErrNotFound
}

// MemoryDestinationStore is an in-memory DestinationStore
type MemoryDestinationStore struct {
	mu           sync.RWMutex
	destinations []models.Destination
	reviews      []models.Review
}

// NewMemoryDestinationStore creates an empty MemoryDestinationStore
func NewMemoryDestinationStore() *MemoryDestinationStore {
	return &MemoryDestinationStore{}
}

func (s *MemoryDestinationStore) Create(_ context.Context, destination *models.Destination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations = append(s.destinations, *destination)
	return nil
}

func (s *MemoryDestinationStore) List(_ context.Context) ([]models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out, nil
}

func (s *MemoryDestinationStore) GetByID(_ context.Context, id uuid.UUID) (*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.destinations {
		if d.ID == id {
			destination := d
			return &destination, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryDestinationStore) AddReview(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *MemoryDestinationStore) ListReviews(_ context.Context, destinationID uuid.UUID) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.DestinationID == destinationID {
			out = append(out, r)
		}
	}
	return out, nil
}

// MemoryBookingStore is an in-memory BookingStore
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingStore creates an empty MemoryBookingStore
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{}
}

func (s *MemoryBookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *MemoryBookingStore) List(_ context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemoryBookingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			booking := b
			return &booking, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryBookingStore) Update(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == booking.ID {
			s.bookings[i].Fullname = booking.Fullname
			s.bookings[i].Email = booking.Email
			s.bookings[i].Date = booking.Date
			s.bookings[i].Time = booking.Time
			s.bookings[i].People = booking.People
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryBookingStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
