package bookings

import (
	"context"

	"tourvia/models"
)

// BookingRepository defines persistence for booking records.
type BookingRepository interface {
	// Create persists a new booking and returns the store-assigned ID.
	Create(ctx context.Context, b *models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	Delete(ctx context.Context, id string) error
}
