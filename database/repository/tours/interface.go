package tours

import (
	"context"

	"tourvia/models"
)

// SnapshotFunc receives the full tour set on every live-subscription delivery.
type SnapshotFunc func(tours []models.Tour)

// TourRepository defines read access to the tour collection.
type TourRepository interface {
	GetAll(ctx context.Context) ([]models.Tour, error)
	GetByID(ctx context.Context, id string) (*models.Tour, error)
	// Listen streams full collection snapshots until ctx is cancelled.
	Listen(ctx context.Context, onSnapshot SnapshotFunc) error
}
