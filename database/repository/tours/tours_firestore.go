package tours

import (
	"context"
	"fmt"

	"tourvia/database"
	"tourvia/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tourCollection = "tourCards"

// FirestoreTourRepo implements TourRepository backed by Firestore.
type FirestoreTourRepo struct {
	client *firestore.Client
}

// NewFirestoreTourRepo creates a TourRepository using the global Firestore client.
func NewFirestoreTourRepo() *FirestoreTourRepo {
	return &FirestoreTourRepo{client: database.GetFirestoreClient()}
}

func (r *FirestoreTourRepo) GetAll(ctx context.Context) ([]models.Tour, error) {
	it := r.client.Collection(tourCollection).Documents(ctx)
	defer it.Stop()

	var tours []models.Tour
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("FirestoreTourRepo: failed to fetch tours: %w", err)
		}
		t, err := docToTour(doc)
		if err != nil {
			return nil, err
		}
		tours = append(tours, *t)
	}
	return tours, nil
}

func (r *FirestoreTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	doc, err := r.client.Collection(tourCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("FirestoreTourRepo: failed to fetch tour %s: %w", id, err)
	}
	return docToTour(doc)
}

// Listen delivers the full tour set on every snapshot until ctx is cancelled.
func (r *FirestoreTourRepo) Listen(ctx context.Context, onSnapshot SnapshotFunc) error {
	it := r.client.Collection(tourCollection).Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return nil
			}
			return fmt.Errorf("FirestoreTourRepo: snapshot stream failed: %w", err)
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			return fmt.Errorf("FirestoreTourRepo: failed to read snapshot documents: %w", err)
		}

		tours := make([]models.Tour, 0, len(docs))
		for _, doc := range docs {
			t, err := docToTour(doc)
			if err != nil {
				return err
			}
			tours = append(tours, *t)
		}
		onSnapshot(tours)
	}
}

func docToTour(doc *firestore.DocumentSnapshot) (*models.Tour, error) {
	var t models.Tour
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("FirestoreTourRepo: failed to decode tour %s: %w", doc.Ref.ID, err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}
