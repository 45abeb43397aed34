package bookings

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

const bookingCollection = "bookings"

// FirestoreBookingRepo implements BookingRepository backed by Firestore.
type FirestoreBookingRepo struct {
	client *firestore.Client
}

// NewFirestoreBookingRepo creates a BookingRepository using the global Firestore client.
func NewFirestoreBookingRepo() *FirestoreBookingRepo {
	return &FirestoreBookingRepo{client: database.GetFirestoreClient()}
}

func (r *FirestoreBookingRepo) Create(ctx context.Context, b *models.Booking) (string, error) {
	ref, _, err := r.client.Collection(bookingCollection).Add(ctx, b)
	if err != nil {
		return "", fmt.Errorf("FirestoreBookingRepo: failed to create booking: %w", err)
	}
	b.ID = ref.ID
	return ref.ID, nil
}

func (r *FirestoreBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	doc, err := r.client.Collection(bookingCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("FirestoreBookingRepo: failed to fetch booking %s: %w", id, err)
	}
	var b models.Booking
	if err := doc.DataTo(&b); err != nil {
		return nil, fmt.Errorf("FirestoreBookingRepo: failed to decode booking %s: %w", id, err)
	}
	b.ID = doc.Ref.ID
	return &b, nil
}

func (r *FirestoreBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	it := r.client.Collection(bookingCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	var result []models.Booking
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("FirestoreBookingRepo: failed to fetch bookings for user %s: %w", userID, err)
		}
		var b models.Booking
		if err := doc.DataTo(&b); err != nil {
			return nil, fmt.Errorf("FirestoreBookingRepo: failed to decode booking %s: %w", doc.Ref.ID, err)
		}
		b.ID = doc.Ref.ID
		result = append(result, b)
	}
	return result, nil
}

func (r *FirestoreBookingRepo) UpdateStatus(ctx context.Context, id string, bs models.BookingStatus) error {
	_, err := r.client.Collection(bookingCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: bs},
	})
	if err != nil {
		return fmt.Errorf("FirestoreBookingRepo: failed to update booking %s: %w", id, err)
	}
	return nil
}

func (r *FirestoreBookingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(bookingCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("FirestoreBookingRepo: failed to delete booking %s: %w", id, err)
	}
	return nil
}
