package users

import (
	"context"
	"fmt"

	"tourvia/database"
	"tourvia/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const userCollection = "users"

// FirestoreUserRepo implements UserRepository backed by Firestore.
// Profile documents are keyed by the identity provider's uid.
type FirestoreUserRepo struct {
	client *firestore.Client
}

// NewFirestoreUserRepo creates a UserRepository using the global Firestore client.
func NewFirestoreUserRepo() *FirestoreUserRepo {
	return &FirestoreUserRepo{client: database.GetFirestoreClient()}
}

func (r *FirestoreUserRepo) Upsert(ctx context.Context, u *models.User) error {
	_, err := r.client.Collection(userCollection).Doc(u.UID).Set(ctx, u)
	if err != nil {
		return fmt.Errorf("FirestoreUserRepo: failed to upsert user %s: %w", u.UID, err)
	}
	return nil
}

func (r *FirestoreUserRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	doc, err := r.client.Collection(userCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("FirestoreUserRepo: failed to fetch user %s: %w", uid, err)
	}
	var u models.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("FirestoreUserRepo: failed to decode user %s: %w", uid, err)
	}
	u.UID = doc.Ref.ID
	return &u, nil
}
