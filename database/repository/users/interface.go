package users

import (
	"context"

	"tourvia/models"
)

// UserRepository defines persistence for user profile documents.
type UserRepository interface {
	Upsert(ctx context.Context, u *models.User) error
	GetByUID(ctx context.Context, uid string) (*models.User, error)
}
