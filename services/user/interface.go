package user

import (
	"context"
	"errors"

	"tourvia/database/repository/users"
	"tourvia/models"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned when the identity provider rejects an
// email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService wraps the identity provider: account creation, sign-in,
// sign-out and profile updates, plus the mirrored profile document.
type UserService interface {
	Register(ctx context.Context, email, password, displayName string) (*models.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*models.AuthSession, error)
	SignOut(ctx context.Context, uid string) error
	UpdateProfile(ctx context.Context, uid, displayName, photoURL string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
}

// AuthSessionRegistry records and revokes the active session per user.
// Satisfied by utils.AuthSessionCache.
type AuthSessionRegistry interface {
	Register(ctx context.Context, uid, tokenHash string) error
	Revoke(ctx context.Context, uid string) error
}

// DefaultUserService implements UserService against Firebase Auth.
type DefaultUserService struct {
	Repo     users.UserRepository
	Auth     *auth.Client
	Identity *IdentityClient
	Sessions AuthSessionRegistry
	Logger   *zap.Logger
}
