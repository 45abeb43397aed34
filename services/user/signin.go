package user

import (
	"context"
	"errors"
	"fmt"

	"tourvia/models"
	"tourvia/utils"

	"go.uber.org/zap"
)

// SignIn verifies credentials with the identity provider and returns a
// signed session with the current profile.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*models.AuthSession, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	result, err := s.Identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, err
		}
		s.Logger.Error("SignIn: identity provider call failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	record, err := s.Auth.GetUser(ctx, result.LocalID)
	if err != nil {
		s.Logger.Error("SignIn: failed to load user record", zap.String("uid", result.LocalID), zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	profile := models.User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
	}
	if stored, err := s.Repo.GetByUID(ctx, record.UID); err == nil && stored != nil {
		profile.CreatedAt = stored.CreatedAt
	}

	token, err := utils.GenerateToken(record.UID, record.Email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := s.Sessions.Register(ctx, record.UID, utils.HashToken(token)); err != nil {
		s.Logger.Error("SignIn: failed to register session", zap.String("uid", record.UID), zap.Error(err))
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	return &models.AuthSession{Token: token, User: profile}, nil
}

// SignOut revokes the caller's active session; the token stops working on
// the next request.
func (s *DefaultUserService) SignOut(ctx context.Context, uid string) error {
	if err := s.Sessions.Revoke(ctx, uid); err != nil {
		s.Logger.Error("SignOut: failed to revoke session", zap.String("uid", uid), zap.Error(err))
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// GetByUID returns the mirrored profile document.
func (s *DefaultUserService) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return s.Repo.GetByUID(ctx, uid)
}
