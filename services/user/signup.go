package user

import (
	"context"
	"fmt"
	"time"

	"tourvia/models"
	"tourvia/utils"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

const sessionTokenTTL = 72 * time.Hour

// Register creates an account with the identity provider, mirrors the
// profile document and returns a signed session.
func (s *DefaultUserService) Register(ctx context.Context, email, password, displayName string) (*models.AuthSession, error) {
	if email == "" || password == "" || displayName == "" {
		return nil, fmt.Errorf("email, password and display name are required")
	}

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := s.Auth.CreateUser(ctx, params)
	if err != nil {
		s.Logger.Error("Register: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	profile := models.User{
		UID:         record.UID,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Upsert(ctx, &profile); err != nil {
		s.Logger.Error("Register: failed to save profile document", zap.String("uid", record.UID), zap.Error(err))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	token, err := utils.GenerateToken(record.UID, email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := s.Sessions.Register(ctx, record.UID, utils.HashToken(token)); err != nil {
		s.Logger.Error("Register: failed to register session", zap.String("uid", record.UID), zap.Error(err))
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	return &models.AuthSession{Token: token, User: profile}, nil
}
