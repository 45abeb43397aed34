package user

import (
	"context"
	"fmt"

	"tourvia/models"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// UpdateProfile updates display name and/or photo URL with the identity
// provider and refreshes the mirrored profile document.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, uid, displayName, photoURL string) (*models.User, error) {
	if displayName == "" && photoURL == "" {
		return nil, fmt.Errorf("nothing to update")
	}

	params := &auth.UserToUpdate{}
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	if photoURL != "" {
		params = params.PhotoURL(photoURL)
	}

	record, err := s.Auth.UpdateUser(ctx, uid, params)
	if err != nil {
		s.Logger.Error("UpdateProfile: failed to update identity", zap.String("uid", uid), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile := models.User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
	}
	if stored, err := s.Repo.GetByUID(ctx, uid); err == nil && stored != nil {
		profile.CreatedAt = stored.CreatedAt
	}
	if err := s.Repo.Upsert(ctx, &profile); err != nil {
		s.Logger.Error("UpdateProfile: failed to refresh profile document", zap.String("uid", uid), zap.Error(err))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &profile, nil
}
