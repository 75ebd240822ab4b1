package users

import (
	"context"
	"errors"
	"strings"

	"resumebuilder-backend/internal/assets"
)

// ErrInvalidInput flags profile updates that fail basic validation.
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	Repo   Repo
	Assets *assets.Service
}

func NewService(repo Repo, assetSvc *assets.Service) *Service {
	return &Service{Repo: repo, Assets: assetSvc}
}

// UpsertFromAuth persists the user identity from OAuth sign-in so resume
// ownership has a stable anchor.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	if user.Role == "" {
		user.Role = "user"
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// ProfileUpdate carries the editable profile fields. Empty values keep
// what is stored; Avatar takes a base64 data URI.
type ProfileUpdate struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UpdateProfile applies the update and returns the stored user. A new
// avatar replaces the previous one; the replaced object is removed after
// the record is saved, and a cleanup failure never fails the update.
func (s *Service) UpdateProfile(ctx context.Context, userID string, p ProfileUpdate) (User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Avatar) == "" {
		return User{}, ErrInvalidInput
	}

	if strings.TrimSpace(p.Name) != "" {
		user.Name = p.Name
	}

	var replacedKey string
	if strings.TrimSpace(p.Avatar) != "" {
		asset, err := s.Assets.UploadDataURI(ctx, userID, "avatar", p.Avatar)
		if err != nil {
			return User{}, err
		}
		replacedKey = user.AvatarKey
		user.AvatarURL = asset.URL
		user.AvatarKey = asset.Key
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	if replacedKey != "" {
		s.Assets.DeleteQuietly(ctx, replacedKey, map[string]any{"user_id": userID})
	}
	return user, nil
}

// Delete removes the account and its stored avatar. Asset cleanup is
// best-effort; the record deletion decides the outcome.
func (s *Service) Delete(ctx context.Context, userID string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}
	if user.AvatarKey != "" {
		s.Assets.DeleteQuietly(ctx, user.AvatarKey, map[string]any{"user_id": userID})
	}
	return nil
}
