package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumebuilder-backend/internal/assets"
)

// Service contains business logic for resumes: CRUD, ownership checks, and
// image handling through the asset store.
type Service struct {
	Repo   Repo
	Assets *assets.Service

	// OnDelete, when set, runs after a resume is removed so collaborators
	// holding per-resume state (the wizard session map) can discard it.
	OnDelete func(userID, resumeID string)
}

// NewService constructs a resume Service.
func NewService(repo Repo, assetSvc *assets.Service) *Service {
	return &Service{Repo: repo, Assets: assetSvc}
}

// Create builds the default blank resume for the caller. An optional base64
// profile image is uploaded first; upload failure aborts the create.
func (s *Service) Create(ctx context.Context, userID string, p CreatePayload) (ResumeData, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return ResumeData{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	data := NewDefault(title)
	data.ID = uuid.NewString()
	data.UserID = userID
	now := time.Now().UTC()
	data.CreatedAt = now
	data.UpdatedAt = now

	if p.ProfileImage != "" {
		asset, err := s.Assets.UploadDataURI(ctx, userID, "profile", p.ProfileImage)
		if err != nil {
			return ResumeData{}, fmt.Errorf("image upload failed: %w", err)
		}
		data.ProfileInfo.ProfilePreviewURL = asset.URL
		data.ProfileImgKey = asset.Key
	}

	if err := s.Repo.Create(ctx, data); err != nil {
		if data.ProfileImgKey != "" {
			s.Assets.DeleteQuietly(ctx, data.ProfileImgKey, map[string]any{"resume_id": data.ID})
		}
		return ResumeData{}, err
	}
	return data, nil
}

// List returns the caller's resumes, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]ResumeData, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get fetches one resume and enforces ownership.
func (s *Service) Get(ctx context.Context, userID, id string) (ResumeData, error) {
	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return ResumeData{}, err
	}
	if resume.UserID != userID {
		return ResumeData{}, ErrForbidden
	}
	return resume, nil
}

// Update applies a full-section replace on top of the stored resume.
// Sections absent from the payload keep their stored values.
func (s *Service) Update(ctx context.Context, userID, id string, p UpdatePayload) (ResumeData, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return ResumeData{}, err
	}

	next := merged(existing, p)
	if err := s.Repo.Update(ctx, next); err != nil {
		return ResumeData{}, err
	}
	return s.Get(ctx, userID, id)
}

// ImageURLs is the result of an image upload: the persistent URLs that must
// replace any local/blob references before the next full save.
type ImageURLs struct {
	ProfilePreviewURL string
	ThumbnailLink     string
}

// UpdateImages uploads the provided base64 images, replaces prior assets,
// and persists the new URLs on the resume. Upload failure aborts with no
// mutation; deleting the replaced asset is best-effort.
func (s *Service) UpdateImages(ctx context.Context, userID, id string, p ImagePayload) (ImageURLs, error) {
	resume, err := s.Get(ctx, userID, id)
	if err != nil {
		return ImageURLs{}, err
	}
	if p.ProfileImage == "" && p.Thumbnail == "" {
		return ImageURLs{}, fmt.Errorf("%w: no image provided", ErrInvalidInput)
	}

	var replaced []string

	if p.ProfileImage != "" {
		asset, err := s.Assets.UploadDataURI(ctx, userID, "profile", p.ProfileImage)
		if err != nil {
			return ImageURLs{}, fmt.Errorf("image upload failed: %w", err)
		}
		if resume.ProfileImgKey != "" {
			replaced = append(replaced, resume.ProfileImgKey)
		}
		resume.ProfileInfo.ProfilePreviewURL = asset.URL
		resume.ProfileImgKey = asset.Key
	}

	if p.Thumbnail != "" {
		asset, err := s.Assets.UploadDataURI(ctx, userID, "thumbnail", p.Thumbnail)
		if err != nil {
			return ImageURLs{}, fmt.Errorf("image upload failed: %w", err)
		}
		if resume.ThumbnailKey != "" {
			replaced = append(replaced, resume.ThumbnailKey)
		}
		resume.ThumbnailLink = asset.URL
		resume.ThumbnailKey = asset.Key
	}

	if err := s.Repo.Update(ctx, resume); err != nil {
		return ImageURLs{}, err
	}

	for _, key := range replaced {
		s.Assets.DeleteQuietly(ctx, key, map[string]any{"resume_id": id})
	}

	return ImageURLs{
		ProfilePreviewURL: resume.ProfileInfo.ProfilePreviewURL,
		ThumbnailLink:     resume.ThumbnailLink,
	}, nil
}

// Delete removes the resume and its stored images. Asset cleanup failures
// are logged and swallowed; the delete still succeeds.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	resume, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	if resume.ThumbnailKey != "" {
		s.Assets.DeleteQuietly(ctx, resume.ThumbnailKey, map[string]any{"resume_id": id})
	}
	if resume.ProfileImgKey != "" {
		s.Assets.DeleteQuietly(ctx, resume.ProfileImgKey, map[string]any{"resume_id": id})
	}
	if s.OnDelete != nil {
		s.OnDelete(userID, id)
	}
	return nil
}
