package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"resumebuilder-backend/internal/shared/storage/object"
	"resumebuilder-backend/internal/shared/telemetry"
)

// ErrInvalidDataURI is returned for payloads that are not base64 data URIs.
var ErrInvalidDataURI = errors.New("invalid base64 data URI")

// Asset is a stored image and the persistent URL clients must use in place
// of any local/blob reference.
type Asset struct {
	Key      string
	URL      string
	MimeType string
	Size     int64
}

// Service stores base64-encoded images in the object store and hands back
// persistent URLs. It stands in for the hosted image CDN of the original
// deployment.
type Service struct {
	Store   object.ObjectStore
	BaseURL string
}

// NewService constructs an asset service serving URLs under baseURL.
func NewService(store object.ObjectStore, baseURL string) *Service {
	return &Service{Store: store, BaseURL: strings.TrimRight(baseURL, "/")}
}

// UploadDataURI decodes a `data:<mime>;base64,<payload>` URI and persists it
// under the user's namespace. Upload failures abort the caller's operation.
func (s *Service) UploadDataURI(ctx context.Context, userID, fileName, dataURI string) (Asset, error) {
	mimeType, payload, err := splitDataURI(dataURI)
	if err != nil {
		return Asset{}, err
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	name := fileName + extensionFor(mimeType)
	key, size, detected, err := s.Store.Save(ctx, userID, name, bytes.NewReader(raw))
	if err != nil {
		return Asset{}, fmt.Errorf("store asset: %w", err)
	}
	if detected != "" {
		mimeType = detected
	}

	return Asset{
		Key:      key,
		URL:      s.URLFor(key),
		MimeType: mimeType,
		Size:     size,
	}, nil
}

// Open streams a stored asset for serving.
func (s *Service) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.Store.Open(ctx, key)
}

// Delete removes a stored asset.
func (s *Service) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	return s.Store.Delete(ctx, key)
}

// DeleteQuietly removes a replaced or orphaned asset; failure is logged and
// swallowed so cleanup never blocks the primary operation.
func (s *Service) DeleteQuietly(ctx context.Context, key string, fields map[string]any) {
	if err := s.Delete(ctx, key); err != nil {
		if fields == nil {
			fields = map[string]any{}
		}
		fields["asset_key"] = key
		fields["error"] = err.Error()
		telemetry.Warn("asset.cleanup_failed", fields)
	}
}

// URLFor maps a storage key to its public URL.
func (s *Service) URLFor(key string) string {
	if key == "" {
		return ""
	}
	return s.BaseURL + "/" + strings.TrimLeft(key, "/")
}

func splitDataURI(dataURI string) (mimeType, payload string, err error) {
	trimmed := strings.TrimSpace(dataURI)
	if !strings.HasPrefix(trimmed, "data:") {
		return "", "", ErrInvalidDataURI
	}
	meta, rest, ok := strings.Cut(trimmed[len("data:"):], ",")
	if !ok || rest == "" {
		return "", "", ErrInvalidDataURI
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", "", ErrInvalidDataURI
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return mimeType, rest, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
