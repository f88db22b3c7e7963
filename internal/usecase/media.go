package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"NewsPublisher/internal/domain"
	"NewsPublisher/internal/ports"
)

// MediaPublisher downloads a selected image once and uploads the bytes to
// the backend media library.
type MediaPublisher struct {
	fetcher ports.ImageSearcher
	cms     ports.CMS
	logger  *slog.Logger
}

// NewMediaPublisher wires the image fetcher and the backend.
func NewMediaPublisher(fetcher ports.ImageSearcher, cms ports.CMS, log *slog.Logger) *MediaPublisher {
	return &MediaPublisher{fetcher: fetcher, cms: cms, logger: log}
}

// Publish uploads one image and returns its media id. A failed image returns
// 0 and false: the image is simply unavailable for this run, never fatal.
func (m *MediaPublisher) Publish(ctx context.Context, img domain.ImageCandidate) (int, bool) {
	data, err := m.fetcher.Fetch(ctx, img.URL)
	if err != nil {
		m.warn("image download failed", "image_id", img.ID, "error", err)
		return 0, false
	}

	mediaID, err := m.cms.UploadMedia(ctx, fmt.Sprintf("pexels_%d.jpeg", img.ID), data)
	if err != nil {
		m.warn("media upload failed", "image_id", img.ID, "error", err)
		return 0, false
	}

	return mediaID, true
}

func (m *MediaPublisher) warn(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, args...)
	}
}
