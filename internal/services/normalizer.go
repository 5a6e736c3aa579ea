package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/shared"
)

// Normalizer turns provider payloads into [models.VideoRecord] values.
type Normalizer struct {
	provider Provider
	logger   *log.Logger
}

// NewNormalizer creates a Normalizer over provider. A nil provider behaves as unconfigured.
func NewNormalizer(provider Provider, logger *log.Logger) *Normalizer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Normalizer{provider: provider, logger: shared.WithLogger(logger, "component", "normalizer")}
}

// Fetch looks up id and normalizes the first returned item.
//
// Failures wrap one of [shared.ErrInvalidVideoID], [shared.ErrNotConfigured],
// [shared.ErrVideoNotFound], [shared.ErrQuotaExceeded] or [shared.ErrUnknown].
func (n *Normalizer) Fetch(ctx context.Context, id string) (*models.VideoRecord, error) {
	if !IsVideoID(id) {
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidVideoID, id)
	}

	if n.provider == nil || !n.provider.Configured() {
		return nil, shared.ErrNotConfigured
	}

	payload, err := n.provider.FetchRaw(ctx, id)
	if err != nil {
		n.logger.Error("video lookup failed", "id", id, "error", err)
		return nil, lookupError(err)
	}

	if payload == nil || len(payload.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, id)
	}

	record := normalize(id, payload.Items[0])
	n.logger.Debug("video fetched", "id", id, "views", record.Views)
	return record, nil
}

// lookupError keeps known lookup sentinels and folds everything else into [shared.ErrUnknown].
func lookupError(err error) error {
	for _, known := range []error{shared.ErrNotConfigured, shared.ErrVideoNotFound, shared.ErrQuotaExceeded, shared.ErrUnknown} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", shared.ErrUnknown, err)
}

func normalize(id string, item PayloadItem) *models.VideoRecord {
	return &models.VideoRecord{
		ID:          id,
		Title:       item.Title,
		Channel:     item.ChannelTitle,
		Description: item.Description,
		Views:       parseCount(item.ViewCount),
		Likes:       parseCount(item.LikeCount),
		Comments:    parseCount(item.CommentCount),
		Duration:    FormatDuration(item.Duration),
		UploadDate:  uploadDate(item.PublishedAt),
		Thumbnail:   bestThumbnail(item.Thumbnails),
	}
}

// parseCount reads a decimal counter; absent or malformed values count as zero.
func parseCount(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// uploadDate returns the UTC calendar date of an RFC 3339 timestamp.
func uploadDate(publishedAt string) string {
	if t, err := time.Parse(time.RFC3339, publishedAt); err == nil {
		return t.UTC().Format(time.DateOnly)
	}
	if len(publishedAt) >= len(time.DateOnly) {
		return publishedAt[:len(time.DateOnly)]
	}
	return publishedAt
}

func bestThumbnail(t Thumbnails) string {
	for _, url := range []string{t.Maxres, t.High, t.Default} {
		if url != "" {
			return url
		}
	}
	return ""
}
