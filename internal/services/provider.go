package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/desertthunder/insightboard/internal/shared"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// videoParts are the resource parts requested for every lookup.
var videoParts = []string{"snippet", "statistics", "contentDetails"}

// Provider is the upstream video-statistics dependency.
type Provider interface {
	// Configured reports whether a credential is available. [Normalizer.Fetch] fails with
	// [shared.ErrNotConfigured] without calling FetchRaw when it is not.
	Configured() bool

	// FetchRaw issues a single lookup for id.
	FetchRaw(ctx context.Context, id string) (*ProviderPayload, error)
}

// ProviderPayload mirrors the subset of a videos.list response the normalizer reads.
type ProviderPayload struct {
	Items []PayloadItem
}

// PayloadItem is one video resource. Counter fields are decimal strings, empty when the
// uploader has hidden the statistic.
type PayloadItem struct {
	ID           string
	Title        string
	ChannelTitle string
	Description  string
	PublishedAt  string
	Thumbnails   Thumbnails
	Duration     string
	ViewCount    string
	LikeCount    string
	CommentCount string
}

// Thumbnails holds thumbnail URLs by resolution; empty means absent.
type Thumbnails struct {
	Default string
	High    string
	Maxres  string
}

// DataAPIProvider implements [Provider] with the YouTube Data API v3.
type DataAPIProvider struct {
	service *youtube.Service
}

// NewDataAPIProvider creates a provider authenticated with apiKey.
//
// An empty apiKey produces an unconfigured provider rather than an error so the
// server can start and report the missing credential per request.
func NewDataAPIProvider(ctx context.Context, apiKey string, opts ...option.ClientOption) (*DataAPIProvider, error) {
	if apiKey == "" {
		return &DataAPIProvider{}, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &DataAPIProvider{service: service}, nil
}

// Configured reports whether the provider was created with an API key.
func (p *DataAPIProvider) Configured() bool {
	return p != nil && p.service != nil
}

// FetchRaw calls videos.list for id with the snippet, statistics and contentDetails parts.
func (p *DataAPIProvider) FetchRaw(ctx context.Context, id string) (*ProviderPayload, error) {
	if !p.Configured() {
		return nil, shared.ErrNotConfigured
	}

	resp, err := p.service.Videos.List(videoParts).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	payload := &ProviderPayload{Items: make([]PayloadItem, 0, len(resp.Items))}
	for _, v := range resp.Items {
		payload.Items = append(payload.Items, payloadItem(v))
	}

	return payload, nil
}

func payloadItem(v *youtube.Video) PayloadItem {
	item := PayloadItem{ID: v.Id}

	if s := v.Snippet; s != nil {
		item.Title = s.Title
		item.ChannelTitle = s.ChannelTitle
		item.Description = s.Description
		item.PublishedAt = s.PublishedAt

		if t := s.Thumbnails; t != nil {
			item.Thumbnails = Thumbnails{
				Default: thumbnailURL(t.Default),
				High:    thumbnailURL(t.High),
				Maxres:  thumbnailURL(t.Maxres),
			}
		}
	}

	if cd := v.ContentDetails; cd != nil {
		item.Duration = cd.Duration
	}

	// The client decodes counters as uint64 with omitempty, so a hidden statistic and a
	// zero both arrive as 0.
	if st := v.Statistics; st != nil {
		item.ViewCount = counter(st.ViewCount)
		item.LikeCount = counter(st.LikeCount)
		item.CommentCount = counter(st.CommentCount)
	}

	return item
}

func thumbnailURL(t *youtube.Thumbnail) string {
	if t == nil {
		return ""
	}
	return t.Url
}

func counter(n uint64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatUint(n, 10)
}

// classifyAPIError maps a Data API failure onto the lookup sentinels.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", shared.ErrUnknown, err)
	}

	if apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", shared.ErrQuotaExceeded, apiErr.Message)
	}

	for _, item := range apiErr.Errors {
		switch item.Reason {
		case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded":
			return fmt.Errorf("%w: %s", shared.ErrQuotaExceeded, item.Message)
		case "keyInvalid":
			return fmt.Errorf("%w: %s", shared.ErrNotConfigured, item.Message)
		case "videoNotFound", "notFound":
			return fmt.Errorf("%w: %s", shared.ErrVideoNotFound, item.Message)
		}
	}

	return fmt.Errorf("%w: %v", shared.ErrUnknown, apiErr)
}
