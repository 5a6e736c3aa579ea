package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/insightboard/internal/shared"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const videosResponse = `{
  "items": [{
    "id": "dQw4w9WgXcQ",
    "snippet": {
      "title": "Never Gonna Give You Up",
      "channelTitle": "Rick Astley",
      "description": "The official video",
      "publishedAt": "2009-10-25T06:57:33Z",
      "thumbnails": {
        "default": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg"},
        "high": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}
      }
    },
    "statistics": {"viewCount": "1000", "likeCount": "25"},
    "contentDetails": {"duration": "PT1H2M3S"}
  }]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *DataAPIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := NewDataAPIProvider(context.Background(), "test-key", option.WithEndpoint(server.URL+"/"))
	if err != nil {
		t.Fatalf("NewDataAPIProvider() error = %v", err)
	}
	return provider
}

func TestDataAPIProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured without an API key", func(t *testing.T) {
		provider, err := NewDataAPIProvider(ctx, "")
		if err != nil {
			t.Fatalf("NewDataAPIProvider() error = %v", err)
		}
		if provider.Configured() {
			t.Error("expected provider without key to be unconfigured")
		}
		if _, err := provider.FetchRaw(ctx, "dQw4w9WgXcQ"); !errors.Is(err, shared.ErrNotConfigured) {
			t.Errorf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("FetchRaw maps the videos.list response", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET method, got %s", r.Method)
			}
			q := r.URL.Query()
			if q.Get("id") != "dQw4w9WgXcQ" {
				t.Errorf("expected id dQw4w9WgXcQ, got %s", q.Get("id"))
			}
			if q.Get("key") != "test-key" {
				t.Errorf("expected API key on request, got %q", q.Get("key"))
			}
			if parts := strings.Join(q["part"], ","); !strings.Contains(parts, "statistics") || !strings.Contains(parts, "contentDetails") {
				t.Errorf("expected statistics and contentDetails parts, got %s", parts)
			}

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, videosResponse)
		})

		if !provider.Configured() {
			t.Fatal("expected configured provider")
		}

		payload, err := provider.FetchRaw(ctx, "dQw4w9WgXcQ")
		if err != nil {
			t.Fatalf("FetchRaw() error = %v", err)
		}
		if len(payload.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(payload.Items))
		}

		item := payload.Items[0]
		if item.ChannelTitle != "Rick Astley" || item.Duration != "PT1H2M3S" {
			t.Errorf("unexpected item %+v", item)
		}
		if item.ViewCount != "1000" || item.LikeCount != "25" || item.CommentCount != "" {
			t.Errorf("unexpected counters %q/%q/%q", item.ViewCount, item.LikeCount, item.CommentCount)
		}
		if item.Thumbnails.Maxres != "" || item.Thumbnails.High == "" {
			t.Errorf("unexpected thumbnails %+v", item.Thumbnails)
		}
	})

	t.Run("normalizes end to end", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, videosResponse)
		})

		record, err := newTestNormalizer(provider).Fetch(ctx, "dQw4w9WgXcQ")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if record.Duration != "1:02:03" || record.Comments != 0 || record.Thumbnail != "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
			t.Errorf("unexpected record %+v", record)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"items": []}`)
		})

		_, err := newTestNormalizer(provider).Fetch(ctx, "dQw4w9WgXcQ")
		if !errors.Is(err, shared.ErrVideoNotFound) {
			t.Errorf("expected ErrVideoNotFound, got %v", err)
		}
	})

	t.Run("quota error response", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error": {"code": 403, "message": "quota", "errors": [{"reason": "quotaExceeded", "message": "The request cannot be completed because you have exceeded your quota."}]}}`)
		})

		_, err := provider.FetchRaw(ctx, "dQw4w9WgXcQ")
		if !errors.Is(err, shared.ErrQuotaExceeded) {
			t.Errorf("expected ErrQuotaExceeded, got %v", err)
		}
	})

	t.Run("server error is unknown", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": {"code": 400, "message": "bad", "errors": [{"reason": "badRequest", "message": "bad"}]}}`)
		})

		_, err := provider.FetchRaw(ctx, "dQw4w9WgXcQ")
		if !errors.Is(err, shared.ErrUnknown) {
			t.Errorf("expected ErrUnknown, got %v", err)
		}
	})
}

func TestClassifyAPIError(t *testing.T) {
	tt := []struct {
		name string
		err  error
		want error
	}{
		{name: "too many requests", err: &googleapi.Error{Code: http.StatusTooManyRequests}, want: shared.ErrQuotaExceeded},
		{name: "daily limit", err: &googleapi.Error{Code: http.StatusForbidden, Errors: []googleapi.ErrorItem{{Reason: "dailyLimitExceeded"}}}, want: shared.ErrQuotaExceeded},
		{name: "invalid key", err: &googleapi.Error{Code: http.StatusBadRequest, Errors: []googleapi.ErrorItem{{Reason: "keyInvalid"}}}, want: shared.ErrNotConfigured},
		{name: "video not found", err: &googleapi.Error{Code: http.StatusNotFound, Errors: []googleapi.ErrorItem{{Reason: "videoNotFound"}}}, want: shared.ErrVideoNotFound},
		{name: "plain error", err: errors.New("dial tcp: refused"), want: shared.ErrUnknown},
		{name: "wrapped api error", err: fmt.Errorf("call: %w", &googleapi.Error{Code: http.StatusTooManyRequests}), want: shared.ErrQuotaExceeded},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyAPIError(tc.err); !errors.Is(got, tc.want) {
				t.Errorf("classifyAPIError() = %v, want %v", got, tc.want)
			}
		})
	}
}
