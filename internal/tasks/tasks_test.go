package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/shared"
)

type mockFetcher struct {
	records map[string]*models.VideoRecord
	errs    map[string]error
	calls   []string
}

func (m *mockFetcher) Fetch(ctx context.Context, id string) (*models.VideoRecord, error) {
	m.calls = append(m.calls, id)
	if err, ok := m.errs[id]; ok {
		return nil, err
	}
	if record, ok := m.records[id]; ok {
		return record, nil
	}
	return nil, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, id)
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{
		records: map[string]*models.VideoRecord{
			"dQw4w9WgXcQ": {ID: "dQw4w9WgXcQ", Title: "First", Views: 1000, Likes: 50, Duration: "3:33"},
			"abc123XYZ_-": {ID: "abc123XYZ_-", Title: "Second", Views: 200, Likes: 2, Duration: "1:00:00"},
		},
		errs: map[string]error{
			"quotaQuota1": fmt.Errorf("%w: daily limit", shared.ErrQuotaExceeded),
		},
	}
}

func drain(progress chan ProgressUpdate) []ProgressUpdate {
	close(progress)
	var updates []ProgressUpdate
	for u := range progress {
		updates = append(updates, u)
	}
	return updates
}

func TestAnalyzer(t *testing.T) {
	t.Run("Analyze fetches every input in order", func(t *testing.T) {
		fetcher := newMockFetcher()
		analyzer := NewAnalyzer(fetcher)
		progress := make(chan ProgressUpdate, 32)

		result, err := analyzer.Analyze(context.Background(), progress, []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/abc123XYZ_-?t=5",
		})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}

		if len(result.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(result.Results))
		}
		if got := strings.Join(fetcher.calls, ","); got != "dQw4w9WgXcQ,abc123XYZ_-" {
			t.Errorf("unexpected fetch order: %s", got)
		}

		s := result.Summary
		if s.Succeeded != 2 || s.Failed != 0 || s.Total != 2 {
			t.Errorf("unexpected counts: %+v", s)
		}
		if s.TotalViews != 1200 {
			t.Errorf("expected 1200 total views, got %d", s.TotalViews)
		}
		if s.TotalSeconds != 3813 {
			t.Errorf("expected 3813 seconds, got %d", s.TotalSeconds)
		}
		if s.TotalDuration != "1:03:33" {
			t.Errorf("expected 1:03:33, got %s", s.TotalDuration)
		}
		if s.MeanLikeRate != 3 {
			t.Errorf("expected mean like rate 3, got %v", s.MeanLikeRate)
		}

		updates := drain(progress)
		last := updates[len(updates)-1]
		if last.Phase != Summarize {
			t.Errorf("expected final update to be %s, got %s", Summarize, last.Phase)
		}
	})

	t.Run("failures are recorded per input", func(t *testing.T) {
		fetcher := newMockFetcher()
		analyzer := NewAnalyzer(fetcher)

		result, err := analyzer.Analyze(context.Background(), nil, []string{
			"not a video",
			"quotaQuota1",
			"missingVid0",
			"dQw4w9WgXcQ",
		})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}

		tests := []struct {
			idx  int
			want error
		}{
			{0, shared.ErrInvalidVideoID},
			{1, shared.ErrQuotaExceeded},
			{2, shared.ErrVideoNotFound},
		}
		for _, tt := range tests {
			if !errors.Is(result.Results[tt.idx].Error, tt.want) {
				t.Errorf("result %d: expected %v, got %v", tt.idx, tt.want, result.Results[tt.idx].Error)
			}
		}

		if result.Results[0].ID != "" {
			t.Errorf("expected no ID for unextractable input, got %s", result.Results[0].ID)
		}
		if len(fetcher.calls) != 3 {
			t.Errorf("expected unextractable input to skip fetch, got %d calls", len(fetcher.calls))
		}
		if result.Summary.Succeeded != 1 || result.Summary.Failed != 3 {
			t.Errorf("unexpected counts: %+v", result.Summary)
		}
		if records := result.Records(); len(records) != 1 || records[0].ID != "dQw4w9WgXcQ" {
			t.Errorf("unexpected records: %+v", records)
		}
	})

	t.Run("empty input list", func(t *testing.T) {
		_, err := NewAnalyzer(newMockFetcher()).Analyze(context.Background(), nil, nil)
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewAnalyzer(newMockFetcher()).Analyze(ctx, nil, []string{"dQw4w9WgXcQ"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("full progress channel does not block", func(t *testing.T) {
		progress := make(chan ProgressUpdate)
		result, err := NewAnalyzer(newMockFetcher()).Analyze(context.Background(), progress, []string{"dQw4w9WgXcQ"})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if result.Summary.Succeeded != 1 {
			t.Errorf("expected 1 success, got %d", result.Summary.Succeeded)
		}
	})

	t.Run("summary of all failures", func(t *testing.T) {
		result, err := NewAnalyzer(newMockFetcher()).Analyze(context.Background(), nil, []string{"missingVid0"})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if result.Summary.MeanLikeRate != 0 || result.Summary.TotalDuration != "0:00" {
			t.Errorf("unexpected empty summary: %+v", result.Summary)
		}
	})
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		ExtractID:  "extract_id",
		FetchVideo: "fetch_video",
		Summarize:  "summarize",
		Phase(99):  "",
	}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
