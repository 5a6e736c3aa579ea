// package tasks implements batch video analysis.
package tasks

import (
	"context"
	"fmt"
	"math"

	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/services"
	"github.com/desertthunder/insightboard/internal/shared"
)

// VideoFetcher fetches normalized statistics for a canonical video ID.
//
// Implemented by [services.Normalizer].
type VideoFetcher interface {
	Fetch(ctx context.Context, id string) (*models.VideoRecord, error)
}

// InputResult is the outcome of analyzing a single input.
type InputResult struct {
	Input  string              // Raw input as given
	ID     string              // Extracted video ID (empty if extraction failed)
	Record *models.VideoRecord // Fetched record (nil on failure)
	Error  error               // Error if extraction or lookup failed
}

// Summary aggregates the successful lookups of a batch.
type Summary struct {
	Total         int     `json:"total"`
	Succeeded     int     `json:"succeeded"`
	Failed        int     `json:"failed"`
	TotalViews    uint64  `json:"totalViews"`
	TotalSeconds  int     `json:"totalSeconds"`
	TotalDuration string  `json:"totalDuration"`
	MeanLikeRate  float64 `json:"meanLikeRate"`
}

// AnalyzeResult contains every per-input result, in input order, and the batch summary.
type AnalyzeResult struct {
	Results []InputResult
	Summary Summary
}

// Records returns the successfully fetched records in input order.
func (r *AnalyzeResult) Records() []models.VideoRecord {
	records := make([]models.VideoRecord, 0, r.Summary.Succeeded)
	for _, res := range r.Results {
		if res.Record != nil {
			records = append(records, *res.Record)
		}
	}
	return records
}

// Analyzer runs batched lookups over a [VideoFetcher].
type Analyzer struct {
	fetcher VideoFetcher
}

// NewAnalyzer creates an Analyzer over fetcher.
func NewAnalyzer(fetcher VideoFetcher) *Analyzer {
	return &Analyzer{fetcher: fetcher}
}

// sendProgress sends a progress update through the channel without blocking.
func (a *Analyzer) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Analyze extracts and fetches each input in order.
//
// Per-input failures are recorded on the result; only a cancelled context or an
// empty input list fails the whole call.
func (a *Analyzer) Analyze(ctx context.Context, progress chan<- ProgressUpdate, inputs []string) (*AnalyzeResult, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one video URL or ID", shared.ErrMissingArgument)
	}

	total := len(inputs)
	result := &AnalyzeResult{Results: make([]InputResult, 0, total)}

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		step := i + 1
		res := InputResult{Input: input}

		id, ok := services.ExtractVideoID(input)
		if !ok {
			res.Error = fmt.Errorf("%w: %q", shared.ErrInvalidVideoID, input)
			a.sendProgress(progress, extractFailedUpdate(step, total, input))
			result.Results = append(result.Results, res)
			continue
		}
		res.ID = id

		a.sendProgress(progress, fetchingUpdate(step, total, id))
		record, err := a.fetcher.Fetch(ctx, id)
		if err != nil {
			res.Error = err
			a.sendProgress(progress, fetchFailedUpdate(step, total, id, err))
		} else {
			res.Record = record
			a.sendProgress(progress, fetchedUpdate(step, total, record))
		}
		result.Results = append(result.Results, res)
	}

	result.Summary = summarize(result.Results)
	a.sendProgress(progress, summaryUpdate(result.Summary))
	return result, nil
}

func summarize(results []InputResult) Summary {
	summary := Summary{Total: len(results)}
	var likeRates float64

	for _, res := range results {
		if res.Record == nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.TotalViews += res.Record.Views
		summary.TotalSeconds += services.ClockSeconds(res.Record.Duration)
		likeRates += res.Record.Engagement().LikeRate
	}

	if summary.Succeeded > 0 {
		summary.MeanLikeRate = math.Round(likeRates/float64(summary.Succeeded)*100) / 100
	}
	summary.TotalDuration = clock(summary.TotalSeconds)
	return summary
}

// clock renders seconds in the same shape FormatDuration produces.
func clock(seconds int) string {
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
