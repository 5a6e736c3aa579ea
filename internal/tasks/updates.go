package tasks

import (
	"fmt"

	"github.com/desertthunder/insightboard/internal/models"
)

// ProgressUpdate represents a progress event during a batch analysis.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current input number (1-based)
	Total   int    // Total inputs in the batch
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ExtractID Phase = iota
	FetchVideo
	Summarize
)

func (p Phase) String() string {
	switch p {
	case ExtractID:
		return "extract_id"
	case FetchVideo:
		return "fetch_video"
	case Summarize:
		return "summarize"
	default:
		return ""
	}
}

func extractFailedUpdate(step, total int, input string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExtractID,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ not a video URL or ID: %s", step, total, input),
	}
}

func fetchingUpdate(step, total int, id string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchVideo,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetching %s...", step, total, id),
	}
}

func fetchedUpdate(step, total int, record *models.VideoRecord) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchVideo,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s", step, total, record.Title),
		Data:    record,
	}
}

func fetchFailedUpdate(step, total int, id string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchVideo,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, id, err),
	}
}

func summaryUpdate(summary Summary) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summarize,
		Step:    summary.Total,
		Total:   summary.Total,
		Message: fmt.Sprintf("Analyzed %d of %d videos", summary.Succeeded, summary.Total),
		Data:    summary,
	}
}
