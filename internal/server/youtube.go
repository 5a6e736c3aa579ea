package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/services"
)

// VideoFetcher looks up normalized statistics for a canonical video ID.
//
// Implemented by [services.Normalizer].
type VideoFetcher interface {
	Fetch(ctx context.Context, id string) (*models.VideoRecord, error)
}

// YouTubeHandler serves the statistics proxy at GET /api/youtube.
type YouTubeHandler struct {
	fetcher VideoFetcher
	logger  *log.Logger
}

func NewYouTubeHandler(fetcher VideoFetcher, logger *log.Logger) *YouTubeHandler {
	return &YouTubeHandler{fetcher: fetcher, logger: logger}
}

func (h *YouTubeHandler) Routes() []Route {
	return []Route{{Method: http.MethodGet, Path: "/api/youtube", Handler: h.Get}}
}

// Get handles GET /api/youtube?videoId=<id>.
func (h *YouTubeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("videoId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "videoId parameter is required")
		return
	}

	if !services.IsVideoID(id) {
		writeError(w, http.StatusBadRequest, "Invalid video ID format")
		return
	}

	record, err := h.fetcher.Fetch(r.Context(), id)
	if err != nil {
		status, message := lookupFailure(err)
		h.logger.Warn("video lookup failed", "id", id, "status", status, "error", err)
		writeError(w, status, message)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// lookupFailure maps a fetch error to its response status and body message.
func lookupFailure(err error) (int, string) {
	switch services.ClassifyError(err) {
	case services.KindInvalidID:
		return http.StatusBadRequest, "Invalid video ID format"
	case services.KindNotFound:
		return http.StatusNotFound, "Video not found. Please check the video ID."
	case services.KindNotConfigured:
		return http.StatusInternalServerError, "YouTube API is not configured. Please set up your API key."
	case services.KindQuotaExceeded:
		return http.StatusTooManyRequests, "YouTube API quota exceeded. Please try again later."
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
