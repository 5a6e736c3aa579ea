package services

import (
	"errors"

	"github.com/desertthunder/insightboard/internal/shared"
)

// ErrorKind classifies a failed lookup for message and status selection.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidID
	KindNotConfigured
	KindNotFound
	KindQuotaExceeded
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidID:
		return "invalid_id"
	case KindNotConfigured:
		return "not_configured"
	case KindNotFound:
		return "not_found"
	case KindQuotaExceeded:
		return "quota_exceeded"
	default:
		return "unknown"
	}
}

// ClassifyError returns the [ErrorKind] of err. A nil error is [KindNone].
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, shared.ErrInvalidVideoID):
		return KindInvalidID
	case errors.Is(err, shared.ErrNotConfigured):
		return KindNotConfigured
	case errors.Is(err, shared.ErrVideoNotFound):
		return KindNotFound
	case errors.Is(err, shared.ErrQuotaExceeded):
		return KindQuotaExceeded
	default:
		return KindUnknown
	}
}

// UserMessage returns the message shown to a person for err; unknown failures show the raw text.
func UserMessage(err error) string {
	switch ClassifyError(err) {
	case KindNone:
		return ""
	case KindInvalidID:
		return "Invalid YouTube URL or video ID. Please check and try again."
	case KindNotConfigured:
		return "YouTube API is not configured. Please check the setup guide."
	case KindNotFound:
		return "Video not found. Please check the video ID or URL."
	case KindQuotaExceeded:
		return "API quota exceeded. Please try again later."
	default:
		return err.Error()
	}
}
