package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Video lookup errors
	ErrInvalidVideoID = fmt.Errorf("invalid video ID")
	ErrNotConfigured  = fmt.Errorf("YouTube API key not configured")
	ErrVideoNotFound  = fmt.Errorf("video not found")
	ErrQuotaExceeded  = fmt.Errorf("YouTube API quota exceeded")
	ErrUnknown        = fmt.Errorf("failed to fetch video statistics")

	// Account errors
	ErrEmailTaken         = fmt.Errorf("email already registered")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")

	// Persistence errors
	ErrStorage  = fmt.Errorf("storage failure")
	ErrNotFound = fmt.Errorf("not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	ErrServiceUnavailable = fmt.Errorf("service unavailable")
)
