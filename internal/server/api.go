package server

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/repositories"
	"github.com/desertthunder/insightboard/internal/shared"
)

// APIOpts carries the dependencies of the dashboard API.
type APIOpts struct {
	Fetcher    VideoFetcher
	Users      *repositories.UserStore
	Videos     *repositories.VideoStore
	Sessions   repositories.KeyValue
	CookieName string
	Logger     *log.Logger
}

// NewAPI builds the router serving every dashboard endpoint.
func NewAPI(opts APIOpts) *BasicRouter {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	router := NewBasicRouter()
	router.Use(
		RecoverMiddleware(opts.Logger),
		LoggingMiddleware(opts.Logger),
	)

	router.Handle(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}))
	router.Handler(NewYouTubeHandler(opts.Fetcher, opts.Logger))
	router.Handler(NewDashboardHandler())

	router.Use(SessionMiddleware(opts.CookieName, opts.Sessions, opts.Logger))
	router.Handler(NewAuthHandler(opts.Users, opts.Logger))
	router.Handler(NewVideosHandler(opts.Videos))

	return router
}
