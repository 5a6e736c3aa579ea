// Package server provides HTTP routing, middleware, and the handlers of the dashboard API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order so the first one added runs outermost.
// Middleware only applies to routes registered after [BasicRouter.Use], which is how
// [NewAPI] scopes the session middleware to the account and saved-video routes.
//
// The [BasicRouter] implementation uses gorilla/mux internally for method matching and
// path variables.
//
// # Handler Interface
//
// Handlers group related endpoints and describe them through [Handler.Routes]:
//   - [YouTubeHandler] : GET /api/youtube statistics proxy
//   - [AuthHandler] : signup, login, logout, me
//   - [VideosHandler] : the signed-in user's saved videos
//   - [DashboardHandler] : static metrics and activity feeds
//
// # Sessions
//
// [SessionMiddleware] reads an opaque key from a cookie, minting one when absent, and
// attaches the matching repositories.Session to the request context. Keys are not signed
// and never expire.
//
// # Errors
//
// Every error response is a JSON object with a single "error" field.
package server
