package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/repositories"
	"github.com/desertthunder/insightboard/internal/shared"
)

type sessionCtxKey struct{}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs method, path, status and duration of every request.
func LoggingMiddleware(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
		})
	}
}

// RecoverMiddleware turns a handler panic into a 500 response.
func RecoverMiddleware(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					logger.Error("handler panic", "path", r.URL.Path, "panic", v)
					writeError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionMiddleware attaches the [repositories.Session] named by the cookie to the request context.
//
// Requests without the cookie get a fresh uuid session key, set on the response.
func SessionMiddleware(cookieName string, kv repositories.KeyValue, logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ""
			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				key = c.Value
			} else {
				key = shared.GenerateID()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    key,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			session := repositories.NewSession(kv, key, logger)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, session)))
		})
	}
}

// SessionFrom returns the session attached by [SessionMiddleware].
func SessionFrom(ctx context.Context) (*repositories.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*repositories.Session)
	return s, ok
}

// currentUser answers 401 and reports false when the request has no signed-in user.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	if session, ok := SessionFrom(r.Context()); ok {
		if user, ok := session.Current(); ok {
			return user, true
		}
	}
	writeError(w, http.StatusUnauthorized, "Not authenticated")
	return models.User{}, false
}
