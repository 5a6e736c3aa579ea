package repositories

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/shared"
)

// Session is the signed-in identity for one session key.
//
// The projection is persisted under [SessionKey] so a later process, or a later request
// carrying the same key, picks it back up.
type Session struct {
	kv     KeyValue
	key    string
	logger *log.Logger
	mu     sync.RWMutex
	user   *models.User
}

// NewSession opens the session for key and rehydrates a persisted user if one is present.
func NewSession(kv KeyValue, key string, logger *log.Logger) *Session {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	s := &Session{kv: kv, key: key, logger: shared.WithLogger(logger, "component", "session")}

	var user models.User
	found, err := readJSON(kv, SessionKey(key), &user)
	switch {
	case err != nil:
		s.logger.Error("unreadable session", "key", SessionKey(key), "error", err)
	case found && user.ID != "":
		s.user = &user
	}

	return s
}

// Key returns the session key.
func (s *Session) Key() string { return s.key }

// Current returns the signed-in user.
func (s *Session) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Login makes user current and persists the projection.
func (s *Session) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	if err := writeJSON(s.kv, SessionKey(s.key), user); err != nil {
		s.logger.Error("failed to persist session", "key", SessionKey(s.key), "error", err)
	}
}

// Logout clears the current user and removes the persisted projection.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.kv.Delete(SessionKey(s.key)); err != nil {
		s.logger.Error("failed to remove session", "key", SessionKey(s.key), "error", err)
	}
}
