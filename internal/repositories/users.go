package repositories

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// UserStore persists registered accounts under [UsersKey].
type UserStore struct {
	kv     KeyValue
	logger *log.Logger
	cost   int
	mu     sync.Mutex
}

// NewUserStore creates a [UserStore] hashing passwords at [bcrypt.DefaultCost].
func NewUserStore(kv KeyValue, logger *log.Logger) *UserStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &UserStore{
		kv:     kv,
		logger: shared.WithLogger(logger, "component", "users"),
		cost:   bcrypt.DefaultCost,
	}
}

func (s *UserStore) accounts() ([]models.Account, error) {
	var accounts []models.Account
	if _, err := readJSON(s.kv, UsersKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Register creates an account and returns its public projection.
//
// Fails with [shared.ErrInvalidInput] for empty fields or a short password,
// [shared.ErrEmailTaken] when the email is already registered and [shared.ErrStorage]
// when the account list cannot be read or written.
func (s *UserStore) Register(name, email, password string) (models.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	switch {
	case name == "" || email == "" || password == "":
		return models.User{}, fmt.Errorf("%w: name, email and password are required", shared.ErrInvalidInput)
	case len(password) < MinPasswordLength:
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", shared.ErrInvalidInput, MinPasswordLength)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts()
	if err != nil {
		s.logger.Error("unreadable account list", "key", UsersKey, "error", err)
		return models.User{}, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return models.User{}, fmt.Errorf("%w: %s", shared.ErrEmailTaken, email)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: failed to hash password: %v", shared.ErrInvalidInput, err)
	}

	account := models.Account{
		ID:       shared.GenerateID(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}

	if err := writeJSON(s.kv, UsersKey, append(accounts, account)); err != nil {
		s.logger.Error("failed to persist account", "key", UsersKey, "error", err)
		return models.User{}, err
	}

	s.logger.Info("account registered", "id", account.ID)
	return account.Public(), nil
}

// Authenticate returns the account whose email matches exactly and whose hash matches password.
func (s *UserStore) Authenticate(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.accounts()
	if err != nil {
		s.logger.Error("unreadable account list", "key", UsersKey, "error", err)
		return models.User{}, shared.ErrInvalidCredentials
	}

	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
			if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				s.logger.Warn("stored password hash is unusable", "id", a.ID, "error", err)
			}
			break
		}
		return a.Public(), nil
	}

	return models.User{}, shared.ErrInvalidCredentials
}
