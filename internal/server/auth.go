package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/repositories"
	"github.com/desertthunder/insightboard/internal/shared"
)

// AuthHandler serves signup, login, logout and the current-user lookup.
type AuthHandler struct {
	users  *repositories.UserStore
	logger *log.Logger
}

func NewAuthHandler(users *repositories.UserStore, logger *log.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

func (h *AuthHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/api/auth/signup", Handler: h.Signup},
		{Method: http.MethodPost, Path: "/api/auth/login", Handler: h.Login},
		{Method: http.MethodPost, Path: "/api/auth/logout", Handler: h.Logout},
		{Method: http.MethodGet, Path: "/api/auth/me", Handler: h.Me},
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers an account and signs the session in as it.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Register(req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, shared.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
		return
	case err != nil:
		h.logger.Error("signup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	if session, ok := SessionFrom(r.Context()); ok {
		session.Login(user)
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login authenticates and signs the session in.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if session, ok := SessionFrom(r.Context()); ok {
		session.Login(user)
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session, ok := SessionFrom(r.Context()); ok {
		session.Logout()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, user)
}
