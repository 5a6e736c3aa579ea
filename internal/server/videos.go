package server

import (
	"net/http"

	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/repositories"
	"github.com/desertthunder/insightboard/internal/services"
)

// VideosHandler serves the signed-in user's saved videos.
type VideosHandler struct {
	videos *repositories.VideoStore
}

func NewVideosHandler(videos *repositories.VideoStore) *VideosHandler {
	return &VideosHandler{videos: videos}
}

func (h *VideosHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/api/videos", Handler: h.List},
		{Method: http.MethodPost, Path: "/api/videos", Handler: h.Save},
		{Method: http.MethodDelete, Path: "/api/videos", Handler: h.Clear},
		{Method: http.MethodGet, Path: "/api/videos/{id}", Handler: h.Get},
		{Method: http.MethodDelete, Path: "/api/videos/{id}", Handler: h.Remove},
	}
}

func (h *VideosHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.videos.List(user.ID))
}

// Save stores the posted record and responds with the updated list.
func (h *VideosHandler) Save(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var record models.VideoRecord
	if err := decodeJSON(w, r, &record); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !services.IsVideoID(record.ID) {
		writeError(w, http.StatusBadRequest, "Invalid video ID format")
		return
	}

	h.videos.Save(user.ID, record)
	writeJSON(w, http.StatusCreated, h.videos.List(user.ID))
}

func (h *VideosHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	record, found := h.videos.FindByID(user.ID, PathValue(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "Video not saved")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *VideosHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	h.videos.Remove(user.ID, PathValue(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *VideosHandler) Clear(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	h.videos.Clear(user.ID)
	w.WriteHeader(http.StatusNoContent)
}
