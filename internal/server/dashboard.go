package server

import (
	"net/http"
	"time"

	"github.com/desertthunder/insightboard/internal/shared"
)

// DashboardHandler serves the static metrics and activity feeds shown on the dashboard.
type DashboardHandler struct {
	now func() time.Time
}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{now: time.Now}
}

func (h *DashboardHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/api/metrics", Handler: h.Metrics},
		{Method: http.MethodPost, Path: "/api/metrics", Handler: h.RecordMetrics},
		{Method: http.MethodGet, Path: "/api/activity", Handler: h.Activity},
		{Method: http.MethodPost, Path: "/api/activity", Handler: h.RecordActivity},
	}
}

// Metric compares a current value against the previous period.
type Metric struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Trend    float64 `json:"trend"`
}

type Metrics struct {
	Revenue    Metric    `json:"revenue"`
	Users      Metric    `json:"users"`
	Engagement Metric    `json:"engagement"`
	Timestamp  time.Time `json:"timestamp"`
}

type Activity struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type recorded struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Metrics{
		Revenue:    Metric{Current: 45231, Previous: 40123, Trend: 12.5},
		Users:      Metric{Current: 2543, Previous: 2349, Trend: 8.2},
		Engagement: Metric{Current: 68, Previous: 64.7, Trend: 5.1},
		Timestamp:  h.now().UTC(),
	})
}

// RecordMetrics echoes the posted payload; nothing is stored.
func (h *DashboardHandler) RecordMetrics(w http.ResponseWriter, r *http.Request) {
	var body any
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to record metrics")
		return
	}
	writeJSON(w, http.StatusCreated, recorded{Message: "Metrics recorded successfully", Data: body})
}

func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	now := h.now().UTC()
	writeJSON(w, http.StatusOK, []Activity{
		{ID: 1, Type: "user_login", Description: "User logged in", Timestamp: now.Add(-time.Hour)},
		{ID: 2, Type: "data_export", Description: "Data exported to CSV", Timestamp: now.Add(-2 * time.Hour)},
		{ID: 3, Type: "report_generated", Description: "Monthly report generated", Timestamp: now.Add(-24 * time.Hour)},
	})
}

// RecordActivity echoes the posted fields with a generated id and the current timestamp.
func (h *DashboardHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil || body == nil {
		writeError(w, http.StatusBadRequest, "Failed to record activity")
		return
	}

	body["id"] = shared.GenerateID()
	body["timestamp"] = h.now().UTC()
	writeJSON(w, http.StatusCreated, recorded{Message: "Activity recorded successfully", Data: body})
}
