package rest

import (
	"net/http"
	"time"
)

// storeStatus reports the outcome of provider selection.
type storeStatus interface {
	ProviderName() string
	IsFallbackMode() bool
	FallbackReason() string
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storeStatus
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store storeStatus, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Ready is the readiness probe. It reports the selection outcome without
// contacting the store: "degraded" while serving the fallback dataset.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    h.overall(),
		Timestamp: h.now(),
	})
}

// Health reports the selected provider, the fallback flag and the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	store := CompStatus{
		Status:   "ok",
		Provider: h.store.ProviderName(),
		Fallback: h.store.IsFallbackMode(),
	}
	if store.Fallback {
		store.Status = "fallback"
		store.Reason = h.store.FallbackReason()
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     h.overall(),
		Version:    h.version,
		Components: map[string]CompStatus{"store": store},
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) overall() string {
	if h.store.IsFallbackMode() {
		return "degraded"
	}
	return "ok"
}
