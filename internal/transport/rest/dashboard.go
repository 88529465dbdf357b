package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

type dashboardService interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
	Trend(ctx context.Context, year int) ([]domain.MonthCount, error)
	Categories(ctx context.Context) ([]domain.CategoryShare, error)
	Activity(ctx context.Context) ([]domain.Activity, error)
}

// DashboardHandler serves the admin dashboard views.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Dashboard returns every view in one response.
// GET /api/admin/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Trend returns complaints per month of one year (default: current).
// GET /api/admin/dashboard/trend?year=2025
func (h *DashboardHandler) Trend(w http.ResponseWriter, r *http.Request) {
	year := 0
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("year", "must be an integer"))
			return
		}
		year = y
	}

	trend, err := h.svc.Trend(r.Context(), year)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

// Categories returns the complaint type breakdown.
// GET /api/admin/dashboard/categories
func (h *DashboardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	shares, err := h.svc.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, shares)
}

// Activity returns the recent activity feed.
// GET /api/admin/dashboard/activity
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	feed, err := h.svc.Activity(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, feed)
}
