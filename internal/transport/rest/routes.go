package rest

import "net/http"

// Handlers groups every handler mounted by Register.
type Handlers struct {
	Health    *HealthHandler
	Public    *PublicHandler
	Admin     *AdminHandler
	Dashboard *DashboardHandler
	Auth      *AuthHandler
}

// Register mounts all routes on mux. submit wraps the public form endpoints
// (rate limiting); admin wraps every /api/admin route (authorization).
func Register(mux *http.ServeMux, h Handlers, submit, admin func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/content/{section}", h.Public.Content)
	mux.HandleFunc("GET /api/articles", h.Public.Articles)
	mux.HandleFunc("GET /api/testimonials", h.Public.Testimonials)
	mux.Handle("POST /api/complaints", submit(http.HandlerFunc(h.Public.SubmitComplaint)))
	mux.Handle("POST /api/messages", submit(http.HandlerFunc(h.Public.SubmitMessage)))

	adminRoute := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, admin(fn))
	}
	adminRoute("GET /api/admin/session", h.Auth.Session)
	adminRoute("POST /api/admin/session/refresh", h.Auth.Refresh)
	adminRoute("GET /api/admin/status", h.Admin.Status)
	adminRoute("PUT /api/admin/content", h.Admin.UpsertContent)
	adminRoute("GET /api/admin/dashboard", h.Dashboard.Dashboard)
	adminRoute("GET /api/admin/dashboard/trend", h.Dashboard.Trend)
	adminRoute("GET /api/admin/dashboard/categories", h.Dashboard.Categories)
	adminRoute("GET /api/admin/dashboard/activity", h.Dashboard.Activity)
	adminRoute("GET /api/admin/{collection}", h.Admin.List)
	adminRoute("POST /api/admin/{collection}", h.Admin.Create)
	adminRoute("PATCH /api/admin/{collection}/{id}", h.Admin.Update)
	adminRoute("DELETE /api/admin/{collection}/{id}", h.Admin.Delete)
}
