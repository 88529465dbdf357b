package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/auth"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/gateway"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/service/analytics"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/service/site"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/transport/middleware"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/transport/rest"
)

// NewHandler wires services and handlers over an open session. The returned
// RateLimiter must be stopped on shutdown.
func NewHandler(cfg *config.Config, session *gateway.Session, logger *slog.Logger) (http.Handler, *middleware.RateLimiter) {
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	loc := cfg.Dashboard.Location
	if loc == nil {
		loc = time.UTC
	}

	siteService := site.NewService(logger,
		session.ContentEntries(), session.Articles(), session.Testimonials(),
		session.Complaints(), session.Messages(),
	)
	dashboardService := analytics.NewService(logger, session.Complaints(), session.Messages(), session, loc)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	version := BuildVersion()

	mux := http.NewServeMux()
	rest.Register(mux, rest.Handlers{
		Health: rest.NewHealthHandler(session, version),
		Public: rest.NewPublicHandler(siteService, logger),
		Admin: rest.NewAdminHandler(rest.AdminRepos{
			Content:      session.ContentEntries(),
			Upserter:     session.ContentEntries(),
			Articles:     session.Articles(),
			Testimonials: session.Testimonials(),
			Complaints:   session.Complaints(),
			Messages:     session.Messages(),
		}, session, version, logger),
		Dashboard: rest.NewDashboardHandler(dashboardService, logger),
		Auth:      rest.NewAuthHandler(jwtMgr, logger),
	},
		limiter.Limit(cfg.RateLimit.SubmissionsPerMinute),
		middleware.Chain(middleware.Auth(jwtMgr), middleware.RequireAdmin),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, limiter
}
