package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/pkg/ctxutil"
)

type tokenIssuer interface {
	IssueAdminToken(subject string) (string, time.Time, error)
}

// AuthHandler serves the staff session endpoints.
type AuthHandler struct {
	tokens tokenIssuer
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(tokens tokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: logger.With("handler", "auth")}
}

type sessionResponse struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}

type tokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Session returns the identity behind the bearer token.
// GET /api/admin/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	staff, ok := ctxutil.StaffFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Subject: staff.Subject, Role: staff.Role})
}

// Refresh issues a fresh token for the current admin.
// POST /api/admin/session/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	staff, ok := ctxutil.StaffFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	token, expires, err := h.tokens.IssueAdminToken(staff.Subject)
	if err != nil {
		h.log.ErrorContext(r.Context(), "issue token", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.log.InfoContext(r.Context(), "token refreshed", slog.String("staff", staff.Subject))
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, ExpiresAt: expires})
}
