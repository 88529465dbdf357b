package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/service/site"
)

type siteService interface {
	PublishedTestimonials(ctx context.Context) ([]domain.Testimonial, error)
	Articles(ctx context.Context, category string) ([]domain.Article, error)
	FeaturedArticles(ctx context.Context, limit int) ([]domain.Article, error)
	SectionContent(ctx context.Context, section string) (map[string]string, error)
	SubmitComplaint(ctx context.Context, in site.ComplaintSubmission) (domain.Complaint, error)
	SubmitMessage(ctx context.Context, in site.MessageSubmission) (domain.ContactMessage, error)
}

// PublicHandler serves the unauthenticated website API.
type PublicHandler struct {
	site siteService
	log  *slog.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(site siteService, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{site: site, log: logger.With("handler", "public")}
}

// submissionReceipt is returned for accepted form submissions. Staff-only
// fields of the stored record are not echoed back.
type submissionReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Content returns one page section as a key/value object.
// GET /api/content/{section}
func (h *PublicHandler) Content(w http.ResponseWriter, r *http.Request) {
	values, err := h.site.SectionContent(r.Context(), r.PathValue("section"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// Articles lists articles.
// GET /api/articles?category=news or GET /api/articles?featured=3
func (h *PublicHandler) Articles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		articles []domain.Article
		err      error
	)
	if v := q.Get("featured"); v != "" {
		limit, convErr := strconv.Atoi(v)
		if convErr != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("featured", "must be an integer"))
			return
		}
		articles, err = h.site.FeaturedArticles(r.Context(), limit)
	} else {
		articles, err = h.site.Articles(r.Context(), q.Get("category"))
	}
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

// Testimonials lists approved testimonials.
// GET /api/testimonials
func (h *PublicHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.site.PublishedTestimonials(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SubmitComplaint accepts the public complaint form.
// POST /api/complaints
func (h *PublicHandler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	var in site.ComplaintSubmission
	if err := decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	c, err := h.site.SubmitComplaint(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, submissionReceipt{ID: c.ID.String(), Status: string(c.Status)})
}

// SubmitMessage accepts the public contact form.
// POST /api/messages
func (h *PublicHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var in site.MessageSubmission
	if err := decodeJSON(w, r, &in); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	m, err := h.site.SubmitMessage(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, submissionReceipt{ID: m.ID.String(), Status: string(m.Status)})
}
