package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/pkg/ctxutil"
)

// crudRepo is the gateway surface behind one admin collection.
type crudRepo[T, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id uuid.UUID, patch P) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentUpserter interface {
	UpsertByKey(ctx context.Context, section, key string, patch domain.ContentEntryPatch) (domain.ContentEntry, error)
}

// AdminRepos are the collections exposed to staff.
type AdminRepos struct {
	Content      crudRepo[domain.ContentEntry, domain.ContentEntryPatch]
	Upserter     contentUpserter
	Articles     crudRepo[domain.Article, domain.ArticlePatch]
	Testimonials crudRepo[domain.Testimonial, domain.TestimonialPatch]
	Complaints   crudRepo[domain.Complaint, domain.ComplaintPatch]
	Messages     crudRepo[domain.ContactMessage, domain.ContactMessagePatch]
}

// collectionHandler serves the CRUD routes of one collection.
type collectionHandler interface {
	list(w http.ResponseWriter, r *http.Request)
	create(w http.ResponseWriter, r *http.Request)
	update(w http.ResponseWriter, r *http.Request, id uuid.UUID)
	remove(w http.ResponseWriter, r *http.Request, id uuid.UUID)
}

// AdminHandler serves the staff API. Routes are expected behind
// middleware.RequireAdmin.
type AdminHandler struct {
	collections map[domain.Collection]collectionHandler
	upserter    contentUpserter
	store       storeStatus
	version     string
	log         *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(repos AdminRepos, store storeStatus, version string, logger *slog.Logger) *AdminHandler {
	h := &AdminHandler{
		upserter: repos.Upserter,
		store:    store,
		version:  version,
		log:      logger.With("handler", "admin"),
	}
	h.collections = map[domain.Collection]collectionHandler{
		domain.CollectionContentEntries:  &crud[domain.ContentEntry, domain.ContentEntryPatch]{repo: repos.Content, name: domain.CollectionContentEntries, log: h.log},
		domain.CollectionArticles:        &crud[domain.Article, domain.ArticlePatch]{repo: repos.Articles, name: domain.CollectionArticles, log: h.log},
		domain.CollectionTestimonials:    &crud[domain.Testimonial, domain.TestimonialPatch]{repo: repos.Testimonials, name: domain.CollectionTestimonials, log: h.log},
		domain.CollectionComplaints:      &crud[domain.Complaint, domain.ComplaintPatch]{repo: repos.Complaints, name: domain.CollectionComplaints, log: h.log},
		domain.CollectionContactMessages: &crud[domain.ContactMessage, domain.ContactMessagePatch]{repo: repos.Messages, name: domain.CollectionContactMessages, log: h.log},
	}
	return h
}

// List returns every record of a collection.
// GET /api/admin/{collection}
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if c, ok := h.collection(w, r); ok {
		c.list(w, r)
	}
}

// Create adds a record to a collection.
// POST /api/admin/{collection}
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	if c, ok := h.collection(w, r); ok {
		c.create(w, r)
	}
}

// Update applies a partial update.
// PATCH /api/admin/{collection}/{id}
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := h.collection(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	c.update(w, r, id)
}

// Delete removes a record.
// DELETE /api/admin/{collection}/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.collection(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	c.remove(w, r, id)
}

type upsertContentRequest struct {
	Section string              `json:"section"`
	Key     string              `json:"key"`
	Value   *string             `json:"value,omitempty"`
	Kind    *domain.ContentKind `json:"kind,omitempty"`
}

// UpsertContent writes one content value addressed by section and key.
// PUT /api/admin/content
func (h *AdminHandler) UpsertContent(w http.ResponseWriter, r *http.Request) {
	var req upsertContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entry, err := h.upserter.UpsertByKey(r.Context(), req.Section, req.Key, domain.ContentEntryPatch{
		Value: req.Value,
		Kind:  req.Kind,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "content upserted",
		slog.String("section", entry.Section),
		slog.String("key", entry.Key),
		slog.String("staff", staffSubject(r)),
	)
	writeJSON(w, http.StatusOK, entry)
}

// StatusResponse describes the data layer to staff.
type StatusResponse struct {
	Provider       string `json:"provider"`
	FallbackMode   bool   `json:"fallbackMode"`
	FallbackReason string `json:"fallbackReason,omitempty"`
	Version        string `json:"version"`
}

// Status reports which provider the session runs on.
// GET /api/admin/status
func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Provider:       h.store.ProviderName(),
		FallbackMode:   h.store.IsFallbackMode(),
		FallbackReason: h.store.FallbackReason(),
		Version:        h.version,
	})
}

func (h *AdminHandler) collection(w http.ResponseWriter, r *http.Request) (collectionHandler, bool) {
	c, ok := h.collections[domain.Collection(r.PathValue("collection"))]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown collection")
		return nil, false
	}
	return c, true
}

func staffSubject(r *http.Request) string {
	s, _ := ctxutil.StaffFromCtx(r.Context())
	return s.Subject
}

type crud[T, P any] struct {
	repo crudRepo[T, P]
	name domain.Collection
	log  *slog.Logger
}

func (c *crud[T, P]) list(w http.ResponseWriter, r *http.Request) {
	items, err := c.repo.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *crud[T, P]) create(w http.ResponseWriter, r *http.Request) {
	var v T
	if err := decodeJSON(w, r, &v); err != nil {
		writeServiceError(w, r, c.log, err)
		return
	}

	created, err := c.repo.Create(r.Context(), v)
	if err != nil {
		writeServiceError(w, r, c.log, err)
		return
	}

	c.log.InfoContext(r.Context(), "record created",
		slog.String("collection", c.name.String()),
		slog.String("staff", staffSubject(r)),
	)
	writeJSON(w, http.StatusCreated, created)
}

func (c *crud[T, P]) update(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var patch P
	if err := decodeJSON(w, r, &patch); err != nil {
		writeServiceError(w, r, c.log, err)
		return
	}

	updated, err := c.repo.Update(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, c.log, err)
		return
	}

	c.log.InfoContext(r.Context(), "record updated",
		slog.String("collection", c.name.String()),
		slog.String("id", id.String()),
		slog.String("staff", staffSubject(r)),
	)
	writeJSON(w, http.StatusOK, updated)
}

func (c *crud[T, P]) remove(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := c.repo.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, c.log, err)
		return
	}

	c.log.InfoContext(r.Context(), "record deleted",
		slog.String("collection", c.name.String()),
		slog.String("id", id.String()),
		slog.String("staff", staffSubject(r)),
	)
	w.WriteHeader(http.StatusNoContent)
}
