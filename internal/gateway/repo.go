package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

// Repo is the typed view of one collection within a session.
type Repo[T, P any] struct {
	session *Session
	codec   codec[T, P]
}

func newRepo[T, P any](s *Session, c codec[T, P]) *Repo[T, P] {
	return &Repo[T, P]{session: s, codec: c}
}

// List returns every entity in the collection's natural order.
func (r *Repo[T, P]) List(ctx context.Context) ([]T, error) {
	op := "list " + string(r.codec.collection)

	ctx, cancel := r.session.callContext(ctx)
	defer cancel()

	recs, err := r.session.provider.List(ctx, r.codec.collection)
	if err != nil {
		return nil, classify(op, err)
	}

	out := make([]T, 0, len(recs))
	for i, rec := range recs {
		v, err := r.codec.decode(rec)
		if err != nil {
			return nil, malformed(op, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Create validates v, applies defaults and persists it. Zero ID and
// CreatedAt are assigned by the provider.
func (r *Repo[T, P]) Create(ctx context.Context, v T) (T, error) {
	op := "create " + string(r.codec.collection)
	var zero T

	r.codec.applyDefaults(&v)
	if err := r.codec.validate(v); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := r.session.callContext(ctx)
	defer cancel()

	rec, err := r.session.provider.Create(ctx, r.codec.collection, r.codec.encode(v))
	if err != nil {
		return zero, classify(op, err)
	}
	return r.decodeOne(op, rec)
}

// Update applies a partial update to the entity with the given id.
func (r *Repo[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (T, error) {
	op := "update " + string(r.codec.collection)
	var zero T

	if id == uuid.Nil {
		return zero, fmt.Errorf("%s: %w", op, domain.NewValidationError("id", "required"))
	}
	if err := r.codec.validatePatch(patch); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := r.session.callContext(ctx)
	defer cancel()

	rec, err := r.session.provider.Update(ctx, r.codec.collection, id, r.codec.encodePatch(patch, r.session.now()))
	if err != nil {
		return zero, classify(op, err)
	}
	return r.decodeOne(op, rec)
}

// Delete removes the entity with the given id. Deleting an absent id fails
// with domain.ErrNotFound.
func (r *Repo[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	op := "delete " + string(r.codec.collection)

	if id == uuid.Nil {
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("id", "required"))
	}

	ctx, cancel := r.session.callContext(ctx)
	defer cancel()

	if err := r.session.provider.Delete(ctx, r.codec.collection, id); err != nil {
		return classify(op, err)
	}
	return nil
}

func (r *Repo[T, P]) decodeOne(op string, rec store.Record) (T, error) {
	v, err := r.codec.decode(rec)
	if err != nil {
		var zero T
		return zero, malformed(op, 0, err)
	}
	return v, nil
}

// ContentRepo adds keyed upserts to the content collection.
type ContentRepo struct {
	*Repo[domain.ContentEntry, domain.ContentEntryPatch]
}

// UpsertByKey updates the entry addressed by (section, key), creating it when
// absent. More than one stored match fails with domain.ErrConflict.
func (r *ContentRepo) UpsertByKey(ctx context.Context, section, key string, patch domain.ContentEntryPatch) (domain.ContentEntry, error) {
	const op = "upsert content_entries"

	section = strings.TrimSpace(section)
	key = strings.TrimSpace(key)

	var errs []domain.FieldError
	if section == "" {
		errs = append(errs, domain.FieldError{Field: "section", Message: "required"})
	}
	if key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	if patch.Section != nil && *patch.Section != section {
		errs = append(errs, domain.FieldError{Field: "section", Message: "cannot be changed by an upsert"})
	}
	if patch.Key != nil && *patch.Key != key {
		errs = append(errs, domain.FieldError{Field: "key", Message: "cannot be changed by an upsert"})
	}
	if len(errs) > 0 {
		return domain.ContentEntry{}, fmt.Errorf("%s: %w", op, domain.NewValidationErrors(errs))
	}
	patch.Section, patch.Key = nil, nil
	if err := patch.Validate(); err != nil {
		return domain.ContentEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := r.session.callContext(ctx)
	defer cancel()

	match := store.Record{"section": section, "key": key}
	rec, err := r.session.provider.UpsertByKey(ctx, domain.CollectionContentEntries, match, r.codec.encodePatch(patch, r.session.now()))
	if err != nil {
		return domain.ContentEntry{}, classify(op, err)
	}
	return r.decodeOne(op, rec)
}
