// Package store defines the record-store provider contract shared by the
// persistence gateway and every backing store (fallback and remote).
//
// Providers are collection-agnostic: they move Records (column name -> value)
// in and out of the table described by the collection's Schema. Typed
// entities live one layer up, in the gateway.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// Provider is a record store reachable through exactly five data operations
// plus a lightweight probe.
//
// Errors must wrap one of domain.ErrNotFound, domain.ErrConflict,
// domain.ErrValidation or domain.ErrProviderUnavailable. Context errors may
// pass through unwrapped; the gateway classifies them.
type Provider interface {
	// Name identifies the provider in logs and health output.
	Name() string

	// Probe checks reachability and credentials with one minimal request.
	Probe(ctx context.Context) error

	// List returns every record of the collection in its natural order.
	// Returns an empty slice (not nil) when the collection is empty.
	List(ctx context.Context, c domain.Collection) ([]Record, error)

	// Create persists rec, assigning id (and created_at where the schema
	// says so) when absent, and returns the stored record.
	Create(ctx context.Context, c domain.Collection, rec Record) (Record, error)

	// Update merges patch onto the record with the given id.
	Update(ctx context.Context, c domain.Collection, id uuid.UUID, patch Record) (Record, error)

	// Delete removes the record with the given id. Deleting a missing id
	// fails with domain.ErrNotFound.
	Delete(ctx context.Context, c domain.Collection, id uuid.UUID) error

	// UpsertByKey updates the single record whose columns equal match, or
	// creates match+patch when none does. More than one match fails with
	// domain.ErrConflict.
	UpsertByKey(ctx context.Context, c domain.Collection, match, patch Record) (Record, error)

	// Close releases connections held by the provider.
	Close() error
}
