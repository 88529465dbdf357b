// Package memory implements the fallback record store: a seeded, in-process
// dataset scoped to one session. Writes apply to the session-local slices
// directly, so every later read in the same session observes them.
// Nothing is shared across processes or persisted across restarts.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

// ProviderName is reported by Name.
const ProviderName = "memory"

// Dataset holds records per collection.
type Dataset map[domain.Collection][]store.Record

// Clone deep-copies the dataset so that callers never share record maps.
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	for c, recs := range d {
		cp := make([]store.Record, len(recs))
		for i, r := range recs {
			cp[i] = r.Clone()
		}
		out[c] = cp
	}
	return out
}

// Count returns the number of records in a collection.
func (d Dataset) Count(c domain.Collection) int { return len(d[c]) }

// Provider is the in-memory store. It is safe for concurrent use.
type Provider struct {
	mu    sync.RWMutex
	data  Dataset
	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(p *Provider) { p.newID = gen }
}

// New creates a provider holding a private copy of seed. A nil seed starts
// every collection empty.
func New(seed Dataset, opts ...Option) *Provider {
	p := &Provider{
		data:  seed.Clone(),
		now:   time.Now,
		newID: uuid.New,
	}
	for _, c := range domain.Collections {
		if p.data[c] == nil {
			p.data[c] = []store.Record{}
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name identifies the provider.
func (p *Provider) Name() string { return ProviderName }

// Probe always succeeds: the dataset is in-process.
func (p *Provider) Probe(_ context.Context) error { return nil }

// Close is a no-op.
func (p *Provider) Close() error { return nil }

// Snapshot returns a deep copy of the current dataset.
func (p *Provider) Snapshot() Dataset {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data.Clone()
}

// List returns the collection in its natural order.
func (p *Provider) List(ctx context.Context, c domain.Collection) ([]store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	out := make([]store.Record, len(p.data[c]))
	for i, r := range p.data[c] {
		out[i] = r.Clone()
	}
	p.mu.RUnlock()

	sortRecords(schema, out)
	return out, nil
}

// Create appends rec, assigning id and timestamps when absent.
func (p *Provider) Create(ctx context.Context, c domain.Collection, rec store.Record) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(rec); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.createLocked(schema, rec)
}

func (p *Provider) createLocked(schema store.Schema, rec store.Record) (store.Record, error) {
	row := rec.Clone()
	if !row.Has(store.ColID) {
		row[store.ColID] = p.newID().String()
	} else if _, err := row.UUID(store.ColID); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", schema.Table, err, domain.ErrValidation)
	}
	if schema.HasCreatedAt && !row.Has(store.ColCreatedAt) {
		row[store.ColCreatedAt] = p.now().UTC()
	}
	if schema.HasUpdatedAt && !row.Has(store.ColUpdatedAt) {
		row[store.ColUpdatedAt] = row[store.ColCreatedAt]
	}

	id, _ := row.UUID(store.ColID)
	if p.indexOf(schema.Collection, id) >= 0 {
		return nil, fmt.Errorf("%s %s: duplicate id: %w", schema.Table, id, domain.ErrConflict)
	}
	if dup := p.findUnique(schema, row, uuid.Nil); dup {
		return nil, fmt.Errorf("%s: duplicate %v: %w", schema.Table, schema.UniqueKey, domain.ErrConflict)
	}

	p.data[schema.Collection] = append(p.data[schema.Collection], row)
	return row.Clone(), nil
}

// Update merges patch onto the stored record.
func (p *Provider) Update(ctx context.Context, c domain.Collection, id uuid.UUID, patch store.Record) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(patch); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.updateLocked(schema, id, patch)
}

func (p *Provider) updateLocked(schema store.Schema, id uuid.UUID, patch store.Record) (store.Record, error) {
	idx := p.indexOf(schema.Collection, id)
	if idx < 0 {
		return nil, fmt.Errorf("%s %s: %w", schema.Table, id, domain.ErrNotFound)
	}

	merged := p.data[schema.Collection][idx].Merge(patch)
	merged[store.ColID] = id.String()
	if p.findUnique(schema, merged, id) {
		return nil, fmt.Errorf("%s %s: duplicate %v: %w", schema.Table, id, schema.UniqueKey, domain.ErrConflict)
	}

	p.data[schema.Collection][idx] = merged
	return merged.Clone(), nil
}

// Delete removes the record with the given id.
func (p *Provider) Delete(ctx context.Context, c domain.Collection, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	schema, err := store.SchemaFor(c)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(c, id)
	if idx < 0 {
		return fmt.Errorf("%s %s: %w", schema.Table, id, domain.ErrNotFound)
	}
	recs := p.data[c]
	p.data[c] = append(recs[:idx:idx], recs[idx+1:]...)
	return nil
}

// UpsertByKey updates the single record matching every column of match, or
// creates match+patch when none matches.
func (p *Provider) UpsertByKey(ctx context.Context, c domain.Collection, match, patch store.Record) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(match); err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(patch); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var hits []int
	for i, r := range p.data[c] {
		if matches(r, match) {
			hits = append(hits, i)
		}
	}

	switch len(hits) {
	case 0:
		return p.createLocked(schema, match.Merge(patch))
	case 1:
		id, err := p.data[c][hits[0]].UUID(store.ColID)
		if err != nil {
			return nil, fmt.Errorf("%s: stored record: %v: %w", schema.Table, err, domain.ErrConflict)
		}
		return p.updateLocked(schema, id, patch)
	default:
		return nil, fmt.Errorf("%s: %d records match %v: %w", schema.Table, len(hits), match, domain.ErrConflict)
	}
}

// indexOf returns the slice position of id, or -1. Caller holds the lock.
func (p *Provider) indexOf(c domain.Collection, id uuid.UUID) int {
	for i, r := range p.data[c] {
		if rid, err := r.UUID(store.ColID); err == nil && rid == id {
			return i
		}
	}
	return -1
}

// findUnique reports whether a record other than self already holds row's
// unique key. Caller holds the lock.
func (p *Provider) findUnique(schema store.Schema, row store.Record, self uuid.UUID) bool {
	if len(schema.UniqueKey) == 0 {
		return false
	}
	key := make(store.Record, len(schema.UniqueKey))
	for _, col := range schema.UniqueKey {
		key[col] = row[col]
	}
	for _, r := range p.data[schema.Collection] {
		if rid, err := r.UUID(store.ColID); err == nil && rid == self {
			continue
		}
		if matches(r, key) {
			return true
		}
	}
	return false
}

// matches reports whether every column of want equals the record's value.
func matches(r, want store.Record) bool {
	for col, v := range want {
		if !equalValues(r[col], v) {
			return false
		}
	}
	return true
}

func equalValues(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return a == b
}

// sortRecords applies the schema's natural order. The sort is stable so
// records with equal keys keep insertion order.
func sortRecords(schema store.Schema, recs []store.Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		for _, o := range schema.Order {
			c := compareValues(recs[i][o.Column], recs[j][o.Column])
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues orders nil first, then by the value's natural order.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch ta := a.(type) {
	case time.Time:
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	case string:
		if tb, ok := b.(string); ok {
			switch {
			case ta < tb:
				return -1
			case ta > tb:
				return 1
			}
			return 0
		}
	case int:
		if tb, ok := b.(int); ok {
			return ta - tb
		}
	}
	return 0
}
