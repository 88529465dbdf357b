package memory

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

//go:embed seed.yaml
var defaultSeed []byte

// ageColumn is a seed-only column: created_at = load time - age.
const ageColumn = "age"

// DefaultSeedYAML returns the raw embedded fallback dataset.
func DefaultSeedYAML() []byte {
	out := make([]byte, len(defaultSeed))
	copy(out, defaultSeed)
	return out
}

// DefaultSeed parses the embedded fallback dataset.
func DefaultSeed(now time.Time) (Dataset, error) {
	return parseSeed(defaultSeed, now)
}

// LoadSeedFile parses a seed file in the embedded dataset's format.
func LoadSeedFile(path string, now time.Time) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadSeed(f, now)
}

// LoadSeed parses a YAML document mapping collection names to record lists.
// Timestamps may be given as created_at or as a Go duration under "age"
// relative to now; ids are assigned when absent.
func LoadSeed(r io.Reader, now time.Time) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("seed: read: %w", err)
	}
	return parseSeed(raw, now)
}

func parseSeed(raw []byte, now time.Time) (Dataset, error) {
	var doc map[string][]map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}

	out := make(Dataset, len(doc))
	for name, rows := range doc {
		c := domain.Collection(name)
		schema, err := store.SchemaFor(c)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		recs := make([]store.Record, 0, len(rows))
		for i, row := range rows {
			rec, err := normalizeSeedRow(schema, store.Record(row), now)
			if err != nil {
				return nil, fmt.Errorf("seed: %s[%d]: %w", name, i, err)
			}
			recs = append(recs, rec)
		}
		out[c] = recs
	}
	return out, nil
}

func normalizeSeedRow(schema store.Schema, row store.Record, now time.Time) (store.Record, error) {
	rec := row.Clone()

	if age, ok := rec[ageColumn]; ok {
		delete(rec, ageColumn)
		s, ok := age.(string)
		if !ok {
			return nil, fmt.Errorf("age: expected duration string, got %T", age)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("age: %w", err)
		}
		rec[store.ColCreatedAt] = now.Add(-d).UTC()
	}

	if err := schema.CheckColumns(rec); err != nil {
		return nil, err
	}
	if err := schema.CheckValues(rec); err != nil {
		return nil, err
	}

	if rec.Has(store.ColID) {
		id, err := rec.UUID(store.ColID)
		if err != nil {
			return nil, err
		}
		rec[store.ColID] = id.String()
	} else {
		rec[store.ColID] = uuid.NewString()
	}
	for _, col := range []string{store.ColCreatedAt, store.ColUpdatedAt} {
		if !rec.Has(col) {
			continue
		}
		t, err := rec.Time(col)
		if err != nil {
			return nil, err
		}
		rec[col] = t
	}
	if schema.HasCreatedAt && !rec.Has(store.ColCreatedAt) {
		rec[store.ColCreatedAt] = now.UTC()
	}
	if schema.HasUpdatedAt && !rec.Has(store.ColUpdatedAt) {
		rec[store.ColUpdatedAt] = rec[store.ColCreatedAt]
	}
	return rec, nil
}
