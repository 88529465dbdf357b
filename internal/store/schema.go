package store

import (
	"fmt"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// Column names shared by several collections.
const (
	ColID        = "id"
	ColCreatedAt = "created_at"
	ColUpdatedAt = "updated_at"
)

// OrderColumn is one key of a collection's natural order.
type OrderColumn struct {
	Column string
	Desc   bool
}

// Schema describes how a collection maps onto a table.
type Schema struct {
	Collection domain.Collection
	Table      string
	Columns    []string
	Order      []OrderColumn

	// HasCreatedAt means the provider assigns created_at when absent.
	HasCreatedAt bool
	// HasUpdatedAt means created/updated records carry updated_at.
	HasUpdatedAt bool
	// UniqueKey lists the columns that together identify a record besides id.
	UniqueKey []string
}

var schemas = map[domain.Collection]Schema{
	domain.CollectionContentEntries: {
		Collection: domain.CollectionContentEntries,
		Table:      "content_entries",
		Columns:    []string{"id", "section", "key", "value", "kind"},
		Order:      []OrderColumn{{Column: "section"}, {Column: "key"}},
		UniqueKey:  []string{"section", "key"},
	},
	domain.CollectionArticles: {
		Collection:   domain.CollectionArticles,
		Table:        "articles",
		Columns:      []string{"id", "title", "excerpt", "body", "author", "category", "featured", "created_at"},
		Order:        []OrderColumn{{Column: ColCreatedAt, Desc: true}},
		HasCreatedAt: true,
	},
	domain.CollectionTestimonials: {
		Collection:   domain.CollectionTestimonials,
		Table:        "testimonials",
		Columns:      []string{"id", "name", "role", "organization", "body", "rating", "featured", "approved", "created_at"},
		Order:        []OrderColumn{{Column: ColCreatedAt, Desc: true}},
		HasCreatedAt: true,
	},
	domain.CollectionComplaints: {
		Collection: domain.CollectionComplaints,
		Table:      "complaints",
		Columns: []string{
			"id", "complainant_name", "contact_info", "organization_name", "complaint_type",
			"description", "status", "priority", "assigned_to", "created_at", "updated_at",
		},
		Order:        []OrderColumn{{Column: ColCreatedAt, Desc: true}},
		HasCreatedAt: true,
		HasUpdatedAt: true,
	},
	domain.CollectionContactMessages: {
		Collection:   domain.CollectionContactMessages,
		Table:        "contact_messages",
		Columns:      []string{"id", "name", "email", "phone", "category", "subject", "body", "status", "created_at"},
		Order:        []OrderColumn{{Column: ColCreatedAt, Desc: true}},
		HasCreatedAt: true,
	},
}

// SchemaFor returns the schema of a collection.
func SchemaFor(c domain.Collection) (Schema, error) {
	s, ok := schemas[c]
	if !ok {
		return Schema{}, fmt.Errorf("collection %q: %w", c, domain.ErrValidation)
	}
	return s, nil
}

// MustSchema is SchemaFor for collections known at compile time.
func MustSchema(c domain.Collection) Schema {
	s, err := SchemaFor(c)
	if err != nil {
		panic(err)
	}
	return s
}

// OrderClauses renders the natural order as SQL ORDER BY terms.
func (s Schema) OrderClauses() []string {
	out := make([]string, len(s.Order))
	for i, o := range s.Order {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		out[i] = quoteIdent(o.Column) + " " + dir
	}
	return out
}

// HasColumn reports whether col belongs to the schema.
func (s Schema) HasColumn(col string) bool {
	for _, c := range s.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// CheckColumns rejects records carrying columns outside the schema.
func (s Schema) CheckColumns(rec Record) error {
	for col := range rec {
		if !s.HasColumn(col) {
			return fmt.Errorf("%s: unknown column %q: %w", s.Table, col, domain.ErrValidation)
		}
	}
	return nil
}

// columnKind is the value shape a column holds.
type columnKind int

const (
	kindText columnKind = iota
	kindUUID
	kindTime
	kindBool
	kindInt
)

// columnKinds types the non-text columns. Column names mean the same thing
// in every collection.
var columnKinds = map[string]columnKind{
	ColID:        kindUUID,
	ColCreatedAt: kindTime,
	ColUpdatedAt: kindTime,
	"featured":   kindBool,
	"approved":   kindBool,
	"rating":     kindInt,
}

// CheckValues rejects records whose values cannot be read back as their
// column's type. NULL passes; required-ness is checked by the domain.
func (s Schema) CheckValues(rec Record) error {
	for col := range rec {
		if !rec.Has(col) {
			continue
		}
		var err error
		switch columnKinds[col] {
		case kindUUID:
			_, err = rec.UUID(col)
		case kindTime:
			_, err = rec.Time(col)
		case kindBool:
			_, err = rec.Bool(col)
		case kindInt:
			_, err = rec.Int(col)
		default:
			_, err = rec.String(col)
		}
		if err != nil {
			return fmt.Errorf("%s: %w: %w", s.Table, err, domain.ErrValidation)
		}
	}
	return nil
}

// QuotedColumns returns the column list quoted for SQL. "key" is reserved in
// some dialects, so every column is quoted.
func (s Schema) QuotedColumns() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = quoteIdent(c)
	}
	return out
}

// QuoteIdent quotes a column name for SQL.
func QuoteIdent(col string) string { return quoteIdent(col) }

func quoteIdent(col string) string { return `"` + col + `"` }
