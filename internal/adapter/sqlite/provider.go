// Package sqlite implements the record store over a local SQLite file, for
// single-node deployments and offline administration.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/migrations"
)

// ProviderName is reported by Name.
const ProviderName = "sqlite"

// timeFormat is fixed width so that text order equals time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// querier is implemented by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Provider stores records in a SQLite database.
type Provider struct {
	db    *sql.DB
	log   *slog.Logger
	now   func() time.Time
	newID func() uuid.UUID
}

// Dial opens (creating if needed) the database at cfg.Endpoint and applies
// pending migrations.
func Dial(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*Provider, error) {
	path := strings.TrimPrefix(strings.TrimSpace(cfg.Endpoint), "sqlite://")
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	return Open(ctx, path, logger)
}

// Open opens the database at path and migrates it.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Provider, error) {
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// One writer at a time; also keeps :memory: on a single connection.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewProvider(db, logger), nil
}

// Migrate applies the embedded migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.SQLite())
	if err != nil {
		return fmt.Errorf("sqlite: goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// NewProvider wraps an open, migrated database.
func NewProvider(db *sql.DB, logger *slog.Logger) *Provider {
	return &Provider{
		db:    db,
		log:   logger.With("adapter", ProviderName),
		now:   time.Now,
		newID: uuid.New,
	}
}

// Name identifies the provider.
func (p *Provider) Name() string { return ProviderName }

// Close closes the database.
func (p *Provider) Close() error { return p.db.Close() }

// Probe reads at most one content id.
func (p *Provider) Probe(ctx context.Context) error {
	rows, err := p.db.QueryContext(ctx, `SELECT "id" FROM content_entries LIMIT 1`)
	if err != nil {
		return mapError(err, "sqlite: probe")
	}
	defer rows.Close()
	return mapError(rows.Err(), "sqlite: probe")
}

// List returns every row in the collection's natural order.
func (p *Provider) List(ctx context.Context, c domain.Collection) ([]store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}

	query, args, err := sqlb.Select(schema.QuotedColumns()...).
		From(schema.Table).
		OrderBy(schema.OrderClauses()...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build list %s: %w", schema.Table, err)
	}

	recs, err := queryRecords(ctx, p.db, query, args)
	if err != nil {
		return nil, mapError(err, "list "+schema.Table)
	}
	return recs, nil
}

// Create inserts rec, assigning id and timestamps when absent.
func (p *Provider) Create(ctx context.Context, c domain.Collection, rec store.Record) (store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(rec); err != nil {
		return nil, err
	}
	return p.insert(ctx, p.db, schema, rec)
}

func (p *Provider) insert(ctx context.Context, q querier, schema store.Schema, rec store.Record) (store.Record, error) {
	row := rec.Clone()
	if !row.Has(store.ColID) {
		row[store.ColID] = p.newID().String()
	}
	if schema.HasCreatedAt && !row.Has(store.ColCreatedAt) {
		row[store.ColCreatedAt] = p.now()
	}
	if schema.HasUpdatedAt && !row.Has(store.ColUpdatedAt) {
		row[store.ColUpdatedAt] = row[store.ColCreatedAt]
	}

	query, args, err := sqlb.Insert(schema.Table).
		SetMap(encode(row).Quoted()).
		Suffix(returning(schema)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build insert %s: %w", schema.Table, err)
	}

	return queryOne(ctx, q, "create "+schema.Table, query, args)
}

// Update merges patch onto the row with the given id.
func (p *Provider) Update(ctx context.Context, c domain.Collection, id uuid.UUID, patch store.Record) (store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(patch); err != nil {
		return nil, err
	}
	return p.update(ctx, p.db, schema, id, patch)
}

func (p *Provider) update(ctx context.Context, q querier, schema store.Schema, id uuid.UUID, patch store.Record) (store.Record, error) {
	if len(patch) == 0 {
		return nil, fmt.Errorf("update %s %s: no columns: %w", schema.Table, id, domain.ErrValidation)
	}

	query, args, err := sqlb.Update(schema.Table).
		SetMap(encode(patch).Quoted()).
		Where(sq.Eq{store.QuoteIdent(store.ColID): id.String()}).
		Suffix(returning(schema)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build update %s: %w", schema.Table, err)
	}

	return queryOne(ctx, q, fmt.Sprintf("update %s %s", schema.Table, id), query, args)
}

// Delete removes the row with the given id.
func (p *Provider) Delete(ctx context.Context, c domain.Collection, id uuid.UUID) error {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return err
	}

	query, args, err := sqlb.Delete(schema.Table).
		Where(sq.Eq{store.QuoteIdent(store.ColID): id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: build delete %s: %w", schema.Table, err)
	}

	op := fmt.Sprintf("delete %s %s", schema.Table, id)
	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, op)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// UpsertByKey updates or inserts inside one transaction.
func (p *Provider) UpsertByKey(ctx context.Context, c domain.Collection, match, patch store.Record) (out store.Record, err error) {
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

	op := "upsert " + schema.Table
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapError(err, op)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := sqlb.Select(store.QuoteIdent(store.ColID)).
		From(schema.Table).
		Where(sq.Eq(encode(match).Quoted())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build upsert lookup %s: %w", schema.Table, err)
	}

	hits, err := queryRecords(ctx, tx, query, args)
	if err != nil {
		return nil, mapError(err, op)
	}

	switch len(hits) {
	case 0:
		out, err = p.insert(ctx, tx, schema, match.Merge(patch))
	case 1:
		var id uuid.UUID
		if id, err = hits[0].UUID(store.ColID); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, domain.ErrProviderUnavailable, err)
		}
		out, err = p.update(ctx, tx, schema, id, patch)
	default:
		err = fmt.Errorf("%s: %d rows match: %w", op, len(hits), domain.ErrConflict)
	}
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, mapError(err, op)
	}
	return out, nil
}

// encode converts values SQLite cannot store natively.
func encode(rec store.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.UTC().Format(timeFormat)
		case uuid.UUID:
			out[k] = t.String()
		default:
			out[k] = v
		}
	}
	return out
}

func queryOne(ctx context.Context, q querier, op, query string, args []any) (store.Record, error) {
	recs, err := queryRecords(ctx, q, query, args)
	if err != nil {
		return nil, mapError(err, op)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return recs[0], nil
}

// queryRecords scans every row into a Record keyed by column name.
func queryRecords(ctx context.Context, q querier, query string, args []any) ([]store.Record, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []store.Record{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(store.Record, len(cols))
		for i, col := range cols {
			rec[col] = vals[i]
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func returning(schema store.Schema) string {
	return "RETURNING " + strings.Join(schema.QuotedColumns(), ", ")
}
