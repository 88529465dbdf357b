// Package postgres implements the record store directly over PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

// ProviderName is reported by Name.
const ProviderName = "postgres"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Provider stores records in PostgreSQL tables.
type Provider struct {
	pool Pool
	tx   *TxManager
	log  *slog.Logger
}

// Dial creates a lazily connecting pool for cfg.Endpoint.
func Dial(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*Provider, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return NewProvider(pool, logger), nil
}

// NewProvider wraps an existing pool.
func NewProvider(pool Pool, logger *slog.Logger) *Provider {
	return &Provider{
		pool: pool,
		tx:   NewTxManager(pool),
		log:  logger.With("adapter", ProviderName),
	}
}

// Name identifies the provider.
func (p *Provider) Name() string { return ProviderName }

// Probe pings the database.
func (p *Provider) Probe(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return mapError(err, "postgres: ping")
	}
	return nil
}

// Close closes the pool.
func (p *Provider) Close() error {
	p.pool.Close()
	return nil
}

// List returns every row in the collection's natural order.
func (p *Provider) List(ctx context.Context, c domain.Collection) ([]store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(schema.QuotedColumns()...).
		From(schema.Table).
		OrderBy(schema.OrderClauses()...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build list %s: %w", schema.Table, err)
	}

	rows, err := QuerierFromCtx(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list "+schema.Table)
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, mapError(err, "list "+schema.Table)
	}

	out := make([]store.Record, len(maps))
	for i, m := range maps {
		out[i] = store.Record(m)
	}
	return out, nil
}

// Create inserts rec and returns the stored row.
func (p *Provider) Create(ctx context.Context, c domain.Collection, rec store.Record) (store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(rec); err != nil {
		return nil, err
	}
	return p.insert(ctx, schema, rec)
}

func (p *Provider) insert(ctx context.Context, schema store.Schema, rec store.Record) (store.Record, error) {
	if len(rec) == 0 {
		return nil, fmt.Errorf("create %s: no columns: %w", schema.Table, domain.ErrValidation)
	}

	query, args, err := psql.Insert(schema.Table).
		SetMap(rec.Quoted()).
		Suffix(returning(schema)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build insert %s: %w", schema.Table, err)
	}

	return p.queryOne(ctx, "create "+schema.Table, query, args)
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
	return p.update(ctx, schema, id, patch)
}

func (p *Provider) update(ctx context.Context, schema store.Schema, id uuid.UUID, patch store.Record) (store.Record, error) {
	if len(patch) == 0 {
		return nil, fmt.Errorf("update %s %s: no columns: %w", schema.Table, id, domain.ErrValidation)
	}

	query, args, err := psql.Update(schema.Table).
		SetMap(patch.Quoted()).
		Where(sq.Eq{store.QuoteIdent(store.ColID): id}).
		Suffix(returning(schema)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build update %s: %w", schema.Table, err)
	}

	return p.queryOne(ctx, fmt.Sprintf("update %s %s", schema.Table, id), query, args)
}

// Delete removes the row with the given id.
func (p *Provider) Delete(ctx context.Context, c domain.Collection, id uuid.UUID) error {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return err
	}

	query, args, err := psql.Delete(schema.Table).
		Where(sq.Eq{store.QuoteIdent(store.ColID): id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("postgres: build delete %s: %w", schema.Table, err)
	}

	op := fmt.Sprintf("delete %s %s", schema.Table, id)
	tag, err := QuerierFromCtx(ctx, p.pool).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, op)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// UpsertByKey locks the matching rows and then updates or inserts in one
// transaction.
func (p *Provider) UpsertByKey(ctx context.Context, c domain.Collection, match, patch store.Record) (store.Record, error) {
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

	var out store.Record
	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		query, args, err := psql.Select(store.QuoteIdent(store.ColID)).
			From(schema.Table).
			Where(sq.Eq(match.Quoted())).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("postgres: build upsert lookup %s: %w", schema.Table, err)
		}

		rows, err := QuerierFromCtx(ctx, p.pool).Query(ctx, query, args...)
		if err != nil {
			return mapError(err, "upsert "+schema.Table)
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
		if err != nil {
			return mapError(err, "upsert "+schema.Table)
		}

		switch len(ids) {
		case 0:
			out, err = p.insert(ctx, schema, match.Merge(patch))
		case 1:
			out, err = p.update(ctx, schema, ids[0], patch)
		default:
			err = fmt.Errorf("upsert %s: %d rows match: %w", schema.Table, len(ids), domain.ErrConflict)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Provider) queryOne(ctx context.Context, op, query string, args []any) (store.Record, error) {
	rows, err := QuerierFromCtx(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, op)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, mapError(err, op)
	}
	return store.Record(row), nil
}

func returning(schema store.Schema) string {
	return "RETURNING " + strings.Join(schema.QuotedColumns(), ", ")
}
