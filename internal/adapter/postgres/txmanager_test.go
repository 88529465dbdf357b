package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/postgres"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/postgres/testhelper"
)

// entryExists checks whether a content entry with the given ID exists in the database.
func entryExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM content_entries WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("entryExists query: %v", err)
	}
	return exists
}

func insertEntry(ctx context.Context, q postgres.Querier, id uuid.UUID) error {
	_, err := q.Exec(ctx,
		`INSERT INTO content_entries (id, section, key, value) VALUES ($1, $2, $3, $4)`,
		id, "tx-"+id.String()[:8], "title", "value",
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertEntry(ctx, postgres.QuerierFromCtx(ctx, pool), id)
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !entryExists(t, pool, id) {
		t.Fatal("expected entry to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertEntry(ctx, postgres.QuerierFromCtx(ctx, pool), id); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if entryExists(t, pool, id) {
		t.Fatal("expected entry NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		if entryExists(t, pool, id) {
			t.Fatal("expected entry NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertEntry(ctx, postgres.QuerierFromCtx(ctx, pool), id); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}
