package gateway

import (
	"context"
	"log/slog"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/postgres"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/postgrest"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/sqlite"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

// Dialer connects to a remote store. It must not probe: the session issues
// exactly one Probe after a successful dial.
type Dialer func(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (store.Provider, error)

// DefaultDialers returns the dialers of every supported driver.
func DefaultDialers() map[string]Dialer {
	return map[string]Dialer{
		config.DriverPostgREST: func(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (store.Provider, error) {
			return postgrest.Dial(ctx, cfg, log)
		},
		config.DriverPostgres: func(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (store.Provider, error) {
			return postgres.Dial(ctx, cfg, log)
		},
		config.DriverSQLite: func(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (store.Provider, error) {
			return sqlite.Dial(ctx, cfg, log)
		},
	}
}
