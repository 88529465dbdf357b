package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/postgres"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/sqlite"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the configured SQL store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Endpoint == "" {
				return fmt.Errorf("migrate: STORE_ENDPOINT is not set")
			}
			log := opts.logger(cmd, cfg.Log)
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch cfg.Store.Driver {
			case config.DriverPostgres:
				n, err := postgres.Migrate(ctx, cfg.Store.Endpoint)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "postgres: %d migration(s) applied\n", n)
			case config.DriverSQLite:
				p, err := sqlite.Dial(ctx, cfg.Store, log)
				if err != nil {
					return err
				}
				defer p.Close()
				fmt.Fprintln(out, "sqlite: schema up to date")
			default:
				return fmt.Errorf("migrate: driver %q manages its own schema", cfg.Store.Driver)
			}
			return nil
		},
	}
}
