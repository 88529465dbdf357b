package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/app"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
)

// rootOptions are shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.Load()
	}
	return config.LoadFrom(o.configPath)
}

// logger writes to stderr so stdout stays machine readable.
func (o *rootOptions) logger(cmd *cobra.Command, cfg config.LogConfig) *slog.Logger {
	if o.verbose {
		cfg.Level = "debug"
	}
	return app.NewLoggerTo(cmd.ErrOrStderr(), cfg)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Operate the Labour Department site data layer",
		Long: `adminctl runs maintenance tasks against the configured record store.
Configuration is read like the server reads it: CONFIG_PATH or ./config.yaml,
overridden by environment variables.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newProbeCmd(opts),
		newStatsCmd(opts),
		newTokenCmd(opts),
		newSeedCmd(),
		newVersionCmd(),
	)
	return cmd
}
