package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/gateway"
)

func newProbeCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Run provider selection once and report the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			session, err := gateway.Open(cmd.Context(), cfg.Store, gateway.WithLogger(opts.logger(cmd, cfg.Log)))
			if err != nil {
				return err
			}
			defer session.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "driver:   %s\n", cfg.Store.Driver)
			fmt.Fprintf(out, "provider: %s\n", session.ProviderName())
			fmt.Fprintf(out, "fallback: %t\n", session.IsFallbackMode())
			if session.IsFallbackMode() {
				fmt.Fprintf(out, "reason:   %s\n", session.FallbackReason())
				if strict {
					return fmt.Errorf("probe: running on the fallback dataset")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the session falls back")
	return cmd
}
