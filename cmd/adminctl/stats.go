package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/gateway"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/service/analytics"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the admin dashboard as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			log := opts.logger(cmd, cfg.Log)

			session, err := gateway.Open(cmd.Context(), cfg.Store, gateway.WithLogger(log))
			if err != nil {
				return err
			}
			defer session.Close()

			loc := cfg.Dashboard.Location
			if loc == nil {
				loc = time.UTC
			}
			svc := analytics.NewService(log, session.Complaints(), session.Messages(), session, loc)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if year != 0 {
				trend, err := svc.Trend(cmd.Context(), year)
				if err != nil {
					return err
				}
				return enc.Encode(trend)
			}

			d, err := svc.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return enc.Encode(d)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Print only the monthly trend of this year")
	return cmd
}
