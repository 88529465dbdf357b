package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/memory"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

func newSeedCmd() *cobra.Command {
	var (
		check bool
		file  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the embedded demo dataset, or check a seed file",
		Long: `Without flags, seed prints the YAML dataset served in fallback mode.
With --check it parses the dataset (or --file) and prints record counts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !check && file == "" {
				_, err := out.Write(memory.DefaultSeedYAML())
				return err
			}

			var (
				data memory.Dataset
				err  error
			)
			if file != "" {
				data, err = memory.LoadSeedFile(file, time.Now())
			} else {
				data, err = memory.DefaultSeed(time.Now())
			}
			if err != nil {
				return err
			}

			for _, c := range domain.Collections {
				fmt.Fprintf(out, "%-17s %d\n", c, data.Count(c))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Parse the dataset and print record counts")
	cmd.Flags().StringVar(&file, "file", "", "Seed file to check instead of the embedded dataset")
	return cmd
}
