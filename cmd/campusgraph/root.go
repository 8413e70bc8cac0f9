package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusgraph/dataset"
	"github.com/katalvlaran/campusgraph/report"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "campusgraph",
		Short:         "Trees, graph traversals, shortest paths and MST over a sample campus",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ds, err := dataset.Default()
			if err != nil {
				return err
			}
			logger.Debug("dataset loaded",
				slog.Int("buildings", len(ds.Buildings)),
				slog.Int("edges", len(ds.Edges)),
			)

			return report.Run(cmd.OutOrStdout(), ds, logger)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each report stage to stderr")

	return cmd
}
