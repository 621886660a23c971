package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-placenorm/internal/corpus"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var top int

	cmd := &cobra.Command{
		Use:   "analyze PATH...",
		Short: "Report how the table handles a corpus of place names",
		Long: `Tokenize and normalize every name in the given corpus files or
directories (*.txt) and report token statistics, key collisions and
letters the table does not map.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := corpus.Load(args)
			if err != nil {
				return err
			}

			start := time.Now()
			report, err := corpus.Analyze(cmd.Context(), ctx.table, files, corpus.Options{Workers: workers})
			if err != nil {
				return err
			}
			ctx.logger.Debug("corpus analyzed",
				slog.Int("files", len(files)),
				slog.Int("names", report.Total.Names),
				slog.Duration("elapsed", time.Since(start)),
			)

			return report.Render(cmd.OutOrStdout(), top)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "Files analyzed in parallel (default: number of CPUs)")
	cmd.Flags().IntVar(&top, "top", 20, "Collisions and unmapped letters to list (0 for all)")

	return cmd
}
