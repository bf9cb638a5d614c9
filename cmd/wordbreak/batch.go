package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kumarlokesh/wordbreak/internal/batch"
	"github.com/kumarlokesh/wordbreak/internal/dictionary"
	"github.com/spf13/cobra"
)

func newBatchCommand(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Check one query per line from a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open queries: %w", err)
				}
				defer f.Close()
				in = f
			}

			queries, err := batch.ReadQueries(in)
			if err != nil {
				return err
			}

			dict, err := a.loadDictionary()
			if err != nil {
				return err
			}
			seg := a.newSegmenter(dict)

			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}

			lowered := make([]string, len(queries))
			for i, q := range queries {
				lowered[i] = dictionary.Lower(q)
			}

			start := time.Now()
			results, err := batch.Run(cmd.Context(), lowered, seg.CanSegment, workers)
			if err != nil {
				return err
			}
			a.logger.Info().
				Int("queries", len(results)).
				Int("workers", workers).
				Dur("took", time.Since(start)).
				Msg("Batch finished")

			out := cmd.OutOrStdout()
			for i, r := range results {
				fmt.Fprintf(out, "%t\t%s\n", r.Segmentable, queries[i])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent queries (defaults to batch.workers)")
	return cmd
}
