package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Current configuration:")
			fmt.Fprintf(out, "Word list: %s\n", cfg.Dictionary.Path)
			fmt.Fprintf(out, "Min word length: %d\n", cfg.Dictionary.MinWordLength)
			fmt.Fprintf(out, "Seed common words: %t\n", cfg.Dictionary.Seed)
			fmt.Fprintf(out, "Max word length: %d\n", cfg.Segmenter.MaxWordLength)
			fmt.Fprintf(out, "Pass non-letters: %t\n", cfg.Segmenter.PassNonLetters)
			fmt.Fprintf(out, "Batch workers: %d\n", cfg.Batch.Workers)
			fmt.Fprintf(out, "Server: %s\n", cfg.Server.Addr())
			fmt.Fprintf(out, "Log level: %s\n", cfg.Log.Level)
			return nil
		},
	}
}
