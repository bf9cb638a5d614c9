package main

import (
	"fmt"

	"github.com/kumarlokesh/wordbreak/internal/dictionary"
	"github.com/spf13/cobra"
)

func newLookupCommand(a *app) *cobra.Command {
	var prefix bool

	cmd := &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Report whether words are in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.loadDictionary()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				word := dictionary.Lower(arg)
				if prefix {
					for _, w := range dict.KeysWithPrefix(word) {
						fmt.Fprintln(out, w)
					}
					continue
				}
				fmt.Fprintf(out, "%s\t%t\n", word, dict.Contains(word))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&prefix, "prefix", false, "List every word starting with the given prefixes instead")
	return cmd
}
