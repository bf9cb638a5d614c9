package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kumarlokesh/wordbreak/internal/dictionary"
	"github.com/kumarlokesh/wordbreak/internal/segmenter"
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [text...]",
		Short: "Check whether text can be segmented into words",
		Long: `Check whether text can be segmented into dictionary words.
The arguments are joined with single spaces. Without arguments the text is
read from standard input after a prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.loadDictionary()
			if err != nil {
				return err
			}

			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				text, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "enter a string: ")
				if err != nil {
					return err
				}
			}

			seg := a.newSegmenter(dict)
			start := time.Now()
			ok := seg.CanSegment(dictionary.Lower(text))
			took := time.Since(start)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, segmenter.Verdict(ok))
			fmt.Fprintf(out, "Word segmentation time: %s\n", took)
			return nil
		},
	}
}

// prompt writes msg and reads one line of input without its line ending
func prompt(in io.Reader, out io.Writer, msg string) (string, error) {
	fmt.Fprint(out, msg)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if err != nil && line == "" {
		return "", fmt.Errorf("no input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
