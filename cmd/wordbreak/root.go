package main

import (
	"fmt"
	"io"

	"github.com/kumarlokesh/wordbreak/internal/config"
	"github.com/kumarlokesh/wordbreak/internal/dictionary"
	"github.com/kumarlokesh/wordbreak/internal/segmenter"
	"github.com/kumarlokesh/wordbreak/internal/trie"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	configPath string
	logLevel   string
	wordsPath  string

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "wordbreak",
		Short:         "Check whether text can be split into dictionary words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.wordsPath, "words", "", "Path to the word list, one word per line")

	cmd.AddCommand(
		newCheckCommand(a),
		newLookupCommand(a),
		newBatchCommand(a),
		newServeCommand(a),
		newConfigCommand(a),
	)
	return cmd
}

func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.wordsPath != "" {
		cfg.Dictionary.Path = a.wordsPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if cfg.Log.Pretty {
		logOut = zerolog.ConsoleWriter{Out: logOut}
	}

	a.cfg = cfg
	a.logger = zerolog.New(logOut).Level(level).With().Timestamp().Logger()
	return nil
}

// loadDictionary builds the trie from the seed words and the word list
func (a *app) loadDictionary() (*trie.Trie, error) {
	dict, _, err := dictionary.Build(dictionary.Options{
		Path:       a.cfg.Dictionary.Path,
		MinWordLen: a.cfg.Dictionary.MinWordLength,
		Seed:       a.cfg.Dictionary.Seed,
		Logger:     a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build dictionary: %w", err)
	}
	return dict, nil
}

func (a *app) newSegmenter(dict *trie.Trie) *segmenter.Segmenter {
	return segmenter.New(dict.Contains,
		segmenter.WithMaxWordLen(a.cfg.Segmenter.MaxWordLength),
		segmenter.WithPassNonLetters(a.cfg.Segmenter.PassNonLetters),
		segmenter.WithLogger(a.logger),
	)
}
