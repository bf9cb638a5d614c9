// Package dictionary fills a trie from the seed word set and a word list.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/kumarlokesh/wordbreak/internal/profile"
	"github.com/kumarlokesh/wordbreak/internal/trie"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMinWordLen is the shortest list entry, in characters, that is
// loaded. Shorter tokens only enter the dictionary through SeedWords.
const DefaultMinWordLen = 3

// SeedWords are inserted regardless of length, before the word list.
var SeedWords = []string{
	"a", "'s", "i", "am", "an", "as", "at",
	"be", "by", "do", "go", "he", "et",
	"if", "in", "is", "it", "me",
	"my", "no", "of", "on", "or",
	"so", "to", "up", "us", "we", "dr",
	"st", "nd", "rd", "s",
	"misérables", "villermé’s", "de l’état", "employés",
}

// ErrNoWords is returned by Build when nothing was loaded
var ErrNoWords = errors.New("dictionary is empty")

// Lower lowercases s the same way list entries are lowercased. A Caser
// keeps state, so each call gets its own.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// LoadStats describes one pass over a word list
type LoadStats struct {
	Lines    int // lines read
	Inserted int // lines handed to the trie
	Skipped  int // lines shorter than the minimum length
}

// Load reads one word per line from r and inserts each into t after
// trimming surrounding whitespace and lowercasing. Lines with fewer than
// minLen characters are skipped.
func Load(r io.Reader, t *trie.Trie, minLen int) (LoadStats, error) {
	var stats LoadStats
	lower := cases.Lower(language.Und)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		word := lower.String(strings.TrimSpace(scanner.Text()))
		if utf8.RuneCountInString(word) < minLen {
			stats.Skipped++
			continue
		}
		t.Insert(word)
		stats.Inserted++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read word list at line %d: %w", stats.Lines+1, err)
	}
	return stats, nil
}

// LoadFile is Load over the file at path
func LoadFile(path string, t *trie.Trie, minLen int) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return Load(f, t, minLen)
}

// Options controls Build
type Options struct {
	Path       string // word list file; empty loads only the seeds
	MinWordLen int
	Seed       bool
	Logger     zerolog.Logger
}

// Stats summarises a Build
type Stats struct {
	LoadStats
	Seeded int            // seed words inserted
	Words  int            // distinct words in the trie
	Report profile.Report // time and memory spent building
}

// Build creates a trie holding the seed words (when enabled) and the
// entries of the word list at opts.Path.
func Build(opts Options) (*trie.Trie, Stats, error) {
	if opts.MinWordLen <= 0 {
		opts.MinWordLen = DefaultMinWordLen
	}

	t := trie.New()
	var stats Stats
	report, err := profile.Measure(func() error {
		if opts.Seed {
			for _, w := range SeedWords {
				t.Insert(w)
			}
			stats.Seeded = len(SeedWords)
		}
		if opts.Path == "" {
			return nil
		}
		loaded, err := LoadFile(opts.Path, t, opts.MinWordLen)
		stats.LoadStats = loaded
		return err
	})
	stats.Report = report
	stats.Words = t.Len()
	if err != nil {
		return nil, stats, err
	}
	if stats.Words == 0 {
		return nil, stats, ErrNoWords
	}

	opts.Logger.Info().
		Str("path", opts.Path).
		Int("lines", stats.Lines).
		Int("skipped", stats.Skipped).
		Int("seeded", stats.Seeded).
		Int("words", stats.Words).
		Dur("took", report.Duration).
		Str("heap_in_use", humanize.IBytes(report.HeapInUse)).
		Msg("Dictionary built")

	return t, stats, nil
}
