// Package segmenter decides whether a string is a concatenation of
// dictionary words.
package segmenter

import (
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// DefaultMaxWordLen is the longest candidate word, in characters, that the
// scan considers. Words longer than this are never matched.
const DefaultMaxWordLen = 30

// Oracle reports whether a candidate substring is a word
type Oracle func(word string) bool

// CanSegment reports whether s can be split into a sequence of words
// accepted by isWord, considering candidates of at most maxWordLen
// characters. A maxWordLen of zero or less removes the bound.
func CanSegment(s string, isWord Oracle, maxWordLen int) bool {
	dp := Table(s, isWord, maxWordLen)
	return dp[len(dp)-1]
}

// Table fills and returns the segmentation table for s. Entry i is true
// when the first i characters of s split into words; entry 0 is always true.
func Table(s string, isWord Oracle, maxWordLen int) []bool {
	offsets := runeOffsets(s)
	n := len(offsets) - 1

	dp := make([]bool, n+1)
	dp[0] = true
	for i := 1; i <= n; i++ {
		start := 0
		if maxWordLen > 0 && i > maxWordLen {
			start = i - maxWordLen
		}
		for j := start; j < i; j++ {
			if dp[j] && isWord(s[offsets[j]:offsets[i]]) {
				dp[i] = true
				break
			}
		}
	}
	return dp
}

// runeOffsets returns the byte offset of every character boundary in s,
// including len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// PassNonLetters wraps isWord so that a candidate made of exactly one
// non-letter character (a digit, punctuation mark, symbol or space) always
// counts as a word. Numerals and punctuation then pass through segmentation
// unchanged. Single letters and longer candidates still go to isWord.
func PassNonLetters(isWord Oracle) Oracle {
	return func(word string) bool {
		r, size := utf8.DecodeRuneInString(word)
		if size > 0 && size == len(word) && !unicode.IsLetter(r) {
			return true
		}
		return isWord(word)
	}
}

// Segmenter binds an oracle and a window so callers can ask repeated
// questions against the same dictionary.
type Segmenter struct {
	isWord         Oracle
	maxWordLen     int
	passNonLetters bool
	logger         zerolog.Logger
}

// Option configures a Segmenter
type Option func(*Segmenter)

// WithMaxWordLen sets the window bound
func WithMaxWordLen(n int) Option {
	return func(s *Segmenter) {
		s.maxWordLen = n
	}
}

// WithPassNonLetters toggles the single non-letter pass-through rule
func WithPassNonLetters(enabled bool) Option {
	return func(s *Segmenter) {
		s.passNonLetters = enabled
	}
}

// WithLogger sets the logger for the segmenter
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Segmenter) {
		s.logger = logger
	}
}

// New creates a Segmenter over isWord. By default it uses
// DefaultMaxWordLen and the non-letter pass-through rule.
func New(isWord Oracle, opts ...Option) *Segmenter {
	s := &Segmenter{
		isWord:         isWord,
		maxWordLen:     DefaultMaxWordLen,
		passNonLetters: true,
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.passNonLetters {
		s.isWord = PassNonLetters(s.isWord)
	}
	return s
}

// MaxWordLen returns the window bound in use
func (s *Segmenter) MaxWordLen() int {
	return s.maxWordLen
}

// CanSegment reports whether text splits into dictionary words
func (s *Segmenter) CanSegment(text string) bool {
	start := time.Now()
	ok := CanSegment(text, s.isWord, s.maxWordLen)
	s.logger.Debug().
		Int("chars", utf8.RuneCountInString(text)).
		Bool("segmentable", ok).
		Dur("took", time.Since(start)).
		Msg("Segmented query")
	return ok
}

const (
	yesVerdict = "Yes, The string can be segmented into meaningful words"
	noVerdict  = "No, The string cannot be segmented into meaningful words"
)

// Verdict renders a segmentation result as a sentence
func Verdict(segmentable bool) string {
	if segmentable {
		return yesVerdict
	}
	return noVerdict
}
