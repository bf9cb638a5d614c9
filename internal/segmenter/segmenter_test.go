package segmenter_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kumarlokesh/wordbreak/internal/segmenter"
	"github.com/kumarlokesh/wordbreak/internal/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallDict(words ...string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestCanSegment_Scenarios(t *testing.T) {
	dict := smallDict("a", "i", "am", "an", "as")
	withPass := segmenter.PassNonLetters(dict.Contains)

	tests := []struct {
		name   string
		input  string
		oracle segmenter.Oracle
		window int
		want   bool
	}{
		{name: "two words", input: "amas", oracle: dict.Contains, window: 4, want: true},
		{name: "default window", input: "amas", oracle: dict.Contains, window: segmenter.DefaultMaxWordLen, want: true},
		{name: "unknown tail", input: "ax", oracle: withPass, window: segmenter.DefaultMaxWordLen, want: false},
		{name: "digit passes", input: "a1", oracle: withPass, window: segmenter.DefaultMaxWordLen, want: true},
		{name: "digit without pass-through", input: "a1", oracle: dict.Contains, window: segmenter.DefaultMaxWordLen, want: false},
		{name: "punctuation between words", input: "am,an.", oracle: withPass, window: 5, want: true},
		{name: "empty", input: "", oracle: dict.Contains, window: segmenter.DefaultMaxWordLen, want: true},
		{name: "unbounded", input: "iamanas", oracle: dict.Contains, window: 0, want: true},
		{name: "unknown characters", input: "zzz", oracle: withPass, window: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segmenter.CanSegment(tt.input, tt.oracle, tt.window))
		})
	}
}

func TestCanSegment_WindowExcludesLongWords(t *testing.T) {
	dict := smallDict("international")

	assert.True(t, segmenter.CanSegment("international", dict.Contains, 13))
	assert.False(t, segmenter.CanSegment("international", dict.Contains, 12))
}

func TestCanSegment_NeverAsksBeyondWindow(t *testing.T) {
	const window = 3
	longest := 0
	oracle := func(word string) bool {
		if n := utf8.RuneCountInString(word); n > longest {
			longest = n
		}
		return false
	}

	segmenter.CanSegment(strings.Repeat("ab", 20), oracle, window)
	assert.Equal(t, window, longest)
}

func TestCanSegment_MultiByteCandidates(t *testing.T) {
	dict := smallDict("misérables", "les")
	oracle := segmenter.PassNonLetters(dict.Contains)

	assert.True(t, segmenter.CanSegment("lesmisérables", oracle, segmenter.DefaultMaxWordLen))
	assert.True(t, segmenter.CanSegment("les misérables!", oracle, segmenter.DefaultMaxWordLen))
	assert.False(t, segmenter.CanSegment("lesmisérable", oracle, segmenter.DefaultMaxWordLen))
	// the window counts characters, not bytes
	assert.True(t, segmenter.CanSegment("misérables", dict.Contains, 10))
}

func TestTable(t *testing.T) {
	dict := smallDict("a", "am", "as")

	dp := segmenter.Table("amasx", dict.Contains, 4)
	require.Len(t, dp, 6)
	assert.Equal(t, []bool{true, true, true, true, true, false}, dp)

	assert.Equal(t, []bool{true}, segmenter.Table("", dict.Contains, 4))
}

// Every true cell must be reachable from an earlier true cell through a word
// inside the window, and every false cell must not be.
func TestTable_Consistent(t *testing.T) {
	dict := smallDict("a", "i", "am", "an", "as", "man", "sam")
	rng := rand.New(rand.NewSource(7))
	const window = 3

	for n := 0; n < 200; n++ {
		input := randomString(rng, "amnsix", rng.Intn(12))
		runes := []rune(input)
		dp := segmenter.Table(input, dict.Contains, window)
		require.True(t, dp[0])

		for i := 1; i < len(dp); i++ {
			reachable := false
			for j := max(0, i-window); j < i; j++ {
				if dp[j] && dict.Contains(string(runes[j:i])) {
					reachable = true
					break
				}
			}
			assert.Equal(t, reachable, dp[i], "input %q cell %d", input, i)
		}
	}
}

func TestCanSegment_WindowMatchesUnbounded(t *testing.T) {
	words := []string{"a", "i", "am", "an", "as", "man", "sam", "mais", "nasa"}
	dict := smallDict(words...)
	const window = 4 // longest word above
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 500; n++ {
		input := randomString(rng, "amnsi", rng.Intn(16))
		assert.Equal(t,
			segmenter.CanSegment(input, dict.Contains, 0),
			segmenter.CanSegment(input, dict.Contains, window),
			"input %q", input)
	}
}

func TestPassNonLetters(t *testing.T) {
	oracle := segmenter.PassNonLetters(smallDict("a", "go").Contains)

	tests := []struct {
		word string
		want bool
	}{
		{word: "1", want: true},
		{word: "!", want: true},
		{word: " ", want: true},
		{word: "’", want: true},
		{word: "a", want: true},
		{word: "b", want: false},
		{word: "é", want: false},
		{word: "12", want: false},
		{word: "go", want: true},
		{word: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, oracle(tt.word))
		})
	}
}

func TestSegmenter(t *testing.T) {
	dict := smallDict("a", "i", "am", "an", "as")

	s := segmenter.New(dict.Contains)
	assert.Equal(t, segmenter.DefaultMaxWordLen, s.MaxWordLen())
	assert.True(t, s.CanSegment("iam1"))
	assert.False(t, s.CanSegment("ax"))

	strict := segmenter.New(dict.Contains,
		segmenter.WithPassNonLetters(false),
		segmenter.WithMaxWordLen(1),
	)
	assert.Equal(t, 1, strict.MaxWordLen())
	assert.False(t, strict.CanSegment("iam1"))
	assert.False(t, strict.CanSegment("am"))
	assert.True(t, strict.CanSegment("ai"))
}

func randomString(rng *rand.Rand, alphabet string, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "Yes, The string can be segmented into meaningful words", segmenter.Verdict(true))
	assert.Equal(t, "No, The string cannot be segmented into meaningful words", segmenter.Verdict(false))
}
