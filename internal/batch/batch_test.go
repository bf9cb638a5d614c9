package batch_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/kumarlokesh/wordbreak/internal/batch"
	"github.com/kumarlokesh/wordbreak/internal/segmenter"
	"github.com/kumarlokesh/wordbreak/internal/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	dict := trie.New()
	for _, w := range []string{"a", "i", "am", "an", "as"} {
		dict.Insert(w)
	}
	s := segmenter.New(dict.Contains)

	queries := []string{"amas", "ax", "a1", "iamanas", "zzz", "i"}
	results, err := batch.Run(context.Background(), queries, s.CanSegment, 3)
	require.NoError(t, err)

	want := []batch.Result{
		{Query: "amas", Segmentable: true},
		{Query: "ax", Segmentable: false},
		{Query: "a1", Segmentable: true},
		{Query: "iamanas", Segmentable: true},
		{Query: "zzz", Segmentable: false},
		{Query: "i", Segmentable: true},
	}
	assert.Equal(t, want, results)
}

func TestRun_LimitsWorkers(t *testing.T) {
	var running, peak atomic.Int32
	release := make(chan struct{})
	fn := func(string) bool {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		<-release
		running.Add(-1)
		return true
	}

	queries := make([]string, 20)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := batch.Run(context.Background(), queries, fn, 2)
		assert.NoError(t, err)
	}()

	close(release)
	<-done
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.Run(ctx, []string{"a", "b"}, func(string) bool { return true }, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	results, err := batch.Run(context.Background(), nil, func(string) bool { return true }, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestReadQueries(t *testing.T) {
	queries, err := batch.ReadQueries(strings.NewReader("amas\n\n  ax  \n\t\na1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"amas", "ax", "a1"}, queries)
}
