package haikufinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount_Heuristic(t *testing.T) {
	tests := []struct {
		input         string
		expectedCount int
	}{
		{"hello", 2},
		{"haiku", 2},
		{"old", 1},
		{"frog", 1},
		{"green", 1},
		{"moon", 1},
		{"quiet", 2},
		{"through", 1},
		{"sound", 1},
		{"mountain", 2},
		{"poetry", 3},
		{"evening", 3},
		{"strength", 1},
		{"splash", 1},
		{"candle", 2},
		{"waterfall", 2},
		// the a-consonant-e cluster deletion undercounts this one
		{"water", 1},
		{"", 0},
	}

	for _, tt := range tests {
		c := NewCounter(nil)
		assert.Equal(t, tt.expectedCount, c.Count(tt.input), tt.input)
	}
}

// The heuristic has no floor: silent-e and cluster deductions can drive a
// word all the way to zero. These pin the behavior down rather than bless it.
func TestCount_NoClamp(t *testing.T) {
	c := NewCounter(nil)
	assert.Equal(t, 0, c.Count("the"))
	assert.Equal(t, 0, c.Count("eye"))
	assert.Equal(t, 0, c.Count("aye"))
}

func TestCount_Normalization(t *testing.T) {
	c := NewCounter(nil)
	assert.Equal(t, 2, c.Count("Hello"))
	assert.Equal(t, 2, c.Count("\"hello,\""))
	assert.Equal(t, 2, c.Count("hello!!!?"))
	assert.Equal(t, 1, c.Count("Don't"))
}

func TestCount_DictionaryPrecedence(t *testing.T) {
	c := NewCounter(map[string]int{"running": 2, "water": 2})
	assert.Equal(t, 2, c.Count("running"))
	assert.Equal(t, 2, c.Count("Running!"))
	// seeded count wins over the heuristic's answer of 1
	assert.Equal(t, 2, c.Count("water"))
}

func TestCount_SuffixFallbacks(t *testing.T) {
	c := NewCounter(map[string]int{"jump": 1, "running": 2})
	assert.Equal(t, 1, c.Count("jumped"), "ed form keeps the root count")
	assert.Equal(t, 2, c.Count("jumpes"), "es form adds one")
	assert.Equal(t, 1, c.Count("jumps"), "plural keeps the root count")
	assert.Equal(t, 2, c.Count("runnings"), "plural of a seeded word")
}

// Root resolution strips a literal prefix; it never undoes respelling, so
// "studies" misses the cached "study" and falls through to the heuristic.
func TestCount_InflectionIsLiteralPrefix(t *testing.T) {
	c := NewCounter(map[string]int{"study": 2})
	assert.Equal(t, 2, c.Count("studies"))
	_, viaHeuristic := c.counts["studies"]
	assert.True(t, viaHeuristic, "studies should have been computed and memoized, not resolved from study")
}

func TestCount_Memoization(t *testing.T) {
	c := NewCounter(nil)
	assert.Equal(t, 2, c.Count("hello"))
	count, ok := c.counts["hello"]
	assert.True(t, ok, "heuristic results are written through to the cache")
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, c.Count("hello"), "second call answers from cache")
}

func TestCount_FallbackHitsDontMemoize(t *testing.T) {
	c := NewCounter(map[string]int{"jump": 1})
	assert.Equal(t, 1, c.Count("jumped"))
	_, ok := c.counts["jumped"]
	assert.False(t, ok, "inflection fallback answers without writing a new entry")
	assert.Equal(t, 1, c.Count("jumps"))
	_, ok = c.counts["jumps"]
	assert.False(t, ok, "plural fallback answers without writing a new entry")
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"\"Don't!\"", "hello", "A.B.C.", "3rd,"}
	for _, input := range inputs {
		once := normalize(input)
		assert.Equal(t, once, normalize(once), input)
	}
}
