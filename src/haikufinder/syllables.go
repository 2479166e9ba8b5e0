package haikufinder

import (
	"regexp"
	"strings"
)

// Counter estimates the number of syllables in English words. Lookups go
// through a dictionary cache first; words the dictionary doesn't know fall
// back to a rule-based heuristic whose results are memoized, so repeated
// words are only ever computed once per Counter.
//
// Heuristic results can land on zero (or below, for pathological letter
// runs): trailing-e and vowel-cluster deductions are applied without a
// floor. Dictionary-seeded counts are always at least 1.
//
// A Counter is not safe for concurrent use; scans running in parallel
// should each hold their own.
type Counter struct {
	counts map[string]int
}

// NewCounter returns a Counter seeded with the given word counts. Keys are
// expected in the normalized (lowercase, punctuation-free) form produced by
// dict.Load. A nil seed yields a purely heuristic Counter.
func NewCounter(seed map[string]int) *Counter {
	counts := make(map[string]int, len(seed))
	for word, count := range seed {
		counts[word] = count
	}
	return &Counter{counts: counts}
}

// Count returns the estimated syllable count for raw. The raw token is
// normalized before lookup; punctuation and case never affect the result.
func (c *Counter) Count(raw string) int {
	word := normalize(raw)
	if count, ok := c.counts[word]; ok {
		return count
	}
	// past-tense and plural-ish forms of known words resolve to their root.
	// The root is taken by literal prefix stripping, never by respelling,
	// so "studies" does not resolve through "study".
	if len(word) >= 2 {
		if count, ok := c.counts[word[:len(word)-2]]; ok {
			if strings.HasSuffix(word, "ed") {
				return count
			}
			if strings.HasSuffix(word, "es") {
				return count + 1
			}
		}
	}
	if len(word) >= 1 {
		if count, ok := c.counts[word[:len(word)-1]]; ok && strings.HasSuffix(word, "s") {
			return count
		}
	}
	count := heuristicCount(word)
	c.counts[word] = count
	return count
}

// Each pattern gets exactly one find-and-delete pass, in this order, against
// a working copy of the word that shrinks as patterns hit. The repeated
// entries are deliberate: deleting an earlier cluster can expose a second
// occurrence at a new position.
var diphthongs = []*regexp.Regexp{
	regexp.MustCompile("ea|ee"),
	regexp.MustCompile("ai|ei|a[^aeiou]e"),
	regexp.MustCompile("ou|oo|u[^aeiou]e"),
	regexp.MustCompile("ay"),
	regexp.MustCompile("igh|ie|[aeiou]y[aeiou]"),
	regexp.MustCompile("oi|oy"),
	regexp.MustCompile("ai|ei|a[^aeiou]e"),
	regexp.MustCompile("ou"),
}

var triphthongs = []*regexp.Regexp{
	regexp.MustCompile("aye"),
	regexp.MustCompile("i[^aeiou]e"),
	regexp.MustCompile("oya"),
	regexp.MustCompile("ay"),
	regexp.MustCompile("owe"),
}

var silentLE = regexp.MustCompile("^[a-z]+les?$")

func heuristicCount(word string) int {
	count := 0
	for i := 0; i < len(word); i++ {
		if isVowel(word[i]) {
			count++
		}
	}
	if (count == 0 && strings.Contains(word, "y")) || strings.HasSuffix(word, "y") {
		count++ // y carries the vowel sound
	}
	if strings.HasSuffix(word, "e") && count != 0 {
		count-- // silent e
	}
	working := word
	for _, pattern := range diphthongs {
		working, count = deleteFirstMatch(pattern, working, count)
	}
	for _, pattern := range triphthongs {
		working, count = deleteFirstMatch(pattern, working, count)
	}
	// the -le rule tests the intact word, not the shrunken working copy
	if silentLE.MatchString(word) {
		count++
	}
	return count
}

func deleteFirstMatch(pattern *regexp.Regexp, word string, count int) (string, int) {
	loc := pattern.FindStringIndex(word)
	if loc == nil {
		return word, count
	}
	return word[:loc[0]] + word[loc[1]:], count - 1
}

func isVowel(b byte) bool {
	return b == 'a' || b == 'e' || b == 'i' || b == 'o' || b == 'u'
}

// normalize lowercases raw and strips sentence punctuation. It is a
// projection: normalizing an already-normalized word changes nothing.
func normalize(raw string) string {
	lower := strings.ToLower(raw)
	var result strings.Builder
	for i := 0; i < len(lower); i++ {
		if !isPunctuation(lower[i]) {
			result.WriteByte(lower[i])
		}
	}
	return result.String()
}

func isPunctuation(b byte) bool {
	switch b {
	case '!', '.', '?', ',', ':', ';', '"', '\'':
		return true
	}
	return false
}
