package haikufinder

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var wordRegex = regexp.MustCompile("^[a-zA-Z]+$")

// IsWord reports whether token is a run of ASCII letters. Tokens carrying
// digits, hyphens, or leftover markup are not words and never take part in
// a haiku.
func IsWord(token string) bool {
	return wordRegex.MatchString(token)
}

// Match is a contiguous span of tokens whose word syllables fill exactly
// 5, then 7, then 5. Start is the span's index into the scanned sequence.
type Match struct {
	Start  int
	Tokens []string
}

// String joins the matched tokens with single spaces, keeping the trailing
// separator, which is the historical output format for a found haiku.
func (m Match) String() string {
	var result strings.Builder
	for _, token := range m.Tokens {
		result.WriteString(token)
		result.WriteByte(' ')
	}
	return result.String()
}

// Scanner finds haikus embedded in a token sequence. It holds no state
// between scans beyond the Counter it borrows.
type Scanner struct {
	counter *Counter
}

func NewScanner(counter *Counter) *Scanner {
	return &Scanner{counter: counter}
}

// Scan walks tokens looking for 5-7-5 syllable runs and returns every match
// in order of its starting index. Candidate windows may overlap: after a
// match at i the search resumes at i+1, not after the matched span.
//
// A window grows one word at a time. The first branch below that holds wins;
// zero-syllable words always land in the first open line. Non-word tokens
// end a window rather than being skipped, and a window only closes when the
// word AFTER the completed 5-7-5 run overflows every line, so a run flush
// against the end of the sequence is never emitted.
func (s *Scanner) Scan(tokens []string) []Match {
	var matches []Match
	for i := 0; i < len(tokens); i++ {
		if !IsWord(tokens[i]) {
			continue
		}
		count := s.counter.Count(tokens[i])
		if count > 5 {
			continue // no haiku line can open with this word
		}
		line1, line2, line3 := count, 0, 0
	window:
		for j := i + 1; j < len(tokens); j++ {
			if !IsWord(tokens[j]) {
				break
			}
			count := s.counter.Count(tokens[j])
			switch {
			case count+line1 <= 5:
				line1 += count
			case count+line2 <= 7 && line1 == 5:
				line2 += count
			case count+line3 <= 5 && line2 == 7 && line1 == 5:
				line3 += count
			case line1 == 5 && line2 == 7 && line3 == 5:
				matches = append(matches, Match{Start: i, Tokens: tokens[i:j]})
				break window
			default:
				break window // budget exceeded with no exact fill
			}
		}
	}
	return matches
}

// WriteReport prints one line per match followed by a summary count.
func WriteReport(w io.Writer, matches []Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintln(w, m.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Found %d haikus.\n", len(matches))
	return err
}

// Tokenize splits r into tokens on literal spaces, line by line, dropping
// empty tokens. Punctuation stays attached to its token.
func Tokenize(r io.Reader) ([]string, error) {
	var tokens []string
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		for _, token := range strings.Split(lines.Text(), " ") {
			if token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens, lines.Err()
}
