// Package dict loads word-to-syllable-count dictionaries used to seed a
// haikufinder.Counter. A dictionary is optional: callers that fail to load
// one can hand the Counter a nil seed and fall back to pure heuristics.
package dict

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load parses a syllable dictionary, one entry per line. Two formats are
// accepted and may be mixed in one file:
//
//	water=wa-ter    hyphenated form; the count is the number of parts
//	WATER 2         explicit count (extra counts after the first are ignored)
//
// Words are lowercased. Lines fitting neither format are skipped rather than
// failing the load, so a partially mangled dictionary still seeds what it can.
func Load(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		word, count, ok := parseLine(lines.Text())
		if !ok {
			continue
		}
		counts[word] = count
	}
	if err := lines.Err(); err != nil {
		return counts, err
	}
	return counts, nil
}

// LoadFile opens and parses the dictionary at path.
func LoadFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func parseLine(line string) (string, int, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", 0, false
	}
	if idx := strings.IndexByte(line, '='); idx > 0 {
		word := line[:idx]
		count := 0
		for _, part := range strings.Split(line[idx+1:], "-") {
			if part != "" {
				count++
			}
		}
		if count == 0 {
			return "", 0, false
		}
		return strings.ToLower(word), count, true
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, false
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 1 {
		return "", 0, false
	}
	return strings.ToLower(fields[0]), count, true
}
