package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"old=old",
		"water=wa-ter",
		"HAIKU 2",
		"mountain=moun-tain",
		"SYLLABLE 3 2",
		"",
		"notaword",
		"bad=",
		"worse x",
	}, "\n")

	counts, err := Load(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{
		"old":      1,
		"water":    2,
		"haiku":    2,
		"mountain": 2,
		"syllable": 3,
	}, counts)
}

func TestLoad_Empty(t *testing.T) {
	counts, err := Load(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Len(t, counts, 0)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line  string
		word  string
		count int
		ok    bool
	}{
		{"frog=frog", "frog", 1, true},
		{"beautiful=beau-ti-ful", "beautiful", 3, true},
		{"doubled=dou--bled", "doubled", 2, true},
		{"POND 1", "pond", 1, true},
		{"pond 0", "", 0, false},
		{"pond -1", "", 0, false},
		{"=orphan", "", 0, false},
		{"   ", "", 0, false},
		{"loner", "", 0, false},
	}
	for _, tt := range tests {
		word, count, ok := parseLine(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		if ok {
			assert.Equal(t, tt.word, word, tt.line)
			assert.Equal(t, tt.count, count, tt.line)
		}
	}
}
