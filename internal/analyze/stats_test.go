package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		term  string
		want  Stats
	}{
		{
			name:  "empty",
			input: "",
			term:  "thread",
			want:  Stats{},
		},
		{
			name:  "single terminated line",
			input: "hello world\n",
			term:  "thread",
			want:  Stats{Chars: 12, Lines: 1, Words: 2},
		},
		{
			name:  "unterminated trailing line still counts",
			input: "hello world\ntrailing",
			term:  "thread",
			want:  Stats{Chars: 21, Lines: 2, Words: 3},
		},
		{
			name:  "blank line counts as a line",
			input: "a\n\nb\n",
			term:  "thread",
			want:  Stats{Chars: 5, Lines: 3, Words: 2},
		},
		{
			name:  "terminator accounted even without one",
			input: "abc",
			term:  "thread",
			want:  Stats{Chars: 4, Lines: 1, Words: 1},
		},
		{
			name:  "substring containment per token",
			input: "threading thread thre4d unthreaded\n",
			term:  "thread",
			want:  Stats{Chars: 35, Lines: 1, Words: 4, TermOccurrences: 3},
		},
		{
			name:  "case sensitive matching",
			input: "Thread THREAD thread\n",
			term:  "thread",
			want:  Stats{Chars: 21, Lines: 1, Words: 3, TermOccurrences: 1},
		},
		{
			name:  "tabs and runs of spaces delimit words",
			input: "one\ttwo   three \t four\n",
			term:  "two",
			want:  Stats{Chars: 23, Lines: 1, Words: 4, TermOccurrences: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanText([]byte(tt.input), tt.term)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStats_Add(t *testing.T) {
	s := Stats{Chars: 1, Lines: 2, Words: 3, TermOccurrences: 4}
	s.Add(Stats{Chars: 10, Lines: 20, Words: 30, TermOccurrences: 40})

	assert.Equal(t, Stats{Chars: 11, Lines: 22, Words: 33, TermOccurrences: 44}, s)
}
