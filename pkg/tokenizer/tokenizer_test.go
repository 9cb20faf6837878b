package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		delimiter string
		want      []string
	}{
		{
			name:      "simple comma",
			line:      "a,b,c",
			delimiter: ",",
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "multi-character delimiter",
			line:      "10.5, 60, 7",
			delimiter: ", ",
			want:      []string{"10.5", "60", "7"},
		},
		{
			name:      "trailing newline stripped",
			line:      "a,b\n",
			delimiter: ",",
			want:      []string{"a", "b"},
		},
		{
			name:      "trailing CRLF stripped",
			line:      "a,b\r\n",
			delimiter: ",",
			want:      []string{"a", "b"},
		},
		{
			name:      "empty fields preserved",
			line:      "a,,c",
			delimiter: ",",
			want:      []string{"a", "", "c"},
		},
		{
			name:      "no delimiter present",
			line:      "abc",
			delimiter: ",",
			want:      []string{"abc"},
		},
		{
			// No quoting: a delimiter inside a field is a boundary.
			name:      "delimiter inside quotes still splits",
			line:      `"a,b",c`,
			delimiter: ",",
			want:      []string{`"a`, `b"`, "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.line, tt.delimiter))
		})
	}
}

func TestSplitPure(t *testing.T) {
	// Same input, same output, no cross-call state.
	first := Split("a,b,c", ",")
	second := Split("x,y", ",")
	third := Split("a,b,c", ",")

	assert.Equal(t, []string{"x", "y"}, second)
	assert.Equal(t, first, third)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"already clean", "humidity", "humidity"},
		{"strips punctuation", "temp (C)", "tempC"},
		{"strips symbols keeps order", "a!b@1#2", "ab12"},
		{"mixed case preserved", "WindSpeed", "WindSpeed"},
		{"empty input empty output", "", ""},
		{"only junk", "!@#$", ""},
		{"unicode stripped", "tempéra", "tempra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.field))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{"temp (C)", "humidity", "", "a!b@1#2", "Wind Speed km/h"}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean should be idempotent for %q", in)
	}
}
