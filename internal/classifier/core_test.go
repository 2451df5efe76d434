package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCore(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "known ingredient wins over qualifier",
			input: "3 chopped cherry tomatoes",
			want:  "tomatoes",
		},
		{
			name:  "color qualifier before onion",
			input: "red onion",
			want:  "onion",
		},
		{
			name:  "pepper extracted from spice name",
			input: "black pepper",
			want:  "pepper",
		},
		{
			name:  "cheese variety",
			input: "sharp white cheddar",
			want:  "cheddar",
		},
		{
			name:  "meat word",
			input: "boneless chicken thighs",
			want:  "chicken",
		},
		{
			name:  "single token returned as is",
			input: "cilantro",
			want:  "cilantro",
		},
		{
			name:  "no known ingredient falls back to first long token",
			input: "xyzzy nonsense item",
			want:  "xyzzy",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCore(tt.input))
		})
	}
}
