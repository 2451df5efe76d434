package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "quantity unit and descriptors",
			input: "2 cups chopped fresh cilantro",
			want:  "cilantro",
		},
		{
			name:  "parenthetical removed",
			input: "Milk (2%)",
			want:  "milk",
		},
		{
			name:  "vulgar fraction with leading integer",
			input: "1 ½ lbs boneless skinless chicken breasts",
			want:  "chicken breasts",
		},
		{
			name:  "slash fraction",
			input: "3/4 cup shredded cheddar cheese",
			want:  "cheddar cheese",
		},
		{
			name:  "decimal quantity and metric unit",
			input: "1.5 kg ground beef",
			want:  "beef",
		},
		{
			name:  "hyphenated size word",
			input: "EXTRA-LARGE EGGS",
			want:  "eggs",
		},
		{
			name:  "hyphenated temperature descriptor",
			input: "room-temperature butter",
			want:  "butter",
		},
		{
			name:  "diet descriptor",
			input: "organic low-fat greek yogurt",
			want:  "greek yogurt",
		},
		{
			name:  "optionality phrase",
			input: "salt, to taste",
			want:  "salt",
		},
		{
			name:  "trim-state descriptors",
			input: "8 pitted kalamata olives",
			want:  "kalamata olives",
		},
		{
			name:  "color words survive",
			input: "black pepper",
			want:  "black pepper",
		},
		{
			name:  "green beans keep their color",
			input: "1 lb fresh green beans",
			want:  "green beans",
		},
		{
			name:  "non-ascii letters survive",
			input: "2 jalapeños (seeded)",
			want:  "jalapeños",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  "",
		},
		{
			name:  "punctuation only",
			input: "!!! --- ???",
			want:  "",
		},
		{
			name:  "digits only",
			input: "12345",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"2 cups chopped fresh cilantro",
		"1 ½ lbs boneless skinless chicken breasts",
		"Milk (2%)",
		"room-temperature butter",
		"EXTRA-LARGE EGGS",
		"salt, to taste",
		"3 chopped cherry tomatoes",
		"black pepper",
		"2 jalapeños (seeded)",
		"!!! --- ???",
		"",
		"premium artisanal sourdough bread",
		"1/2 cup freshly grated parmesan",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "Normalize not idempotent for %q", input)
	}
}
