package classifier

import (
	"regexp"
	"strings"
)

// corePatterns probe a normalized name for the ingredient word that should
// drive classification when descriptors survive normalization ("red onion",
// "cherry tomatoes"). Ordered; the first matching pattern wins.
var corePatterns = []*regexp.Regexp{
	regexp.MustCompile(`tomato(?:es)?`),
	regexp.MustCompile(`onions?`),
	regexp.MustCompile(`peppers?`),
	regexp.MustCompile(`cheddar|mozzarella|parmesan|feta|gouda|brie|provolone|ricotta|swiss|gruyere|cheese`),
	regexp.MustCompile(`chicken|beef|pork|turkey|lamb|steak|sausage|ham\b`),
	regexp.MustCompile(`salt\b|sugar|flour|butter|oil\b`),
	regexp.MustCompile(`milk|cream|yogurt|buttermilk`),
	regexp.MustCompile(`bread|tortillas?|pasta|noodles?|rice\b|bagels?`),
	regexp.MustCompile(`beans?|lentils?|chickpeas?`),
	regexp.MustCompile(`cornhusks?`),
	regexp.MustCompile(`olives?`),
	regexp.MustCompile(`potato(?:es)?`),
	regexp.MustCompile(`lettuce`),
	regexp.MustCompile(`bacon`),
}

// ExtractCore reduces a raw item name to its core ingredient term. It
// normalizes, drops short tokens, and probes the known-ingredient patterns;
// failing those it falls back to the first substantial token, then to the
// normalized string itself.
func ExtractCore(raw string) string {
	normalized := Normalize(raw)
	if normalized == "" {
		return ""
	}

	var tokens []string
	for _, tok := range strings.Fields(normalized) {
		if len(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}

	if len(tokens) >= 2 {
		for _, re := range corePatterns {
			if match := re.FindString(normalized); match != "" {
				return match
			}
		}
		for _, tok := range tokens {
			if len(tok) > 3 {
				return tok
			}
		}
	}

	return normalized
}
