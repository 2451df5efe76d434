package classifier

import (
	"regexp"
	"strings"
)

// The normalization pipeline strips quantities, units, and descriptors from a
// raw item name, in a fixed order: parentheticals first so nested clauses
// never leak into later passes, then numerals and units so adjective patterns
// are not defeated by adjacent digits, then the adjective groups.
var (
	parentheticalRE = regexp.MustCompile(`\([^)]*\)`)

	vulgarFractionRE = regexp.MustCompile(`\d*\s*[½¼¾⅓⅔⅛⅜⅝⅞]`)
	slashFractionRE  = regexp.MustCompile(`\b\d+\s*/\s*\d+`)
	decimalRE        = regexp.MustCompile(`\b\d+\.\d+\b`)
	integerRE        = regexp.MustCompile(`\b\d+\b`)

	unitRE = regexp.MustCompile(`\b(fl\s*oz|cups?|tablespoons?|tbsp|teaspoons?|tsp|pounds?|lbs?|ounces?|oz|milliliters?|ml|liters?|l|grams?|g|kilograms?|kg|pints?|pt|quarts?|qt|gallons?|gal|cloves?|heads?|bunch(?:es)?|stalks?|sprigs?|pieces?|slices?|strips?|sticks?|cans?|jars?|bottles?|bags?|box(?:es)?|packages?|pkgs?|containers?)\b`)

	sizeRE = regexp.MustCompile(`\b(extra\s+large|small|medium|large|jumbo|mini|tiny|huge|giant|big)\b`)

	// Descriptor groups, applied in order. Color words stay in place: they
	// carry classification signal (black pepper, green beans, red pepper
	// flakes), so only ripeness terms are stripped from that group.
	descriptorREs = []*regexp.Regexp{
		// Freshness and preservation state.
		regexp.MustCompile(`\b(fresh|frozen|dried|canned|jarred|bottled|packaged|prepared|instant|refrigerated)\b`),
		// Cooking state.
		regexp.MustCompile(`\b(raw|cooked|uncooked|baked|roasted|grilled|fried|steamed|boiled|blanched|toasted|seared)\b`),
		// Cut state.
		regexp.MustCompile(`\b(chopped|diced|minced|sliced|shredded|grated|crushed|ground|julienned|cubed|quartered|halved|torn|crumbled|mashed|pureed|whole)\b`),
		// Degree adverbs.
		regexp.MustCompile(`\b(finely|coarsely|roughly|thinly|thickly|freshly|lightly|very)\b`),
		// Temperature and texture.
		regexp.MustCompile(`\b(beaten|melted|softened|chilled|cold|warm|hot|firm|soft|room\s+temperature)\b`),
		// Purity and diet.
		regexp.MustCompile(`\b(organic|low\s*fat|nonfat|non\s*fat|fat\s*free|reduced\s*fat|unsalted|salted|unsweetened|sweetened|gluten\s*free|sugar\s*free|low\s*sodium|pasteurized)\b`),
		// Trim state.
		regexp.MustCompile(`\b(peeled|unpeeled|seeded|deseeded|pitted|boneless|skinless|bone\s*in|skin\s*on|deveined|shelled|trimmed|stemmed|cored|husked|rinsed|drained|washed)\b`),
		// Ripeness.
		regexp.MustCompile(`\b(overripe|unripe|ripe|ripened)\b`),
		// Optionality and measure-less amounts.
		regexp.MustCompile(`\b(optional|to\s+taste|a\s+pinch\s+of|pinch\s+of|pinch|a\s+dash\s+of|dash|as\s+needed|for\s+garnish|for\s+serving|if\s+desired)\b`),
		// Marketing fluff.
		regexp.MustCompile(`\b(premium|gourmet|homemade|artisanal|artisan|all\s+natural|natural|farm\s+fresh|deluxe|fancy|classic|traditional|authentic|signature)\b`),
	}

	punctuationRE = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	whitespaceRE  = regexp.MustCompile(`\s+`)
)

// Normalize cleans a raw item name down to the words that carry meaning for
// classification. It is total and idempotent; empty or whitespace input
// yields an empty string.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = parentheticalRE.ReplaceAllString(s, " ")

	s = vulgarFractionRE.ReplaceAllString(s, " ")
	s = slashFractionRE.ReplaceAllString(s, " ")
	s = decimalRE.ReplaceAllString(s, " ")
	s = integerRE.ReplaceAllString(s, " ")

	// Punctuation becomes spaces before the word-level passes so hyphenated
	// forms ("room-temperature", "extra-large") are visible to them; a
	// second Normalize then sees identical input, keeping the pipeline
	// idempotent.
	s = punctuationRE.ReplaceAllString(s, " ")

	s = unitRE.ReplaceAllString(s, " ")
	s = sizeRE.ReplaceAllString(s, " ")

	for _, re := range descriptorREs {
		s = re.ReplaceAllString(s, " ")
	}

	s = punctuationRE.ReplaceAllString(s, " ")
	s = whitespaceRE.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
