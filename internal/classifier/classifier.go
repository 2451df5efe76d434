// Package classifier turns free-text grocery item names into category keys
// using a deterministic normalization pipeline and an ordered,
// first-match-wins rule battery.
package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sagekey/aisleflow/internal/category"
	"github.com/sagekey/aisleflow/internal/common"
	"github.com/sagekey/aisleflow/internal/model"
)

// compiledRule is a RuleSpec with its regular expressions compiled.
type compiledRule struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
	RuleSpec
}

// Classifier assigns exactly one category key to any item name. It is
// stateless after construction and safe for concurrent use.
type Classifier struct {
	registry *category.Registry
	rules    []compiledRule
}

// New creates a Classifier over the given registry using the default rule
// battery.
func New(registry *category.Registry) (*Classifier, error) {
	return NewWithRules(registry, DefaultRules())
}

// NewWithRules creates a Classifier with a custom rule battery. Every rule's
// regular expressions must compile and its category must exist in the
// registry; a bad rule is a construction-time error, never a silent
// misclassification later.
func NewWithRules(registry *category.Registry, rules []RuleSpec) (*Classifier, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for _, spec := range rules {
		if !registry.Has(spec.Category) {
			return nil, fmt.Errorf("rule %q: %w: %q", spec.Name, common.ErrUnknownCategory, spec.Category)
		}

		include, err := regexp.Compile(spec.Include)
		if err != nil {
			return nil, fmt.Errorf("failed to compile include pattern for rule %q: %w", spec.Name, err)
		}

		var exclude *regexp.Regexp
		if spec.Exclude != "" {
			exclude, err = regexp.Compile(spec.Exclude)
			if err != nil {
				return nil, fmt.Errorf("failed to compile exclude pattern for rule %q: %w", spec.Name, err)
			}
		}

		compiled = append(compiled, compiledRule{
			RuleSpec: spec,
			include:  include,
			exclude:  exclude,
		})
	}

	return &Classifier{registry: registry, rules: compiled}, nil
}

// Registry returns the category registry the classifier was built over.
func (c *Classifier) Registry() *category.Registry {
	return c.registry
}

// RuleCount returns the number of loaded rules.
func (c *Classifier) RuleCount() int {
	return len(c.rules)
}

// Classify returns the category key for a raw item name. It is total:
// unmappable input degrades to the Other category, never an error.
//
// Each rule is tried in battery order against three forms of the name, from
// cleanest to rawest: the normalized name, the extracted core term, and the
// lowercased original. A rule matches when its include pattern hits any of
// the forms and its exclude pattern hits none of them. The exclusion must
// see the raw form, since the qualifier words it guards against ("black" in
// "black pepper", "diced" in "diced tomatoes") are exactly the words
// normalization strips.
func (c *Classifier) Classify(raw string) string {
	original := strings.ToLower(strings.TrimSpace(raw))
	if original == "" {
		return model.OtherCategory
	}

	normalized := Normalize(raw)
	core := ExtractCore(raw)
	candidates := []string{normalized, core, original}

	for _, rule := range c.rules {
		included := false
		excluded := false
		for _, candidate := range candidates {
			if candidate == "" {
				continue
			}
			if rule.exclude != nil && rule.exclude.MatchString(candidate) {
				excluded = true
				break
			}
			if rule.include.MatchString(candidate) {
				included = true
			}
		}
		if included && !excluded {
			return rule.Category
		}
	}

	return model.OtherCategory
}

// ClassifyItems assigns a category to each item and groups them, preserving
// encounter order. Items that already carry a known category key keep it;
// everything else is classified by name.
func (c *Classifier) ClassifyItems(items []model.Item) model.GroupedItems {
	var groups model.GroupedItems
	for _, item := range items {
		key := item.Category
		if !c.registry.Has(key) {
			key = c.Classify(item.DisplayName())
			item.Category = key
		}
		groups.Add(key, item)
	}
	return groups
}
