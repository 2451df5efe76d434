// Package layout provides the store layout knowledge base and the route
// planner that orders a shopping list for a specific store.
package layout

import (
	"fmt"
	"strings"

	"github.com/sagekey/aisleflow/internal/category"
	"github.com/sagekey/aisleflow/internal/model"
)

// GenericKey is the layout used when no known chain matches.
const GenericKey = "generic"

// chainAlias maps a substring of a store name to a layout key. Matching is
// ordered: the first identifier found in the combined store name + chain
// string wins.
type chainAlias struct {
	identifier string
	layoutKey  string
}

// chainAliases covers the known chains plus regional brands approximated by
// an existing layout.
var chainAliases = []chainAlias{
	{"walmart", "walmart"},
	{"target", "target"},
	{"costco", "costco"},
	{"hy-vee", "hyvee"},
	{"hyvee", "hyvee"},
	{"trader joe", "traderjoes"},
	{"kroger", "kroger"},
	{"safeway", "kroger"},
	{"albertsons", "kroger"},
	{"publix", "kroger"},
	{"meijer", GenericKey},
	{"whole foods", GenericKey},
}

// Registry is the immutable store layout table, built once at startup. The
// generic layout derives its order from the category registry's canonical
// food-safety sequence; the chain layouts approximate it per store.
type Registry struct {
	categories *category.Registry
	byKey      map[string]model.StoreLayout
	keys       []string
}

// NewRegistry builds the layout registry over the given category registry,
// validating every layout against it at construction time.
func NewRegistry(categories *category.Registry) (*Registry, error) {
	layouts := builtinLayouts()
	layouts = append(layouts, genericLayout(categories))

	r := &Registry{
		categories: categories,
		byKey:      make(map[string]model.StoreLayout, len(layouts)),
		keys:       make([]string, 0, len(layouts)),
	}

	for i := range layouts {
		l := layouts[i]
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("invalid layout: %w", err)
		}
		if _, exists := r.byKey[l.Key]; exists {
			return nil, fmt.Errorf("duplicate layout key %q", l.Key)
		}
		for _, key := range l.CategoryOrder {
			if !categories.Has(key) {
				return nil, fmt.Errorf("layout %q orders unknown category %q", l.Key, key)
			}
		}
		for _, section := range l.Sections {
			for _, key := range section.Categories {
				if !categories.Has(key) {
					return nil, fmt.Errorf("layout %q section %q references unknown category %q", l.Key, section.Name, key)
				}
			}
		}
		r.byKey[l.Key] = l
		r.keys = append(r.keys, l.Key)
	}

	for _, alias := range chainAliases {
		if _, ok := r.byKey[alias.layoutKey]; !ok {
			return nil, fmt.Errorf("chain alias %q maps to unknown layout %q", alias.identifier, alias.layoutKey)
		}
	}

	return r, nil
}

// genericLayout is the single source of truth the chain layouts approximate:
// its category order comes straight from the registry's food-safety sequence.
func genericLayout(categories *category.Registry) model.StoreLayout {
	order := categories.FoodSafetyOrder()
	return model.StoreLayout{
		Key:           GenericKey,
		Name:          "Generic Store",
		Description:   "Food-safety walk order for any store: shelf-stable goods first, refrigerated next, frozen after that, fresh produce last.",
		CategoryOrder: order,
		Sections: []model.LayoutSection{
			householdSection(), healthSection(),
			pantrySection(), breakfastSection(),
			beverageSection(), worldSection(),
			bakerySection(), otherSection(),
			dairySection(), meatSection(), frozenSection(), produceSection(),
		},
		Tips: []string{
			"Shop shelf-stable aisles first and the cold cases last.",
			"Keep raw meat bagged and separated from ready-to-eat food.",
			"Get refrigerated and frozen items home within two hours (one hour above 90°F).",
		},
	}
}

// Resolve returns the layout for a store by case-insensitive substring match
// of the store name and chain against the known chain identifiers. Unknown
// stores get the generic layout; Resolve never fails.
func (r *Registry) Resolve(storeName, storeChain string) model.StoreLayout {
	haystack := strings.ToLower(strings.TrimSpace(storeName + " " + storeChain))
	for _, alias := range chainAliases {
		if strings.Contains(haystack, alias.identifier) {
			return r.byKey[alias.layoutKey]
		}
	}
	return r.byKey[GenericKey]
}

// Get returns the layout stored under key.
func (r *Registry) Get(key string) (model.StoreLayout, bool) {
	l, ok := r.byKey[key]
	return l, ok
}

// Keys returns every layout key in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}
