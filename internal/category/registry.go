// Package category provides the static grocery category knowledge base and
// its canonical food-safety ordering.
package category

import (
	"fmt"

	"github.com/sagekey/aisleflow/internal/model"
)

// Registry is the immutable category knowledge base, built once at startup
// and read-only afterward. Any number of goroutines may query it without
// coordination.
type Registry struct {
	byKey      map[string]model.Category
	categories []model.Category
}

// New builds a Registry from the given categories, validating each entry.
// Keys must be unique and the Other fallback must be present.
func New(categories []model.Category) (*Registry, error) {
	r := &Registry{
		categories: make([]model.Category, len(categories)),
		byKey:      make(map[string]model.Category, len(categories)),
	}
	copy(r.categories, categories)

	for i := range r.categories {
		cat := &r.categories[i]
		if err := cat.Validate(); err != nil {
			return nil, fmt.Errorf("invalid category at index %d: %w", i, err)
		}
		if _, exists := r.byKey[cat.Key]; exists {
			return nil, fmt.Errorf("duplicate category key %q", cat.Key)
		}
		r.byKey[cat.Key] = *cat
	}

	if _, ok := r.byKey[model.OtherCategory]; !ok {
		return nil, fmt.Errorf("registry must contain the %q fallback category", model.OtherCategory)
	}

	return r, nil
}

// NewDefault builds a Registry from the compiled-in category tables and
// verifies the canonical food-safety ordering covers every category.
func NewDefault() (*Registry, error) {
	r, err := New(Builtin())
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(foodSafetyOrder))
	for _, key := range foodSafetyOrder {
		if !r.Has(key) {
			return nil, fmt.Errorf("food-safety order references unknown category %q", key)
		}
		if seen[key] {
			return nil, fmt.Errorf("food-safety order lists category %q twice", key)
		}
		seen[key] = true
	}
	if len(seen) != len(r.categories) {
		return nil, fmt.Errorf("food-safety order covers %d of %d categories", len(seen), len(r.categories))
	}

	return r, nil
}

// Get returns the category for key.
func (r *Registry) Get(key string) (model.Category, bool) {
	cat, ok := r.byKey[key]
	return cat, ok
}

// Has reports whether key names a known category.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// All returns every category in registry order.
func (r *Registry) All() []model.Category {
	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Keys returns every category key in registry order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.categories))
	for _, cat := range r.categories {
		keys = append(keys, cat.Key)
	}
	return keys
}

// Len returns the number of categories.
func (r *Registry) Len() int {
	return len(r.categories)
}

// FoodSafetyOrder returns the canonical shelf-visit sequence covering every
// category: shelf-stable → refrigerated → frozen → fresh produce.
func (r *Registry) FoodSafetyOrder() []string {
	out := make([]string, len(foodSafetyOrder))
	copy(out, foodSafetyOrder)
	return out
}

// Sections returns the distinct section tags in first-encounter order.
func (r *Registry) Sections() []model.Section {
	var sections []model.Section
	seen := make(map[model.Section]bool)
	for _, cat := range r.categories {
		if !seen[cat.Section] {
			seen[cat.Section] = true
			sections = append(sections, cat.Section)
		}
	}
	return sections
}

// BySection returns the categories carrying the given section tag, in
// registry order.
func (r *Registry) BySection(section model.Section) []model.Category {
	var out []model.Category
	for _, cat := range r.categories {
		if cat.Section == section {
			out = append(out, cat)
		}
	}
	return out
}
