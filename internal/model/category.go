// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// Section is the coarse store-area grouping tag carried by every category.
// It clusters categories for display; the classifier never reads it.
type Section string

// Section constants.
const (
	SectionFresh         Section = "Fresh"
	SectionPantry        Section = "Pantry"
	SectionFrozen        Section = "Frozen"
	SectionInternational Section = "International"
	SectionHousehold     Section = "Household"
	SectionPet           Section = "Pet"
	SectionHealthBeauty  Section = "Health & Beauty"
	SectionOther         Section = "Other"
)

// OtherCategory is the universal fallback category key. It always exists in
// the registry; classification can never fail to return a category.
const OtherCategory = "Other"

// Category represents one grocery classification bucket.
type Category struct {
	Key     string
	Name    string
	Icon    string
	Color   string
	Section Section
	Items   []string
}

// Validate ensures the Category has valid data.
func (c *Category) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("category key is required")
	}
	if c.Name == "" {
		return fmt.Errorf("category %q: name is required", c.Key)
	}
	switch c.Section {
	case SectionFresh, SectionPantry, SectionFrozen, SectionInternational,
		SectionHousehold, SectionPet, SectionHealthBeauty, SectionOther:
	default:
		return fmt.Errorf("category %q: unknown section %q", c.Key, c.Section)
	}
	return nil
}
