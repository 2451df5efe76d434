package model

import "fmt"

// LayoutSection groups several categories into one aisle-level stop within a
// store layout.
type LayoutSection struct {
	Name       string
	Emoji      string
	Categories []string
}

// StoreLayout describes one named store's shelf-visit sequence: the full
// category walk order, its aisle sections, and display tips.
type StoreLayout struct {
	Key           string
	Name          string
	Description   string
	CategoryOrder []string
	Sections      []LayoutSection
	Tips          []string
}

// Validate ensures the StoreLayout has valid data. Category keys are checked
// against the registry at construction time, not here.
func (l *StoreLayout) Validate() error {
	if l.Key == "" {
		return fmt.Errorf("layout key is required")
	}
	if l.Name == "" {
		return fmt.Errorf("layout %q: name is required", l.Key)
	}
	if len(l.CategoryOrder) == 0 {
		return fmt.Errorf("layout %q: category order is empty", l.Key)
	}
	seen := make(map[string]bool, len(l.CategoryOrder))
	for _, key := range l.CategoryOrder {
		if seen[key] {
			return fmt.Errorf("layout %q: duplicate category %q in order", l.Key, key)
		}
		seen[key] = true
	}
	for _, section := range l.Sections {
		if section.Name == "" {
			return fmt.Errorf("layout %q: section with empty name", l.Key)
		}
		if len(section.Categories) == 0 {
			return fmt.Errorf("layout %q: section %q has no categories", l.Key, section.Name)
		}
	}
	return nil
}

// RouteSection is one stop on a planned route: a layout section narrowed to
// the categories and items actually on the shopping list, with a time
// estimate and handling note. Computed fresh per call, never persisted.
type RouteSection struct {
	Section         string
	Emoji           string
	Categories      []string
	Items           []Item
	ItemCount       int
	EstimatedTime   int
	FoodSafetyNotes string
}

// Route is a complete time-estimated shopping plan for one store visit.
type Route struct {
	StoreName          string
	LayoutName         string
	Sections           []RouteSection
	TotalTime          int
	TotalSections      int
	Tips               []string
	FoodSafetyReminder string
}
