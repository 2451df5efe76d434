package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sagekey/aisleflow/internal/common"
)

// Item represents a single shopping-list entry as produced by upstream
// collaborators (receipt scanning, recipe import, manual entry). The engine
// only reads the name and category fields; everything else passes through.
type Item struct {
	Name        string   `json:"name,omitempty"`
	Ingredient  string   `json:"ingredient,omitempty"`
	Category    string   `json:"category,omitempty"`
	Amount      string   `json:"amount,omitempty"`
	Recipes     []string `json:"recipes,omitempty"`
	InInventory bool     `json:"in_inventory,omitempty"`
}

// DisplayName returns the item's name, preferring the explicit name field and
// falling back to the ingredient field. Receipt items carry names; recipe
// imports carry ingredients.
func (i Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Ingredient
}

// CategoryGroup is one category's slice of items within a grouped list.
type CategoryGroup struct {
	Key   string
	Items []Item
}

// GroupedItems is a category→items mapping that preserves encounter order,
// the unit of exchange between the classifier and the route planner.
type GroupedItems []CategoryGroup

// Add appends items to the group for key, creating the group on first use.
func (g *GroupedItems) Add(key string, items ...Item) {
	for i := range *g {
		if (*g)[i].Key == key {
			(*g)[i].Items = append((*g)[i].Items, items...)
			return
		}
	}
	*g = append(*g, CategoryGroup{Key: key, Items: items})
}

// Get returns the items grouped under key.
func (g GroupedItems) Get(key string) []Item {
	for _, grp := range g {
		if grp.Key == key {
			return grp.Items
		}
	}
	return nil
}

// Keys returns the category keys in encounter order.
func (g GroupedItems) Keys() []string {
	keys := make([]string, 0, len(g))
	for _, grp := range g {
		keys = append(keys, grp.Key)
	}
	return keys
}

// TotalItems returns the number of items across all groups.
func (g GroupedItems) TotalItems() int {
	n := 0
	for _, grp := range g {
		n += len(grp.Items)
	}
	return n
}

// LoadItems reads a shopping list from a JSON file. The file holds an array
// of item records; each record needs at least a name or ingredient field.
func LoadItems(path string) ([]Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-supplied list path.
	if err != nil {
		return nil, fmt.Errorf("failed to read shopping list: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse shopping list %s: %w", path, err)
	}
	for i, item := range items {
		if strings.TrimSpace(item.DisplayName()) == "" {
			return nil, fmt.Errorf("shopping list %s: item %d has no name or ingredient: %w", path, i, common.ErrNoItemName)
		}
	}
	return items, nil
}
