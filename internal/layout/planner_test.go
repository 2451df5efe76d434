package layout

import (
	"testing"

	"github.com/sagekey/aisleflow/internal/category"
	"github.com/sagekey/aisleflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	r := newTestRegistry(t)

	groups := model.GroupedItems{}
	groups.Add(category.FreshVegetables, model.Item{Name: "cilantro"}, model.Item{Name: "bell pepper"})
	groups.Add(category.CannedVegetables, model.Item{Name: "canned corn"})
	groups.Add(category.Dairy, model.Item{Name: "whole milk"})

	result := r.Apply(groups, "Walmart Supercenter", "")

	assert.Equal(t, "Walmart", result.Layout.Name)
	assert.Equal(t, []string{category.CannedVegetables, category.Dairy, category.FreshVegetables}, result.Groups.Keys())

	// Items are never dropped and keep their within-category order.
	assert.Equal(t, groups.TotalItems(), result.Groups.TotalItems())
	veg := result.Groups.Get(category.FreshVegetables)
	require.Len(t, veg, 2)
	assert.Equal(t, "cilantro", veg[0].Name)
	assert.Equal(t, "bell pepper", veg[1].Name)
}

func TestApplyUnknownCategoryAppended(t *testing.T) {
	r := newTestRegistry(t)

	// Trader Joe's carries no pet aisle, so Pet Food is not in its walk
	// order and must trail the ordered categories.
	groups := model.GroupedItems{}
	groups.Add(category.PetFood, model.Item{Name: "dog food"})
	groups.Add(category.Breads, model.Item{Name: "sourdough bread"})
	groups.Add(category.FreshFruits, model.Item{Name: "bananas"})

	result := r.Apply(groups, "Trader Joe's", "")

	assert.Equal(t, []string{category.Breads, category.FreshFruits, category.PetFood}, result.Groups.Keys())
	assert.Equal(t, 3, result.Groups.TotalItems())
}

func TestApplyEmptyGroupsSkipped(t *testing.T) {
	r := newTestRegistry(t)

	groups := model.GroupedItems{
		{Key: category.Dairy, Items: []model.Item{{Name: "milk"}}},
		{Key: category.Breads, Items: nil},
	}

	result := r.Apply(groups, "", "")
	assert.Equal(t, []string{category.Dairy}, result.Groups.Keys())
}

func TestPlanRoute(t *testing.T) {
	r := newTestRegistry(t)

	groups := model.GroupedItems{}
	groups.Add(category.Dairy, model.Item{Name: "whole milk"})
	groups.Add(category.FreshVegetables, model.Item{Name: "cilantro"}, model.Item{Name: "bell pepper"})

	route := r.PlanRoute(groups, "Walmart Supercenter", "")

	assert.Equal(t, "Walmart Supercenter", route.StoreName)
	assert.Equal(t, "Walmart", route.LayoutName)
	require.Len(t, route.Sections, 2)
	assert.Equal(t, 2, route.TotalSections)

	dairy := route.Sections[0]
	assert.Equal(t, "Deli & Dairy", dairy.Section)
	assert.Equal(t, []string{category.Dairy}, dairy.Categories)
	assert.Equal(t, 1, dairy.ItemCount)
	assert.Equal(t, 3, dairy.EstimatedTime)
	assert.Contains(t, dairy.FoodSafetyNotes, "refrigerate")

	produce := route.Sections[1]
	assert.Equal(t, "Fresh Produce", produce.Section)
	assert.Equal(t, 2, produce.ItemCount)
	assert.Equal(t, 5, produce.EstimatedTime)

	assert.Equal(t, 8, route.TotalTime)
	assert.NotEmpty(t, route.Tips)
	assert.Equal(t, FoodSafetyReminder, route.FoodSafetyReminder)
}

func TestPlanRouteOmitsEmptySections(t *testing.T) {
	r := newTestRegistry(t)

	groups := model.GroupedItems{}
	groups.Add(category.FreshFruits, model.Item{Name: "bananas"}, model.Item{Name: "strawberries"})

	route := r.PlanRoute(groups, "Target", "")

	require.Len(t, route.Sections, 1)
	assert.Equal(t, "Fresh Produce", route.Sections[0].Section)
	assert.Equal(t, route.Sections[0].EstimatedTime, route.TotalTime)
}

func TestPlanRouteEmptyList(t *testing.T) {
	r := newTestRegistry(t)

	route := r.PlanRoute(nil, "Walmart", "")
	assert.Empty(t, route.Sections)
	assert.Zero(t, route.TotalTime)
	assert.Zero(t, route.TotalSections)
}

func TestPlanRouteDeterministic(t *testing.T) {
	r := newTestRegistry(t)

	groups := model.GroupedItems{}
	groups.Add(category.Dairy, model.Item{Name: "milk"})
	groups.Add(category.FrozenMeals, model.Item{Name: "frozen lasagna"})
	groups.Add(category.FreshVegetables, model.Item{Name: "carrots"})

	first := r.PlanRoute(groups, "Kroger", "")
	second := r.PlanRoute(groups, "Kroger", "")
	assert.Equal(t, first, second)
}

func TestSectionTiming(t *testing.T) {
	tests := []struct {
		section string
		items   int
		want    int
	}{
		{"Fresh Produce", 1, 4},
		{"Fresh Produce", 4, 6},
		{"Meat & Seafood", 2, 5},
		{"Frozen Foods", 3, 4},
		{"Pantry & Dry Goods", 1, 3},
		{"Pantry & Dry Goods", 4, 4},
		{"Beverages", 0, 2},
	}

	for _, tt := range tests {
		got := timingFor(tt.section).estimate(tt.items)
		assert.Equal(t, tt.want, got, "%s with %d item(s)", tt.section, tt.items)
	}
}

func TestNoteFor(t *testing.T) {
	assert.Contains(t, noteFor("Meat & Seafood"), "raw meat")
	assert.Contains(t, noteFor("Frozen Foods"), "insulated")
	assert.Contains(t, noteFor("Fresh Produce"), "produce")
	assert.Contains(t, noteFor("Pantry & Dry Goods"), "Shelf-stable")
	assert.Equal(t, defaultSafetyNote, noteFor("Checkout Lanes"))
}
