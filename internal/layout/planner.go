package layout

import (
	"math"
	"strings"

	"github.com/sagekey/aisleflow/internal/model"
)

// ApplyResult pairs a reordered shopping list with the layout that ordered it.
type ApplyResult struct {
	Groups model.GroupedItems
	Layout model.StoreLayout
}

// Apply reorders a grouped shopping list to match a store's walk order.
// Categories the layout does not know are appended after the ordered ones in
// their original encounter order; items are never dropped or reordered
// within a category.
func (r *Registry) Apply(groups model.GroupedItems, storeName, storeChain string) ApplyResult {
	l := r.Resolve(storeName, storeChain)

	ordered := make(model.GroupedItems, 0, len(groups))
	placed := make(map[string]bool, len(groups))

	for _, key := range l.CategoryOrder {
		if items := groups.Get(key); len(items) > 0 {
			ordered = append(ordered, model.CategoryGroup{Key: key, Items: items})
			placed[key] = true
		}
	}
	for _, group := range groups {
		if !placed[group.Key] && len(group.Items) > 0 {
			ordered = append(ordered, group)
		}
	}

	return ApplyResult{Groups: ordered, Layout: l}
}

// sectionTiming holds the per-section time model: a fixed base plus a
// per-item increment, both in minutes.
type sectionTiming struct {
	base    int
	perItem float64
}

// timingFor picks the time model from the section name. Produce takes
// longest per item (weighing, bagging), meat counters next, frozen is a
// quick grab.
func timingFor(sectionName string) sectionTiming {
	switch {
	case strings.Contains(sectionName, "Produce"):
		return sectionTiming{base: 3, perItem: 0.75}
	case strings.Contains(sectionName, "Meat"), strings.Contains(sectionName, "Seafood"):
		return sectionTiming{base: 3, perItem: 0.6}
	case strings.Contains(sectionName, "Frozen"):
		return sectionTiming{base: 2, perItem: 0.4}
	default:
		return sectionTiming{base: 2, perItem: 0.5}
	}
}

func (t sectionTiming) estimate(itemCount int) int {
	withItems := t.base + int(math.Ceil(float64(itemCount)*t.perItem))
	if withItems < t.base {
		return t.base
	}
	return withItems
}

// safetyNote pairs a section-name keyword with its handling note. The first
// keyword found in the section name wins.
type safetyNote struct {
	keyword string
	note    string
}

var safetyNotes = []safetyNote{
	{"Pantry", "Shelf-stable goods; no temperature handling needed."},
	{"Dry Goods", "Shelf-stable goods; no temperature handling needed."},
	{"Beverages", "Room-temperature safe; chill at home as needed."},
	{"Household", "Non-food items; keep cleaning chemicals away from food in the cart."},
	{"Other", "Check individual labels for storage guidance."},
	{"Dairy", "Keep refrigerated items grouped near the end of the trip; refrigerate within 2 hours."},
	{"Meat", "Bag raw meat separately and keep it below ready-to-eat food to avoid drips."},
	{"Seafood", "Ask for ice packing on warm days; cook or freeze within a day."},
	{"Frozen", "Pick frozen items near the end so they stay solid; use an insulated bag."},
	{"Produce", "Place produce on top so it doesn't bruise; wash before eating."},
}

const defaultSafetyNote = "Follow the package storage instructions."

// FoodSafetyReminder is the fixed cold-chain guidance attached to every
// planned route.
const FoodSafetyReminder = "Shop shelf-stable aisles first and cold items last. Refrigerate or freeze perishables within 2 hours of checkout (1 hour above 90°F), and keep raw meat bagged separately the whole way home."

func noteFor(sectionName string) string {
	for _, n := range safetyNotes {
		if strings.Contains(sectionName, n.keyword) {
			return n.note
		}
	}
	return defaultSafetyNote
}

// PlanRoute builds a time-estimated shopping route for a store: the resolved
// layout's sections, in order, narrowed to the categories present in the
// list. Sections with no matching items are omitted and contribute no time.
// The computation is deterministic; the same list and store always produce
// the same route.
func (r *Registry) PlanRoute(groups model.GroupedItems, storeName, storeChain string) model.Route {
	l := r.Resolve(storeName, storeChain)

	route := model.Route{
		StoreName:          storeName,
		LayoutName:         l.Name,
		Tips:               l.Tips,
		FoodSafetyReminder: FoodSafetyReminder,
	}

	for _, section := range l.Sections {
		var items []model.Item
		var present []string
		for _, key := range section.Categories {
			if grouped := groups.Get(key); len(grouped) > 0 {
				present = append(present, key)
				items = append(items, grouped...)
			}
		}
		if len(items) == 0 {
			continue
		}

		timing := timingFor(section.Name)
		route.Sections = append(route.Sections, model.RouteSection{
			Section:         section.Name,
			Emoji:           section.Emoji,
			Categories:      present,
			Items:           items,
			ItemCount:       len(items),
			EstimatedTime:   timing.estimate(len(items)),
			FoodSafetyNotes: noteFor(section.Name),
		})
	}

	for _, section := range route.Sections {
		route.TotalTime += section.EstimatedTime
	}
	route.TotalSections = len(route.Sections)

	return route
}
