package layout

import (
	"fmt"
	"strings"

	"github.com/sagekey/aisleflow/internal/model"
)

// sample caps in the exported plan: show up to three items per section, and
// summarize the rest once a section holds more than five.
const (
	exportSampleItems   = 3
	exportSummarizeOver = 5
)

// ExportText serializes a route into a plain-text shopping plan with the
// walk order, per-section time estimates and handling notes, and the store's
// tips. Pure formatting; the route is not modified.
func ExportText(route model.Route, storeName string) string {
	var b strings.Builder

	name := storeName
	if name == "" {
		name = route.StoreName
	}
	if name == "" {
		name = route.LayoutName
	}

	fmt.Fprintf(&b, "Shopping Route: %s\n", name)
	fmt.Fprintf(&b, "Estimated time: %d min across %d sections\n", route.TotalTime, route.TotalSections)
	b.WriteString("Order follows food safety: shelf-stable first, refrigerated next, frozen, then fresh produce.\n\n")

	for i, section := range route.Sections {
		fmt.Fprintf(&b, "%d. %s %s — %d min, %d item(s)\n", i+1, section.Emoji, section.Section, section.EstimatedTime, section.ItemCount)
		fmt.Fprintf(&b, "   Note: %s\n", section.FoodSafetyNotes)

		sample := section.Items
		if len(sample) > exportSampleItems {
			sample = sample[:exportSampleItems]
		}
		for _, item := range sample {
			fmt.Fprintf(&b, "   - %s\n", item.DisplayName())
		}
		if section.ItemCount > exportSummarizeOver {
			fmt.Fprintf(&b, "   ...and %d more\n", section.ItemCount-exportSampleItems)
		}
		b.WriteString("\n")
	}

	if len(route.Tips) > 0 {
		b.WriteString("Store tips:\n")
		for _, tip := range route.Tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
		b.WriteString("\n")
	}

	b.WriteString("Food safety reminder:\n")
	b.WriteString(route.FoodSafetyReminder)
	b.WriteString("\n")

	return b.String()
}
