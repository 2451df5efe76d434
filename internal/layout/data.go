package layout

import (
	"github.com/sagekey/aisleflow/internal/category"
	"github.com/sagekey/aisleflow/internal/model"
)

// Category blocks shared by the store layouts. Each chain layout is a
// permutation of these blocks approximating that chain's floor plan while
// keeping the food-safety walk order: shelf-stable first, refrigerated next,
// frozen after that, fresh produce last.
var (
	householdBlock = []string{category.PaperProducts, category.CleaningSupplies, category.Laundry, category.KitchenStorage}
	petBlock       = []string{category.PetFood, category.PetSupplies}
	healthBlock    = []string{category.PersonalCare, category.HealthMedicine, category.BabyItems}
	cannedBlock    = []string{category.CannedTomatoes, category.CannedVegetables, category.CannedFruits, category.CannedBeans, category.CannedFish, category.SoupBroth}
	dryGoodsBlock  = []string{category.PastaNoodles, category.RiceGrains, category.DriedBeansLentils, category.FlourMeal, category.SugarSweeteners, category.BakingSupplies, category.SpicesSeasonings, category.CookingOil, category.Vinegar, category.SaucesCondiments, category.SaladDressings, category.NutButters, category.JamsJellies}
	breakfastBlock = []string{category.CerealBreakfast, category.Snacks, category.ChipsCrackers, category.CookiesCandy, category.NutsDriedFruits}
	beverageBlock  = []string{category.CoffeeTea, category.Juice, category.SodaWater, category.BeerWine}
	worldBlock     = []string{category.MexicanItems, category.AsianItems, category.ItalianItems, category.IndianItems, category.InternationalItems}
	bakeryBlock    = []string{category.Breads, category.BakeryDesserts}
	dairyBlock     = []string{category.Deli, category.Dairy, category.Cheese, category.Yogurt, category.Eggs}
	meatBlock      = []string{category.FreshMeat, category.Poultry, category.FreshSeafood}
	frozenBlock    = []string{category.FrozenVegetables, category.FrozenFruits, category.FrozenMeals, category.FrozenPizza, category.IceCreamDesserts, category.FrozenMeatSeafood, category.FrozenBreakfast}
	produceBlock   = []string{category.FreshVegetables, category.FreshFruits, category.FreshProduce, category.FreshHerbs}
	otherBlock     = []string{category.Other}
)

func concat(blocks ...[]string) []string {
	var out []string
	for _, block := range blocks {
		out = append(out, block...)
	}
	return out
}

// Section name fragments are load-bearing: time estimation and food-safety
// notes key off "Produce", "Meat", "Seafood", and "Frozen" appearing in the
// section name.
func pantrySection() model.LayoutSection {
	return model.LayoutSection{Name: "Pantry & Dry Goods", Emoji: "🥫", Categories: concat(cannedBlock, dryGoodsBlock)}
}

func breakfastSection() model.LayoutSection {
	return model.LayoutSection{Name: "Breakfast & Snacks", Emoji: "🥣", Categories: breakfastBlock}
}

func beverageSection() model.LayoutSection {
	return model.LayoutSection{Name: "Beverages", Emoji: "🥤", Categories: beverageBlock}
}

func worldSection() model.LayoutSection {
	return model.LayoutSection{Name: "International Aisle", Emoji: "🌍", Categories: worldBlock}
}

func householdSection() model.LayoutSection {
	return model.LayoutSection{Name: "Household & Cleaning", Emoji: "🧻", Categories: concat(householdBlock, petBlock)}
}

func healthSection() model.LayoutSection {
	return model.LayoutSection{Name: "Health & Beauty", Emoji: "💊", Categories: healthBlock}
}

func bakerySection() model.LayoutSection {
	return model.LayoutSection{Name: "Bread & Bakery", Emoji: "🍞", Categories: bakeryBlock}
}

func otherSection() model.LayoutSection {
	return model.LayoutSection{Name: "Other Items", Emoji: "📦", Categories: otherBlock}
}

func dairySection() model.LayoutSection {
	return model.LayoutSection{Name: "Deli & Dairy", Emoji: "🥛", Categories: dairyBlock}
}

func meatSection() model.LayoutSection {
	return model.LayoutSection{Name: "Meat & Seafood", Emoji: "🥩", Categories: meatBlock}
}

func frozenSection() model.LayoutSection {
	return model.LayoutSection{Name: "Frozen Foods", Emoji: "🧊", Categories: frozenBlock}
}

func produceSection() model.LayoutSection {
	return model.LayoutSection{Name: "Fresh Produce", Emoji: "🥬", Categories: produceBlock}
}

// builtinLayouts returns the chain-specific store layouts. The generic
// layout is built separately from the registry's canonical food-safety
// ordering; these hand-tuned layouts approximate it per chain.
func builtinLayouts() []model.StoreLayout {
	return []model.StoreLayout{
		{
			Key:         "walmart",
			Name:        "Walmart",
			Description: "Supercenter layout: general merchandise up front, grocery aisles in the center, cold wall along the back, produce by the grocery entrance.",
			CategoryOrder: concat(
				householdBlock, petBlock, healthBlock,
				cannedBlock, dryGoodsBlock, worldBlock,
				breakfastBlock, beverageBlock,
				bakeryBlock, otherBlock,
				dairyBlock, meatBlock, frozenBlock, produceBlock,
			),
			Sections: []model.LayoutSection{
				householdSection(), healthSection(),
				pantrySection(), worldSection(),
				breakfastSection(), beverageSection(),
				bakerySection(), otherSection(),
				dairySection(), meatSection(), frozenSection(), produceSection(),
			},
			Tips: []string{
				"Grab general merchandise and household goods before entering the grocery side.",
				"The dairy wall is the farthest corner; save it for the back half of your trip.",
				"Self-checkout near the grocery entrance is fastest on weekday mornings.",
			},
		},
		{
			Key:         "target",
			Name:        "Target",
			Description: "Market layout: beauty and essentials near the entrance, grocery along one side with the freezer cases between dry grocery and dairy.",
			CategoryOrder: concat(
				healthBlock, householdBlock, petBlock,
				cannedBlock, dryGoodsBlock, breakfastBlock,
				beverageBlock, worldBlock,
				bakeryBlock, otherBlock,
				dairyBlock, meatBlock, frozenBlock, produceBlock,
			),
			Sections: []model.LayoutSection{
				healthSection(), householdSection(),
				pantrySection(), breakfastSection(),
				beverageSection(), worldSection(),
				bakerySection(), otherSection(),
				dairySection(), meatSection(), frozenSection(), produceSection(),
			},
			Tips: []string{
				"Market pantry aisles run parallel to the far wall; work them in one pass.",
				"Frozen doors sit between dry grocery and dairy, so hit them on your way out.",
			},
		},
		{
			Key:         "costco",
			Name:        "Costco",
			Description: "Warehouse layout: bulk dry goods in the center racks, cold cases and produce room along the back wall.",
			CategoryOrder: concat(
				householdBlock, healthBlock, petBlock,
				dryGoodsBlock, cannedBlock, breakfastBlock,
				beverageBlock, worldBlock,
				bakeryBlock, otherBlock,
				dairyBlock, meatBlock, frozenBlock, produceBlock,
			),
			Sections: []model.LayoutSection{
				householdSection(), healthSection(),
				pantrySection(), breakfastSection(),
				beverageSection(), worldSection(),
				bakerySection(), otherSection(),
				dairySection(), meatSection(), frozenSection(), produceSection(),
			},
			Tips: []string{
				"Everything is bulk-sized; check your freezer space before the frozen aisle.",
				"The produce cold room is chilly and near checkout, so save it for last.",
				"Sample stations cluster near the cold wall on weekends; expect congestion.",
			},
		},
		{
			Key:         "kroger",
			Name:        "Kroger",
			Description: "Classic grocery layout: numbered center aisles for pantry goods, perishables around the perimeter.",
			CategoryOrder: concat(
				householdBlock, petBlock, healthBlock,
				cannedBlock, dryGoodsBlock, worldBlock,
				breakfastBlock, beverageBlock,
				bakeryBlock, otherBlock,
				dairyBlock, meatBlock, frozenBlock, produceBlock,
			),
			Sections: []model.LayoutSection{
				householdSection(), healthSection(),
				pantrySection(), worldSection(),
				breakfastSection(), beverageSection(),
				bakerySection(), otherSection(),
				dairySection(), meatSection(), frozenSection(), produceSection(),
			},
			Tips: []string{
				"Center aisles are numbered; the app-style order here walks them low to high.",
				"Meat and seafood counters close earlier than the store; plan accordingly.",
			},
		},
		{
			Key:         "hyvee",
			Name:        "Hy-Vee",
			Description: "Midwest full-service layout: health market and household near the entrance, full-service counters along the back.",
			CategoryOrder: concat(
				healthBlock, householdBlock, petBlock,
				cannedBlock, dryGoodsBlock, breakfastBlock,
				worldBlock, beverageBlock,
				bakeryBlock, otherBlock,
				dairyBlock, meatBlock, frozenBlock, produceBlock,
			),
			Sections: []model.LayoutSection{
				healthSection(), householdSection(),
				pantrySection(), breakfastSection(),
				worldSection(), beverageSection(),
				bakerySection(), otherSection(),
				dairySection(), meatSection(), frozenSection(), produceSection(),
			},
			Tips: []string{
				"The full-service meat counter marks the halfway point of the walk.",
				"Hy-Vee bakeries discount day-old bread in the morning.",
			},
		},
		{
			Key:         "traderjoes",
			Name:        "Trader Joe's",
			Description: "Compact single-loop layout: a handful of aisles, limited household goods, produce and flowers by the door (shop it last anyway).",
			CategoryOrder: concat(
				[]string{category.PaperProducts, category.CleaningSupplies},
				healthBlock,
				cannedBlock, dryGoodsBlock, breakfastBlock,
				worldBlock, beverageBlock,
				bakeryBlock, otherBlock,
				dairyBlock, meatBlock, frozenBlock, produceBlock,
			),
			Sections: []model.LayoutSection{
				{Name: "Household Basics", Emoji: "🧻", Categories: []string{category.PaperProducts, category.CleaningSupplies}},
				healthSection(),
				pantrySection(), breakfastSection(),
				worldSection(), beverageSection(),
				bakerySection(), otherSection(),
				dairySection(), meatSection(), frozenSection(), produceSection(),
			},
			Tips: []string{
				"The store is small; one loop covers everything, so resist backtracking.",
				"Frozen cases run down the center island, right before the registers.",
				"No bulk sizes here; double quantities if you're feeding a crowd.",
			},
		},
	}
}
