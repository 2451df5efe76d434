package classifier

import "github.com/sagekey/aisleflow/internal/category"

// RuleSpec declares one classification rule as data. Include and Exclude are
// uncompiled regular expressions; Exclude may be empty. Rules are evaluated
// in slice order with first-match-wins semantics, so precedence lives in the
// ordering of this list, not in control flow.
type RuleSpec struct {
	Name     string
	Include  string
	Exclude  string
	Category string
}

// DefaultRules returns the ordered classification rule battery.
//
// Ordering rationale: distinctive cuisine markers and exclusion-laden rules
// run before the broad name-prefix rules, so a generic "contains a vegetable
// word" match cannot shadow a more specific classification. Ties are
// impossible: the first matching rule always wins.
func DefaultRules() []RuleSpec {
	return []RuleSpec{
		// International cuisine families first: their marker tokens are
		// highly distinctive and would otherwise be captured by generic
		// rules (cornhusks are not paper goods, tortillas are not bread).
		{
			Name:     "Mexican staples",
			Include:  `tortilla|salsa|masa|cornhusk|corn\s*husk|taco|enchilada|tomatillo|queso|chorizo|mole\b|refried|fajita|carnitas|pico\s*de\s*gallo`,
			Category: category.MexicanItems,
		},
		{
			Name:     "Asian staples",
			Include:  `soy\s*sauce|tamari|miso|udon|soba|ramen|rice\s*noodle|bok\s*choy|tofu|kimchi|sriracha|hoisin|fish\s*sauce|oyster\s*sauce|nori|wasabi|gochujang|dashi|mirin|teriyaki|edamame|wonton|dumpling`,
			Category: category.AsianItems,
		},

		// Tomato-product disambiguation before any fresh-tomato or produce
		// rule, so "tomato sauce" never reads as fresh produce.
		{
			Name:     "Tomato paste",
			Include:  `\bpaste\b`,
			Category: category.CannedTomatoes,
		},
		{
			Name:     "Tomato sauce",
			Include:  `\bsauce\b|marinara|passata`,
			Category: category.CannedTomatoes,
		},
		{
			Name:     "Canned tomato products",
			Include:  `(crushed|diced|whole|stewed|fire[\s-]*roasted|canned|san\s*marzano)[\s\w]*tomato`,
			Category: category.CannedTomatoes,
		},

		{
			Name:     "Fruit names",
			Include:  `^(apple|banana|orange|lemon|lime|grapefruit|tangerine|clementine|strawberr|blueberr|raspberr|blackberr|cranberr|grape|watermelon|cantaloupe|honeydew|melon|pineapple|mango|papaya|kiwi|peach|pear|plum|cherr|apricot|nectarine|pomegranate|fig)`,
			Exclude:  `cherry\s*tomato|juice`,
			Category: category.FreshFruits,
		},
		{
			Name:     "Leafy greens",
			Include:  `lettuce|spinach|arugula|kale|chard|romaine|spring\s*mix|mixed\s*greens|salad\s*greens`,
			Category: category.FreshProduce,
		},
		{
			// Bare tomato with no canned or sauce qualifier; catches
			// "chopped cherry tomatoes".
			Name:     "Fresh tomatoes",
			Include:  `tomato(es)?`,
			Exclude:  `paste|sauce|canned|crushed|diced|stewed|fire[\s-]*roasted|sun[\s-]*dried`,
			Category: category.FreshProduce,
		},
		{
			Name:     "Vegetable names",
			Include:  `^(onion|garlic|carrot|celery|bell\s*pepper|pepper|jalapeno|jalapeño|serrano|poblano|habanero|anaheim|broccoli|cauliflower|zucchini|squash|cucumber|mushroom|asparagus|green\s*bean|snap\s*pea|snow\s*pea|pea\b|corn\b|cabbage|brussels|leek|shallot|scallion|green\s*onion|radish|turnip|parsnip|rutabaga|beet|eggplant|okra|fennel|ginger|cilantro|parsley|basil|thyme|rosemary|mint|dill|chive|oregano|sage|tarragon)`,
			Exclude:  `(black|white)\s*pepper|red\s*pepper\s*flakes|peppercorns?|(garlic|onion)\s*(powder|salt)`,
			Category: category.FreshVegetables,
		},

		{
			Name:     "Dairy liquids",
			Include:  `\bmilk\b|\bcream\b|heavy\s*cream|buttermilk|half\s*and\s*half|(oat|almond|soy|rice|cashew)\s*milk`,
			Exclude:  `coconut\s*milk|ice\s*cream`,
			Category: category.Dairy,
		},
		{
			Name:     "Butter",
			Include:  `\bbutter\b`,
			Exclude:  `(peanut|almond|cashew|sunflower)\s*butter`,
			Category: category.Dairy,
		},
		{
			Name:     "Cheese varieties",
			Include:  `cheese|cheddar|mozzarella|parmesan|feta|gouda|brie|provolone|gruyere|ricotta|swiss|monterey\s*jack|asiago|manchego|havarti|colby|pecorino`,
			Category: category.Cheese,
		},

		{
			Name:     "Bacon",
			Include:  `bacon`,
			Exclude:  `(vegan|veggie|turkey)\s*bacon|bacon\s*bits`,
			Category: category.FreshMeat,
		},
		{
			Name:     "Beef cuts",
			Include:  `\bbeef\b|steak|brisket|chuck\s*roast|sirloin|rib\s*eye|ribeye|tenderloin|flank|short\s*rib`,
			Exclude:  `broth|stock|bouillon|jerky`,
			Category: category.FreshMeat,
		},
		{
			Name:     "Eggs",
			Include:  `\beggs?\b`,
			Exclude:  `egg\s*roll|eggplant|egg\s*nog|eggnog|egg\s*noodle`,
			Category: category.Eggs,
		},

		{
			Name:     "Breads",
			Include:  `\bbread\b|bagel|baguette|sourdough|ciabatta|brioche|english\s*muffin|pita|naan|\brolls?\b|\bbuns?\b|croissant|focaccia`,
			Exclude:  `crumbs?`,
			Category: category.Breads,
		},
		{
			Name:     "Oils",
			Include:  `\boils?\b|cooking\s*spray`,
			Category: category.CookingOil,
		},
		{
			Name:     "Potatoes",
			Include:  `potato(es)?|yukon|russet|fingerling|\byams?\b`,
			Exclude:  `chips?|starch`,
			Category: category.FreshVegetables,
		},
		{
			Name:     "Olives",
			Include:  `olives?\b`,
			Exclude:  `\boil\b`,
			Category: category.SaucesCondiments,
		},

		// Broad coverage rules. These run after every disambiguation rule
		// above, so they only see names the specific rules declined.
		{
			Name:     "Nut butters",
			Include:  `(peanut|almond|cashew|sunflower)\s*butter|tahini`,
			Category: category.NutButters,
		},
		{
			Name:     "Poultry",
			Include:  `chicken|turkey|\bduck\b`,
			Exclude:  `broth|stock|bouillon|chicken\s*of\s*the\s*sea`,
			Category: category.Poultry,
		},
		{
			Name:     "Pork and cured meats",
			Include:  `\bpork\b|sausage|\bham\b|prosciutto|pancetta|bratwurst`,
			Category: category.FreshMeat,
		},
		{
			Name:     "Seafood",
			Include:  `salmon|shrimp|\bcod\b|tilapia|\btuna\b|scallop|\bcrab\b|lobster|mussel|halibut|mahi|trout|catfish|swai`,
			Exclude:  `canned|\btin\b|tinned`,
			Category: category.FreshSeafood,
		},
		{
			Name:     "Broth and soup",
			Include:  `broth|stock|bouillon|\bsoup\b`,
			Exclude:  `stock\s*(pot|up)`,
			Category: category.SoupBroth,
		},
		{
			Name:     "Pasta and noodles",
			Include:  `pasta|spaghetti|penne|rigatoni|fettuccine|linguine|macaroni|lasagna|orzo|rotini|noodles?|gnocchi`,
			Category: category.PastaNoodles,
		},
		{
			Name:     "Rice and grains",
			Include:  `\brice\b|quinoa|couscous|barley|farro|\boats\b|oatmeal|bulgur|millet`,
			Category: category.RiceGrains,
		},
		{
			Name:     "Flour and meal",
			Include:  `flour|cornmeal|corn\s*starch|cornstarch`,
			Category: category.FlourMeal,
		},
		{
			Name:     "Sugar and sweeteners",
			Include:  `sugar|honey|maple\s*syrup|molasses|agave|stevia`,
			Category: category.SugarSweeteners,
		},
		{
			Name:     "Frozen desserts",
			Include:  `ice\s*cream|frozen\s*yogurt|popsicle|sorbet|gelato|sherbet`,
			Category: category.IceCreamDesserts,
		},
		{
			Name:     "Yogurt",
			Include:  `yogurt|yoghurt|kefir`,
			Category: category.Yogurt,
		},
		{
			Name:     "Chips and crackers",
			Include:  `chips?\b|crackers?|pretzels?|popcorn|tortilla\s*chips`,
			Exclude:  `chocolate\s*chips?`,
			Category: category.ChipsCrackers,
		},
		{
			Name:     "Coffee and tea",
			Include:  `coffee|\btea\b|espresso|\bchai\b`,
			Category: category.CoffeeTea,
		},
		{
			Name:     "Juice",
			Include:  `juice|lemonade|\bcider\b`,
			Exclude:  `lemon\s*juice|lime\s*juice|vinegar`,
			Category: category.Juice,
		},
		{
			Name:     "Soda and water",
			Include:  `\bsoda\b|\bcola\b|sparkling\s*water|seltzer|\bwater\b`,
			Exclude:  `water\s*chestnut|baking\s*soda|rose\s*water|coconut\s*water`,
			Category: category.SodaWater,
		},
	}
}
