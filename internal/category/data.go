package category

import "github.com/sagekey/aisleflow/internal/model"

// Category keys. Rules, layouts, and callers reference these constants so a
// misspelled key is a compile error rather than a silent fallback.
const (
	FreshVegetables = "Fresh Vegetables"
	FreshFruits     = "Fresh Fruits"
	FreshProduce    = "Fresh Produce"
	FreshHerbs      = "Fresh Herbs"
	FreshMeat       = "Fresh Meat"
	Poultry         = "Poultry"
	FreshSeafood    = "Fresh Seafood"
	Deli            = "Deli"
	Dairy           = "Dairy"
	Cheese          = "Cheese"
	Yogurt          = "Yogurt"
	Eggs            = "Eggs"
	Breads          = "Breads"
	BakeryDesserts  = "Bakery & Desserts"

	CannedTomatoes    = "Canned Tomatoes"
	CannedVegetables  = "Canned Vegetables"
	CannedFruits      = "Canned Fruits"
	CannedBeans       = "Canned Beans"
	CannedFish        = "Canned Fish"
	SoupBroth         = "Soup & Broth"
	PastaNoodles      = "Pasta & Noodles"
	RiceGrains        = "Rice & Grains"
	DriedBeansLentils = "Dried Beans & Lentils"
	BakingSupplies    = "Baking Supplies"
	FlourMeal         = "Flour & Meal"
	SugarSweeteners   = "Sugar & Sweeteners"
	SpicesSeasonings  = "Spices & Seasonings"
	CookingOil        = "Cooking Oil"
	Vinegar           = "Vinegar"
	SaucesCondiments  = "Sauces & Condiments"
	SaladDressings    = "Salad Dressings"
	NutButters        = "Nut Butters & Spreads"
	JamsJellies       = "Jams & Jellies"
	CerealBreakfast   = "Cereal & Breakfast"
	Snacks            = "Snacks"
	ChipsCrackers     = "Chips & Crackers"
	CookiesCandy      = "Cookies & Candy"
	NutsDriedFruits   = "Nuts & Dried Fruits"
	CoffeeTea         = "Coffee & Tea"
	Juice             = "Juice"
	SodaWater         = "Soda & Water"
	BeerWine          = "Beer & Wine"

	FrozenVegetables  = "Frozen Vegetables"
	FrozenFruits      = "Frozen Fruits"
	FrozenMeals       = "Frozen Meals"
	FrozenPizza       = "Frozen Pizza"
	IceCreamDesserts  = "Ice Cream & Desserts"
	FrozenMeatSeafood = "Frozen Meat & Seafood"
	FrozenBreakfast   = "Frozen Breakfast"

	MexicanItems       = "Mexican Items"
	AsianItems         = "Asian Items"
	ItalianItems       = "Italian Items"
	IndianItems        = "Indian Items"
	InternationalItems = "International Items"

	PaperProducts    = "Paper Products"
	CleaningSupplies = "Cleaning Supplies"
	Laundry          = "Laundry"
	KitchenStorage   = "Kitchen & Storage"

	PetFood     = "Pet Food"
	PetSupplies = "Pet Supplies"

	PersonalCare   = "Personal Care"
	HealthMedicine = "Health & Medicine"
	BabyItems      = "Baby Items"

	Other = model.OtherCategory
)

// Builtin returns the compiled-in category knowledge base. The exemplar item
// lists feed confidence scoring only; classification runs on the rule battery.
func Builtin() []model.Category {
	return []model.Category{
		{Key: FreshVegetables, Name: FreshVegetables, Icon: "🥕", Color: "#4CAF50", Section: model.SectionFresh,
			Items: []string{"onion", "garlic", "carrot", "celery", "bell pepper", "broccoli", "cauliflower", "zucchini", "cucumber", "mushrooms", "green beans", "asparagus", "corn", "cabbage"}},
		{Key: FreshFruits, Name: FreshFruits, Icon: "🍎", Color: "#E91E63", Section: model.SectionFresh,
			Items: []string{"apple", "banana", "orange", "lemon", "lime", "strawberries", "blueberries", "raspberries", "grapes", "watermelon", "cantaloupe", "pineapple", "mango", "peach", "pear"}},
		{Key: FreshProduce, Name: FreshProduce, Icon: "🥬", Color: "#8BC34A", Section: model.SectionFresh,
			Items: []string{"lettuce", "spinach", "arugula", "kale", "swiss chard", "spring mix", "romaine", "cherry tomatoes", "tomatoes", "avocado"}},
		{Key: FreshHerbs, Name: FreshHerbs, Icon: "🌿", Color: "#66BB6A", Section: model.SectionFresh,
			Items: []string{"cilantro", "parsley", "basil", "thyme", "rosemary", "mint", "dill", "chives", "oregano", "sage"}},
		{Key: FreshMeat, Name: FreshMeat, Icon: "🥩", Color: "#D32F2F", Section: model.SectionFresh,
			Items: []string{"ground beef", "steak", "beef roast", "pork chops", "pork tenderloin", "lamb", "bacon", "sausage", "ham"}},
		{Key: Poultry, Name: Poultry, Icon: "🍗", Color: "#FF7043", Section: model.SectionFresh,
			Items: []string{"chicken breast", "chicken thighs", "whole chicken", "ground turkey", "turkey breast", "chicken wings", "chicken drumsticks"}},
		{Key: FreshSeafood, Name: FreshSeafood, Icon: "🐟", Color: "#0288D1", Section: model.SectionFresh,
			Items: []string{"salmon", "shrimp", "cod", "tilapia", "tuna steak", "scallops", "crab", "mussels", "halibut"}},
		{Key: Deli, Name: Deli, Icon: "🥪", Color: "#A1887F", Section: model.SectionFresh,
			Items: []string{"sliced turkey", "sliced ham", "salami", "pepperoni", "prosciutto", "roast beef", "rotisserie chicken", "hummus"}},
		{Key: Dairy, Name: Dairy, Icon: "🥛", Color: "#90CAF9", Section: model.SectionFresh,
			Items: []string{"milk", "whole milk", "skim milk", "heavy cream", "half and half", "buttermilk", "butter", "sour cream", "cream cheese", "oat milk", "almond milk", "soy milk"}},
		{Key: Cheese, Name: Cheese, Icon: "🧀", Color: "#FFC107", Section: model.SectionFresh,
			Items: []string{"cheddar cheese", "mozzarella", "parmesan", "feta", "swiss cheese", "monterey jack", "gouda", "brie", "provolone", "shredded cheese"}},
		{Key: Yogurt, Name: Yogurt, Icon: "🫐", Color: "#B39DDB", Section: model.SectionFresh,
			Items: []string{"greek yogurt", "plain yogurt", "vanilla yogurt", "yogurt cups", "kefir"}},
		{Key: Eggs, Name: Eggs, Icon: "🥚", Color: "#FFF9C4", Section: model.SectionFresh,
			Items: []string{"eggs", "large eggs", "egg whites", "dozen eggs"}},
		{Key: Breads, Name: Breads, Icon: "🍞", Color: "#8D6E63", Section: model.SectionFresh,
			Items: []string{"bread", "sandwich bread", "sourdough", "baguette", "bagels", "english muffins", "hamburger buns", "hot dog buns", "pita bread", "rolls", "naan"}},
		{Key: BakeryDesserts, Name: BakeryDesserts, Icon: "🧁", Color: "#F48FB1", Section: model.SectionFresh,
			Items: []string{"muffins", "croissants", "donuts", "cake", "pie", "cupcakes", "brownies", "danish"}},

		{Key: CannedTomatoes, Name: CannedTomatoes, Icon: "🥫", Color: "#E53935", Section: model.SectionPantry,
			Items: []string{"tomato paste", "tomato sauce", "crushed tomatoes", "diced tomatoes", "whole peeled tomatoes", "stewed tomatoes", "fire roasted tomatoes", "marinara sauce", "pizza sauce"}},
		{Key: CannedVegetables, Name: CannedVegetables, Icon: "🥫", Color: "#689F38", Section: model.SectionPantry,
			Items: []string{"canned corn", "canned green beans", "canned peas", "canned carrots", "canned mushrooms", "canned beets", "canned pumpkin"}},
		{Key: CannedFruits, Name: CannedFruits, Icon: "🥫", Color: "#FB8C00", Section: model.SectionPantry,
			Items: []string{"canned peaches", "canned pineapple", "canned pears", "mandarin oranges", "fruit cocktail", "applesauce"}},
		{Key: CannedBeans, Name: CannedBeans, Icon: "🥫", Color: "#795548", Section: model.SectionPantry,
			Items: []string{"black beans", "kidney beans", "chickpeas", "garbanzo beans", "pinto beans", "cannellini beans", "refried beans", "baked beans"}},
		{Key: CannedFish, Name: CannedFish, Icon: "🐟", Color: "#546E7A", Section: model.SectionPantry,
			Items: []string{"canned tuna", "canned salmon", "sardines", "anchovies", "canned clams"}},
		{Key: SoupBroth, Name: SoupBroth, Icon: "🍲", Color: "#FF8A65", Section: model.SectionPantry,
			Items: []string{"chicken broth", "beef broth", "vegetable broth", "chicken stock", "bone broth", "tomato soup", "chicken noodle soup", "bouillon cubes"}},
		{Key: PastaNoodles, Name: PastaNoodles, Icon: "🍝", Color: "#FDD835", Section: model.SectionPantry,
			Items: []string{"spaghetti", "penne", "rigatoni", "fettuccine", "macaroni", "lasagna noodles", "egg noodles", "orzo", "elbow pasta"}},
		{Key: RiceGrains, Name: RiceGrains, Icon: "🍚", Color: "#D7CCC8", Section: model.SectionPantry,
			Items: []string{"white rice", "brown rice", "jasmine rice", "basmati rice", "quinoa", "couscous", "barley", "farro", "oats"}},
		{Key: DriedBeansLentils, Name: DriedBeansLentils, Icon: "🫘", Color: "#6D4C41", Section: model.SectionPantry,
			Items: []string{"dried black beans", "dried pinto beans", "lentils", "red lentils", "split peas", "dried chickpeas"}},
		{Key: BakingSupplies, Name: BakingSupplies, Icon: "🧁", Color: "#CE93D8", Section: model.SectionPantry,
			Items: []string{"baking powder", "baking soda", "yeast", "vanilla extract", "chocolate chips", "cocoa powder", "cornstarch", "food coloring", "sprinkles"}},
		{Key: FlourMeal, Name: FlourMeal, Icon: "🌾", Color: "#BCAAA4", Section: model.SectionPantry,
			Items: []string{"all purpose flour", "bread flour", "whole wheat flour", "almond flour", "cornmeal", "masa harina", "cake flour"}},
		{Key: SugarSweeteners, Name: SugarSweeteners, Icon: "🍯", Color: "#FFB300", Section: model.SectionPantry,
			Items: []string{"sugar", "brown sugar", "powdered sugar", "honey", "maple syrup", "agave nectar", "molasses", "stevia"}},
		{Key: SpicesSeasonings, Name: SpicesSeasonings, Icon: "🧂", Color: "#8D6E63", Section: model.SectionPantry,
			Items: []string{"salt", "black pepper", "garlic powder", "onion powder", "paprika", "cumin", "chili powder", "cinnamon", "oregano", "italian seasoning", "red pepper flakes", "cayenne", "turmeric", "bay leaves"}},
		{Key: CookingOil, Name: CookingOil, Icon: "🫒", Color: "#AFB42B", Section: model.SectionPantry,
			Items: []string{"olive oil", "vegetable oil", "canola oil", "coconut oil", "avocado oil", "sesame oil", "cooking spray"}},
		{Key: Vinegar, Name: Vinegar, Icon: "🍶", Color: "#B0BEC5", Section: model.SectionPantry,
			Items: []string{"white vinegar", "apple cider vinegar", "balsamic vinegar", "rice vinegar", "red wine vinegar"}},
		{Key: SaucesCondiments, Name: SaucesCondiments, Icon: "🥫", Color: "#EF5350", Section: model.SectionPantry,
			Items: []string{"ketchup", "mustard", "mayonnaise", "bbq sauce", "hot sauce", "worcestershire sauce", "olives", "pickles", "relish", "capers", "salsa verde"}},
		{Key: SaladDressings, Name: SaladDressings, Icon: "🥗", Color: "#9CCC65", Section: model.SectionPantry,
			Items: []string{"ranch dressing", "italian dressing", "caesar dressing", "vinaigrette", "blue cheese dressing"}},
		{Key: NutButters, Name: NutButters, Icon: "🥜", Color: "#A1887F", Section: model.SectionPantry,
			Items: []string{"peanut butter", "almond butter", "cashew butter", "sunflower butter", "nutella", "tahini"}},
		{Key: JamsJellies, Name: JamsJellies, Icon: "🍓", Color: "#EC407A", Section: model.SectionPantry,
			Items: []string{"strawberry jam", "grape jelly", "raspberry preserves", "orange marmalade", "apricot preserves"}},
		{Key: CerealBreakfast, Name: CerealBreakfast, Icon: "🥣", Color: "#FFCA28", Section: model.SectionPantry,
			Items: []string{"cereal", "oatmeal", "granola", "pancake mix", "instant oatmeal", "granola bars", "pop tarts"}},
		{Key: Snacks, Name: Snacks, Icon: "🍿", Color: "#FFA726", Section: model.SectionPantry,
			Items: []string{"popcorn", "pretzels", "trail mix", "fruit snacks", "rice cakes", "beef jerky", "protein bars"}},
		{Key: ChipsCrackers, Name: ChipsCrackers, Icon: "🥨", Color: "#FF7043", Section: model.SectionPantry,
			Items: []string{"potato chips", "tortilla chips", "crackers", "saltines", "pita chips", "cheese crackers", "graham crackers"}},
		{Key: CookiesCandy, Name: CookiesCandy, Icon: "🍪", Color: "#8E24AA", Section: model.SectionPantry,
			Items: []string{"cookies", "chocolate bar", "candy", "gummy bears", "licorice", "marshmallows", "chocolate"}},
		{Key: NutsDriedFruits, Name: NutsDriedFruits, Icon: "🥜", Color: "#6D4C41", Section: model.SectionPantry,
			Items: []string{"almonds", "walnuts", "cashews", "pecans", "peanuts", "pistachios", "raisins", "dried cranberries", "dried apricots", "dates"}},
		{Key: CoffeeTea, Name: CoffeeTea, Icon: "☕", Color: "#5D4037", Section: model.SectionPantry,
			Items: []string{"coffee", "ground coffee", "coffee beans", "instant coffee", "green tea", "black tea", "herbal tea", "chai"}},
		{Key: Juice, Name: Juice, Icon: "🧃", Color: "#FF9800", Section: model.SectionPantry,
			Items: []string{"orange juice", "apple juice", "cranberry juice", "grape juice", "lemonade"}},
		{Key: SodaWater, Name: SodaWater, Icon: "🥤", Color: "#29B6F6", Section: model.SectionPantry,
			Items: []string{"soda", "cola", "sparkling water", "bottled water", "seltzer", "tonic water", "club soda"}},
		{Key: BeerWine, Name: BeerWine, Icon: "🍷", Color: "#7B1FA2", Section: model.SectionPantry,
			Items: []string{"beer", "red wine", "white wine", "hard cider", "seltzer"}},

		{Key: FrozenVegetables, Name: FrozenVegetables, Icon: "🧊", Color: "#4DB6AC", Section: model.SectionFrozen,
			Items: []string{"frozen peas", "frozen corn", "frozen broccoli", "frozen spinach", "frozen mixed vegetables", "frozen edamame"}},
		{Key: FrozenFruits, Name: FrozenFruits, Icon: "🧊", Color: "#BA68C8", Section: model.SectionFrozen,
			Items: []string{"frozen strawberries", "frozen blueberries", "frozen mango", "frozen mixed berries"}},
		{Key: FrozenMeals, Name: FrozenMeals, Icon: "🍱", Color: "#78909C", Section: model.SectionFrozen,
			Items: []string{"frozen dinner", "frozen burrito", "frozen lasagna", "tv dinner", "frozen pot pie"}},
		{Key: FrozenPizza, Name: FrozenPizza, Icon: "🍕", Color: "#EF5350", Section: model.SectionFrozen,
			Items: []string{"frozen pizza", "pizza rolls", "cauliflower pizza"}},
		{Key: IceCreamDesserts, Name: IceCreamDesserts, Icon: "🍨", Color: "#F8BBD0", Section: model.SectionFrozen,
			Items: []string{"ice cream", "frozen yogurt", "popsicles", "sorbet", "ice cream sandwiches"}},
		{Key: FrozenMeatSeafood, Name: FrozenMeatSeafood, Icon: "🧊", Color: "#90A4AE", Section: model.SectionFrozen,
			Items: []string{"frozen chicken nuggets", "frozen shrimp", "frozen fish sticks", "frozen meatballs", "frozen burgers"}},
		{Key: FrozenBreakfast, Name: FrozenBreakfast, Icon: "🧇", Color: "#FFB74D", Section: model.SectionFrozen,
			Items: []string{"frozen waffles", "frozen pancakes", "breakfast sandwiches", "frozen hash browns"}},

		{Key: MexicanItems, Name: MexicanItems, Icon: "🌮", Color: "#F4511E", Section: model.SectionInternational,
			Items: []string{"corn tortillas", "flour tortillas", "salsa", "taco shells", "taco seasoning", "enchilada sauce", "masa", "cornhusks", "chipotle peppers", "queso fresco", "tomatillos", "mole"}},
		{Key: AsianItems, Name: AsianItems, Icon: "🥢", Color: "#D81B60", Section: model.SectionInternational,
			Items: []string{"soy sauce", "miso", "udon noodles", "ramen", "rice noodles", "bok choy", "tofu", "kimchi", "sriracha", "hoisin sauce", "fish sauce", "sesame seeds", "nori", "wasabi", "gochujang"}},
		{Key: ItalianItems, Name: ItalianItems, Icon: "🍝", Color: "#43A047", Section: model.SectionInternational,
			Items: []string{"pesto", "sun dried tomatoes", "polenta", "arborio rice", "prosciutto", "giardiniera"}},
		{Key: IndianItems, Name: IndianItems, Icon: "🍛", Color: "#FB8C00", Section: model.SectionInternational,
			Items: []string{"curry paste", "garam masala", "basmati rice", "ghee", "naan", "chutney", "paneer"}},
		{Key: InternationalItems, Name: InternationalItems, Icon: "🌍", Color: "#3949AB", Section: model.SectionInternational,
			Items: []string{"couscous", "harissa", "tahini", "plantains", "coconut milk", "curry powder"}},

		{Key: PaperProducts, Name: PaperProducts, Icon: "🧻", Color: "#BDBDBD", Section: model.SectionHousehold,
			Items: []string{"paper towels", "toilet paper", "napkins", "paper plates", "tissues"}},
		{Key: CleaningSupplies, Name: CleaningSupplies, Icon: "🧽", Color: "#4FC3F7", Section: model.SectionHousehold,
			Items: []string{"dish soap", "all purpose cleaner", "bleach", "sponges", "glass cleaner", "disinfecting wipes"}},
		{Key: Laundry, Name: Laundry, Icon: "🧺", Color: "#7986CB", Section: model.SectionHousehold,
			Items: []string{"laundry detergent", "fabric softener", "dryer sheets", "stain remover"}},
		{Key: KitchenStorage, Name: KitchenStorage, Icon: "🥡", Color: "#9E9E9E", Section: model.SectionHousehold,
			Items: []string{"aluminum foil", "plastic wrap", "parchment paper", "sandwich bags", "trash bags", "food storage containers"}},

		{Key: PetFood, Name: PetFood, Icon: "🐾", Color: "#8D6E63", Section: model.SectionPet,
			Items: []string{"dog food", "cat food", "dry dog food", "wet cat food", "dog treats", "cat treats"}},
		{Key: PetSupplies, Name: PetSupplies, Icon: "🐾", Color: "#A1887F", Section: model.SectionPet,
			Items: []string{"cat litter", "dog toys", "pet shampoo", "flea treatment"}},

		{Key: PersonalCare, Name: PersonalCare, Icon: "🧴", Color: "#BA68C8", Section: model.SectionHealthBeauty,
			Items: []string{"shampoo", "conditioner", "body wash", "deodorant", "toothpaste", "toothbrush", "lotion", "razors"}},
		{Key: HealthMedicine, Name: HealthMedicine, Icon: "💊", Color: "#EF5350", Section: model.SectionHealthBeauty,
			Items: []string{"ibuprofen", "acetaminophen", "vitamins", "bandages", "cough drops", "allergy medicine", "multivitamin"}},
		{Key: BabyItems, Name: BabyItems, Icon: "🍼", Color: "#F8BBD0", Section: model.SectionHealthBeauty,
			Items: []string{"diapers", "baby wipes", "baby formula", "baby food"}},

		{Key: Other, Name: Other, Icon: "📦", Color: "#9E9E9E", Section: model.SectionOther,
			Items: []string{}},
	}
}

// foodSafetyOrder is the canonical shelf-visit sequence: shelf-stable goods
// first, refrigerated next, frozen after that, fresh produce last so it
// spends the least time in the cart. The generic layout derives its order
// from this list; chain layouts approximate it for their floor plans.
var foodSafetyOrder = []string{
	// Non-food and shelf-stable first.
	PaperProducts, CleaningSupplies, Laundry, KitchenStorage,
	PetFood, PetSupplies,
	PersonalCare, HealthMedicine, BabyItems,
	CannedTomatoes, CannedVegetables, CannedFruits, CannedBeans, CannedFish,
	SoupBroth, PastaNoodles, RiceGrains, DriedBeansLentils,
	BakingSupplies, FlourMeal, SugarSweeteners, SpicesSeasonings,
	CookingOil, Vinegar, SaucesCondiments, SaladDressings,
	NutButters, JamsJellies,
	CerealBreakfast, Snacks, ChipsCrackers, CookiesCandy, NutsDriedFruits,
	CoffeeTea, Juice, SodaWater, BeerWine,
	MexicanItems, AsianItems, ItalianItems, IndianItems, InternationalItems,
	Breads, BakeryDesserts,
	Other,
	// Refrigerated.
	Deli, Dairy, Cheese, Yogurt, Eggs,
	FreshMeat, Poultry, FreshSeafood,
	// Frozen.
	FrozenVegetables, FrozenFruits, FrozenMeals, FrozenPizza,
	IceCreamDesserts, FrozenMeatSeafood, FrozenBreakfast,
	// Fresh produce last.
	FreshVegetables, FreshFruits, FreshProduce, FreshHerbs,
}
