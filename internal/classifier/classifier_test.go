package classifier

import (
	"testing"

	"github.com/sagekey/aisleflow/internal/category"
	"github.com/sagekey/aisleflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	registry, err := category.NewDefault()
	require.NoError(t, err)
	c, err := New(registry)
	require.NoError(t, err)
	return c
}

func TestNewWithRules(t *testing.T) {
	registry, err := category.NewDefault()
	require.NoError(t, err)

	tests := []struct {
		name    string
		errMsg  string
		rules   []RuleSpec
		wantErr bool
	}{
		{
			name: "valid rules",
			rules: []RuleSpec{
				{Name: "Milk", Include: `\bmilk\b`, Exclude: `coconut\s*milk`, Category: category.Dairy},
				{Name: "Bread", Include: `\bbread\b`, Category: category.Breads},
			},
			wantErr: false,
		},
		{
			name: "invalid include regex",
			rules: []RuleSpec{
				{Name: "Bad", Include: `[unclosed`, Category: category.Dairy},
			},
			wantErr: true,
			errMsg:  "include pattern",
		},
		{
			name: "invalid exclude regex",
			rules: []RuleSpec{
				{Name: "Bad", Include: `milk`, Exclude: `[unclosed`, Category: category.Dairy},
			},
			wantErr: true,
			errMsg:  "exclude pattern",
		},
		{
			name: "unknown target category",
			rules: []RuleSpec{
				{Name: "Ghost", Include: `milk`, Category: "No Such Category"},
			},
			wantErr: true,
			errMsg:  "unknown category",
		},
		{
			name:    "empty battery is allowed",
			rules:   []RuleSpec{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewWithRules(registry, tt.rules)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				require.NotNil(t, c)
				assert.Equal(t, len(tt.rules), c.RuleCount())
			}
		})
	}
}

func TestClassify(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		input string
		want  string
	}{
		// Quantity and descriptor noise stripped before matching.
		{"2 cups chopped fresh cilantro", category.FreshVegetables},
		{"1 large red onion", category.FreshVegetables},
		{"baby spinach", category.FreshProduce},

		// Tomato products disambiguate on qualifier, not on "tomato".
		{"Tomato Paste", category.CannedTomatoes},
		{"tomato sauce", category.CannedTomatoes},
		{"1 can diced tomatoes", category.CannedTomatoes},
		{"crushed san marzano tomatoes", category.CannedTomatoes},
		{"3 chopped cherry tomatoes", category.FreshProduce},
		{"2 ripe tomatoes", category.FreshProduce},

		// Cuisine markers outrank generic rules.
		{"corn tortillas", category.MexicanItems},
		{"corn husks", category.MexicanItems},
		{"soy sauce", category.AsianItems},
		{"rice noodles", category.AsianItems},

		// Exclusions see the raw name even when normalization strips the
		// qualifier word.
		{"black pepper", model.OtherCategory},
		{"red pepper flakes", model.OtherCategory},
		{"garlic powder", model.OtherCategory},
		{"bell pepper", category.FreshVegetables},

		// Dairy family.
		{"whole milk", category.Dairy},
		{"heavy cream", category.Dairy},
		{"unsalted butter", category.Dairy},
		{"coconut milk", model.OtherCategory},
		{"peanut butter", category.NutButters},
		{"shredded mozzarella cheese", category.Cheese},
		{"greek yogurt", category.Yogurt},
		{"vanilla ice cream", category.IceCreamDesserts},

		// Meat, poultry, seafood.
		{"1 lb ground beef", category.FreshMeat},
		{"thick-cut bacon", category.FreshMeat},
		{"turkey bacon", category.Poultry},
		{"boneless chicken breasts", category.Poultry},
		{"beef broth", category.SoupBroth},
		{"salmon fillet", category.FreshSeafood},

		// Eggs and their lookalikes.
		{"a dozen eggs", category.Eggs},
		{"egg noodles", category.PastaNoodles},
		{"eggplant", category.FreshVegetables},

		// Pantry staples.
		{"sourdough bread", category.Breads},
		{"olive oil", category.CookingOil},
		{"kalamata olives", category.SaucesCondiments},
		{"jasmine rice", category.RiceGrains},
		{"spaghetti", category.PastaNoodles},
		{"all purpose flour", category.FlourMeal},
		{"brown sugar", category.SugarSweeteners},

		// Produce names.
		{"russet potatoes", category.FreshVegetables},
		{"strawberries", category.FreshFruits},
		{"2 lemons", category.FreshFruits},

		// Snacks and drinks.
		{"potato chips", category.ChipsCrackers},
		{"orange juice", category.Juice},
		{"ground coffee", category.CoffeeTea},
		{"sparkling water", category.SodaWater},

		// Fallback.
		{"xyzzy nonsense item", model.OtherCategory},
		{"", model.OtherCategory},
		{"   ", model.OtherCategory},
		{"!!!", model.OtherCategory},
		{"12345", model.OtherCategory},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.input), "input %q", tt.input)
		})
	}
}

// Classify always lands on a registered category, no matter the input.
func TestClassifyTotal(t *testing.T) {
	c := newTestClassifier(t)

	inputs := []string{
		"", " ", "\t\n", "???", "🛒🛒🛒", "ŢĤÎŜ ÎŜ ŅÖŢ ƒÖÖĐ",
		"a", "zz", "the and of", "1 2 3 4 5",
		"supercalifragilisticexpialidocious",
	}

	for _, input := range inputs {
		got := c.Classify(input)
		assert.True(t, c.Registry().Has(got), "Classify(%q) returned unregistered category %q", input, got)
	}
}

func TestClassifyItems(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("preset valid category is kept", func(t *testing.T) {
		items := []model.Item{
			{Name: "mystery snack", Category: category.Snacks},
		}
		groups := c.ClassifyItems(items)
		assert.Equal(t, []string{category.Snacks}, groups.Keys())
	})

	t.Run("preset unknown category is reclassified", func(t *testing.T) {
		items := []model.Item{
			{Name: "whole milk", Category: "Aisle 7"},
		}
		groups := c.ClassifyItems(items)
		assert.Equal(t, []string{category.Dairy}, groups.Keys())
	})

	t.Run("ingredient field used when name is empty", func(t *testing.T) {
		items := []model.Item{
			{Ingredient: "2 cups chopped fresh cilantro"},
		}
		groups := c.ClassifyItems(items)
		assert.Equal(t, []string{category.FreshVegetables}, groups.Keys())
	})

	t.Run("groups preserve encounter order", func(t *testing.T) {
		items := []model.Item{
			{Name: "tomato paste"},
			{Name: "whole milk"},
			{Name: "crushed tomatoes"},
			{Name: "cilantro"},
			{Name: "heavy cream"},
		}
		groups := c.ClassifyItems(items)

		assert.Equal(t, []string{category.CannedTomatoes, category.Dairy, category.FreshVegetables}, groups.Keys())
		assert.Len(t, groups.Get(category.CannedTomatoes), 2)
		assert.Len(t, groups.Get(category.Dairy), 2)
		assert.Equal(t, 5, groups.TotalItems())
	})

	t.Run("empty list", func(t *testing.T) {
		groups := c.ClassifyItems(nil)
		assert.Empty(t, groups)
		assert.Equal(t, 0, groups.TotalItems())
	})
}
