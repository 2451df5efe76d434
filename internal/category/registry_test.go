package category

import (
	"testing"

	"github.com/sagekey/aisleflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	r, err := NewDefault()
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Greater(t, r.Len(), 50)
	assert.True(t, r.Has(model.OtherCategory))
	assert.True(t, r.Has(FreshVegetables))
	assert.True(t, r.Has(CannedTomatoes))

	cat, ok := r.Get(Dairy)
	require.True(t, ok)
	assert.Equal(t, Dairy, cat.Key)
	assert.Equal(t, model.SectionFresh, cat.Section)
	assert.NotEmpty(t, cat.Items)

	_, ok = r.Get("No Such Category")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	valid := func(key string) model.Category {
		return model.Category{Key: key, Name: key, Section: model.SectionPantry}
	}
	other := model.Category{Key: model.OtherCategory, Name: model.OtherCategory, Section: model.SectionOther}

	tests := []struct {
		name       string
		errMsg     string
		categories []model.Category
		wantErr    bool
	}{
		{
			name:       "valid set",
			categories: []model.Category{valid("Canned Corn"), other},
			wantErr:    false,
		},
		{
			name:       "duplicate key",
			categories: []model.Category{valid("Canned Corn"), valid("Canned Corn"), other},
			wantErr:    true,
			errMsg:     "duplicate category key",
		},
		{
			name:       "missing fallback",
			categories: []model.Category{valid("Canned Corn")},
			wantErr:    true,
			errMsg:     "fallback",
		},
		{
			name: "invalid category",
			categories: []model.Category{
				{Key: "Nameless", Section: model.SectionPantry},
				other,
			},
			wantErr: true,
			errMsg:  "invalid category",
		},
		{
			name: "unknown section",
			categories: []model.Category{
				{Key: "Weird", Name: "Weird", Section: model.Section("Mezzanine")},
				other,
			},
			wantErr: true,
			errMsg:  "unknown section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.categories)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, r)
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.categories), r.Len())
			}
		})
	}
}

// The food-safety sequence must visit every category exactly once, with
// refrigerated goods after shelf-stable, frozen after refrigerated, and fresh
// produce last.
func TestFoodSafetyOrder(t *testing.T) {
	r, err := NewDefault()
	require.NoError(t, err)

	order := r.FoodSafetyOrder()
	assert.Len(t, order, r.Len())

	position := make(map[string]int, len(order))
	for i, key := range order {
		_, ok := r.Get(key)
		require.True(t, ok, "order references unknown category %q", key)
		_, dup := position[key]
		require.False(t, dup, "order lists %q twice", key)
		position[key] = i
	}

	assert.Less(t, position[CannedTomatoes], position[Dairy])
	assert.Less(t, position[Dairy], position[FrozenVegetables])
	assert.Less(t, position[FrozenVegetables], position[FreshVegetables])
	assert.Equal(t, FreshHerbs, order[len(order)-1])
}

func TestSections(t *testing.T) {
	r, err := NewDefault()
	require.NoError(t, err)

	sections := r.Sections()
	assert.Contains(t, sections, model.SectionFresh)
	assert.Contains(t, sections, model.SectionPantry)
	assert.Contains(t, sections, model.SectionFrozen)
	assert.Contains(t, sections, model.SectionOther)

	total := 0
	for _, section := range sections {
		cats := r.BySection(section)
		assert.NotEmpty(t, cats)
		for _, cat := range cats {
			assert.Equal(t, section, cat.Section)
		}
		total += len(cats)
	}
	assert.Equal(t, r.Len(), total)
}
