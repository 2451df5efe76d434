package classifier

import (
	"testing"

	"github.com/sagekey/aisleflow/internal/category"
	"github.com/sagekey/aisleflow/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("exact exemplar match", func(t *testing.T) {
		got := c.Score("Tomato Paste")
		assert.Equal(t, category.CannedTomatoes, got.Category)
		assert.InDelta(t, 0.95, got.Confidence, 1e-9)
		assert.True(t, got.ValidCategory)
	})

	t.Run("partial overlap scores between base and ceiling", func(t *testing.T) {
		got := c.Score("cheddar")
		assert.Equal(t, category.Cheese, got.Category)
		assert.GreaterOrEqual(t, got.Confidence, 0.60)
		assert.LessOrEqual(t, got.Confidence, 0.90)
	})

	t.Run("no exemplar overlap gets baseline", func(t *testing.T) {
		got := c.Score("xyzzy nonsense item")
		assert.Equal(t, model.OtherCategory, got.Category)
		assert.InDelta(t, 0.50, got.Confidence, 1e-9)
		assert.True(t, got.ValidCategory)
	})

	t.Run("empty input gets baseline and fallback", func(t *testing.T) {
		got := c.Score("")
		assert.Equal(t, model.OtherCategory, got.Category)
		assert.InDelta(t, 0.50, got.Confidence, 1e-9)
	})

	t.Run("confidence never changes the category decision", func(t *testing.T) {
		inputs := []string{"Tomato Paste", "cheddar", "whole milk", "xyzzy"}
		for _, input := range inputs {
			scored := c.Score(input)
			assert.Equal(t, c.Classify(input), scored.Category, "input %q", input)
		}
	})

	t.Run("every score validates", func(t *testing.T) {
		inputs := []string{"Tomato Paste", "cheddar", "xyzzy nonsense item", ""}
		for _, input := range inputs {
			scored := c.Score(input)
			require.NoError(t, scored.Validate(), "input %q", input)
		}
	})
}
