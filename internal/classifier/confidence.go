package classifier

import (
	"strings"

	"github.com/sagekey/aisleflow/internal/model"
)

// Confidence constants for exemplar-corpus scoring.
const (
	exactMatchConfidence  = 0.95
	partialBaseConfidence = 0.60
	partialCeilConfidence = 0.90
	partialMatchIncrement = 0.05
	baselineConfidence    = 0.50
)

// Score classifies a raw item name and attaches a heuristic confidence from
// scanning every category's exemplar corpus: exact case-insensitive match
// scores highest, substring overlap in either direction scales with the
// number of overlapping exemplars, anything else gets the baseline.
//
// The confidence is diagnostic only; it never changes which category
// Classify returns.
func (c *Classifier) Score(raw string) model.Classification {
	categoryKey := c.Classify(raw)
	result := model.Classification{
		Category:      categoryKey,
		Confidence:    baselineConfidence,
		ValidCategory: c.registry.Has(categoryKey),
	}

	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return result
	}

	exact := false
	partial := 0
	for _, cat := range c.registry.All() {
		for _, exemplar := range cat.Items {
			e := strings.ToLower(exemplar)
			switch {
			case e == name:
				exact = true
			case strings.Contains(name, e) || strings.Contains(e, name):
				partial++
			}
		}
	}

	switch {
	case exact:
		result.Confidence = exactMatchConfidence
	case partial > 0:
		confidence := partialBaseConfidence + partialMatchIncrement*float64(partial)
		if confidence > partialCeilConfidence {
			confidence = partialCeilConfidence
		}
		result.Confidence = confidence
	}

	return result
}
