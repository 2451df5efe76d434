package model

import "fmt"

// Classification is the diagnostic result of scoring an item name against the
// exemplar corpus. The category decision itself never depends on the
// confidence value; it is informational only.
type Classification struct {
	Category      string
	Confidence    float64
	ValidCategory bool
}

// Validate ensures the Classification has valid data.
func (c *Classification) Validate() error {
	if c.Category == "" {
		return fmt.Errorf("category is required")
	}
	if c.Confidence < 0.0 || c.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", c.Confidence)
	}
	return nil
}
