package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sagekey/aisleflow/internal/model"
)

// Run starts the guided-shopping mode for a planned route and blocks until
// the shopper finishes or quits.
func Run(ctx context.Context, route model.Route) error {
	p := tea.NewProgram(NewModel(route), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("guided shopping mode failed: %w", err)
	}
	return nil
}
