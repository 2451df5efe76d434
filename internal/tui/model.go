// Package tui implements the interactive guided-shopping mode: walk a
// planned route section by section, checking off items as they land in the
// cart.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sagekey/aisleflow/internal/model"
)

// KeyMap defines the key bindings for the shopping view.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "check off")),
		NextSection: key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("p", "shift+tab"), key.WithHelp("p", "prev section")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.NextSection, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.NextSection, k.PrevSection, k.Quit},
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D")).Italic(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Strikethrough(true)
	focusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Model holds the guided-shopping TUI state.
type Model struct {
	route    model.Route
	checked  map[string]bool
	keymap   KeyMap
	help     help.Model
	progress progress.Model
	section  int
	cursor   int
	width    int
	quitting bool
}

// NewModel creates a shopping model for a planned route.
func NewModel(route model.Route) Model {
	return Model{
		route:    route,
		checked:  make(map[string]bool),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		width:    80,
	}
}

// itemKey identifies one item slot across the whole route.
func itemKey(section, item int) string {
	return fmt.Sprintf("%d/%d", section, item)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keymap.Down):
			if m.cursor < len(m.currentSection().Items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keymap.Toggle):
			if len(m.route.Sections) == 0 {
				return m, nil
			}
			k := itemKey(m.section, m.cursor)
			m.checked[k] = !m.checked[k]
			if m.sectionDone(m.section) && m.section < len(m.route.Sections)-1 {
				m.section++
				m.cursor = 0
			}
			if m.doneCount() == m.totalCount() {
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keymap.NextSection):
			if m.section < len(m.route.Sections)-1 {
				m.section++
				m.cursor = 0
			}

		case key.Matches(msg, m.keymap.PrevSection):
			if m.section > 0 {
				m.section--
				m.cursor = 0
			}
		}
	}

	return m, nil
}

func (m Model) currentSection() model.RouteSection {
	if len(m.route.Sections) == 0 {
		return model.RouteSection{}
	}
	return m.route.Sections[m.section]
}

func (m Model) sectionDone(section int) bool {
	for i := range m.route.Sections[section].Items {
		if !m.checked[itemKey(section, i)] {
			return false
		}
	}
	return true
}

func (m Model) doneCount() int {
	n := 0
	for _, v := range m.checked {
		if v {
			n++
		}
	}
	return n
}

func (m Model) totalCount() int {
	n := 0
	for _, s := range m.route.Sections {
		n += len(s.Items)
	}
	return n
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return fmt.Sprintf("Checked off %d of %d items. Happy cooking!\n", m.doneCount(), m.totalCount())
	}
	if len(m.route.Sections) == 0 {
		return "Nothing on the list.\n"
	}

	var b strings.Builder
	section := m.currentSection()

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("🛒 %s — stop %d/%d", m.route.LayoutName, m.section+1, len(m.route.Sections))))
	fmt.Fprintf(&b, "%s %s  %s\n", section.Emoji, focusStyle.Render(section.Section), dimStyle.Render(fmt.Sprintf("~%d min", section.EstimatedTime)))
	fmt.Fprintf(&b, "%s\n\n", noteStyle.Render(section.FoodSafetyNotes))

	for i, item := range section.Items {
		cursor := "  "
		if i == m.cursor {
			cursor = focusStyle.Render("> ")
		}
		box := "[ ]"
		name := item.DisplayName()
		if m.checked[itemKey(m.section, i)] {
			box = "[x]"
			name = doneStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, name)
	}

	total := m.totalCount()
	ratio := 0.0
	if total > 0 {
		ratio = float64(m.doneCount()) / float64(total)
	}
	fmt.Fprintf(&b, "\n%s\n", m.progress.ViewAs(ratio))
	fmt.Fprintf(&b, "%s\n", m.help.View(m.keymap))

	return b.String()
}
