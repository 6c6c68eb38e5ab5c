package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/LogLens/internal/analyzer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3B82F6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	detailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3B82F6")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Padding(1, 1, 0, 1)
)

// Model is the interactive group browser: a cursor list of ranked
// groups with a detail pane for the selected one.
type Model struct {
	groups   []analyzer.Group
	cursor   int
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates a browser over the given ranked groups
func NewModel(groups []analyzer.Group) *Model {
	return &Model{groups: groups}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.groups)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.groups) > 0 {
				m.cursor = len(m.groups) - 1
			}
		}
	}

	return m, nil
}

// View renders the model
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("LogLens — %d groups", len(m.groups))))
	b.WriteString("\n\n")

	if len(m.groups) == 0 {
		b.WriteString(dimStyle.Render("  No groups to display."))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • q quit"))

	return b.String()
}

// renderList renders the cursor list of groups
func (m *Model) renderList() string {
	var b strings.Builder

	visible := m.visibleRows()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.groups) {
		end = len(m.groups)
	}

	for i := start; i < end; i++ {
		group := m.groups[i]
		line := fmt.Sprintf(" %3dx  %s", group.Count, truncate(group.Sample, m.width-10))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderDetail renders the detail pane for the selected group
func (m *Model) renderDetail() string {
	group := m.groups[m.cursor]

	detail := fmt.Sprintf(
		"Count: %d\nFirst line: %d\nLast line: %d\nSample: %s",
		group.Count,
		group.FirstLine,
		group.LastLine,
		truncate(group.Sample, m.width-14),
	)

	return detailBorderStyle.Width(m.width - 4).Render(detail)
}

// visibleRows returns how many list rows fit above the detail pane
func (m *Model) visibleRows() int {
	rows := m.height - 12
	if rows < 3 {
		rows = 3
	}
	return rows
}

// truncate shortens s to at most max runes, ellipsized
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// Run launches the interactive browser and blocks until the user quits
func Run(groups []analyzer.Group) error {
	model := NewModel(groups)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
