package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/blueprint/pkg/catalog"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailKeyStyle    = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// CatalogModel - Interactive catalog browser
// =============================================================================

// catalogFilters is the tab cycle: every entry, then each priority bucket.
var catalogFilters = append([]catalog.Priority{""}, catalog.Priorities...)

// CatalogModel is the bubbletea model for browsing a catalog.
type CatalogModel struct {
	Catalog *catalog.Catalog
	Filter  int // index into catalogFilters
	Cursor  int
	Height  int
	Offset  int
}

// NewCatalogModel creates a browser over c showing every entry.
func NewCatalogModel(c *catalog.Catalog) CatalogModel {
	return CatalogModel{Catalog: c, Height: 15}
}

// Visible returns the entries that pass the current priority filter, in
// declaration order.
func (m CatalogModel) Visible() []catalog.Entry {
	p := catalogFilters[m.Filter]
	if p == "" {
		return m.Catalog.Entries
	}
	var out []catalog.Entry
	for _, e := range m.Catalog.Entries {
		if e.Priority.Bucket() == p {
			out = append(out, e)
		}
	}
	return out
}

// Selected returns the entry under the cursor.
func (m CatalogModel) Selected() (catalog.Entry, bool) {
	v := m.Visible()
	if m.Cursor < 0 || m.Cursor >= len(v) {
		return catalog.Entry{}, false
	}
	return v[m.Cursor], true
}

func (m CatalogModel) Init() tea.Cmd {
	return nil
}

func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.Filter = (m.Filter + 1) % len(catalogFilters)
			m.Cursor, m.Offset = 0, 0
		case "shift+tab":
			m.Filter = (m.Filter + len(catalogFilters) - 1) % len(catalogFilters)
			m.Cursor, m.Offset = 0, 0
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m CatalogModel) View() string {
	var b strings.Builder

	title := m.Catalog.Name
	if title == "" {
		title = "Catalog"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(filterTabs(m.Filter))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab filter  q quit"))
	b.WriteString("\n\n")

	visible := m.Visible()
	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		marker := catalog.DefaultLabels.Headings[e.Priority.Bucket()].Marker
		rows = append(rows, []string{cursor, marker, e.Path, string(e.Kind)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Path", "Kind").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	if e, ok := m.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(detailKeyStyle.Render("Path") + " " + StyleValue.Render(e.Path) + "\n")
		b.WriteString(detailKeyStyle.Render("Priority") + " " + StyleValue.Render(string(e.Priority)) + "\n")
		b.WriteString(detailKeyStyle.Render("Kind") + " " + StyleValue.Render(string(e.Kind)) + "\n")
		b.WriteString(detailKeyStyle.Render("Description") + " " + StyleValue.Render(e.Description) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(visible)), len(visible))))

	return b.String()
}

// filterTabs renders the priority filter bar with the active tab highlighted.
func filterTabs(active int) string {
	tabs := make([]string, len(catalogFilters))
	for i, p := range catalogFilters {
		name := string(p)
		if p == "" {
			name = "ALL"
		}
		if i == active {
			tabs[i] = listSelectedStyle.Render("[" + name + "]")
		} else {
			tabs[i] = listDimStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, "")
}
