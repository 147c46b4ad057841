package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/uconv/internal/engine"
	listview "github.com/rshade/uconv/internal/tui/list"
	"github.com/rshade/uconv/internal/units"
)

// CatalogSortField is the ordering applied to the browser list.
type CatalogSortField int

// Sort fields, cycled with the s key.
const (
	SortByCatalog CatalogSortField = iota
	SortByName
	SortByDescription

	numCatalogSortFields = 3
)

// String returns the label shown in the status line.
func (f CatalogSortField) String() string {
	switch f {
	case SortByName:
		return "name"
	case SortByDescription:
		return "description"
	default:
		return "catalog"
	}
}

// Column widths for the catalog list.
const (
	colWidthName        = 18
	colWidthDescription = 30
	catalogChromeHeight = 6
)

// CatalogModel is the Bubble Tea model behind "uconv list --interactive".
type CatalogModel struct {
	state   ViewState
	all     []units.CatalogEntry
	entries []units.CatalogEntry

	virtualList *listview.VirtualListModel[units.CatalogEntry]
	textInput   textinput.Model

	width      int
	height     int
	sortBy     CatalogSortField
	showFilter bool
}

// NewCatalogModel creates a browser over entries in catalog order.
func NewCatalogModel(entries []units.CatalogEntry) *CatalogModel {
	ti := textinput.New()
	ti.Placeholder = "Filter units..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth

	m := &CatalogModel{
		state:     ViewStateList,
		all:       entries,
		entries:   entries,
		textInput: ti,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.virtualList = listview.NewVirtualListModel(entries, m.listHeight(), m.width, renderEntry)
	return m
}

// Init implements tea.Model.
func (m *CatalogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.virtualList.Update(tea.WindowSizeMsg{Width: m.width, Height: m.listHeight()})
		return m, nil
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	default:
		return m, nil
	}
}

func (m *CatalogModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *CatalogModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter:
			if len(m.entries) > 0 {
				m.state = ViewStateDetail
			}
			return m, nil
		case keySlash:
			m.showFilter = true
			return m, m.textInput.Focus()
		case keyS:
			m.sortBy = (m.sortBy + 1) % numCatalogSortFields
			m.applyFilter()
			return m, nil
		case keyEsc:
			if m.textInput.Value() != "" {
				m.textInput.SetValue("")
				m.applyFilter()
			}
			return m, nil
		}
	}

	_, cmd := m.virtualList.Update(msg)
	return m, cmd
}

func (m *CatalogModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
		}
	}
	return m, nil
}

// applyFilter recomputes the visible entries from the filter text and sort.
func (m *CatalogModel) applyFilter() {
	entries := engine.FilterCatalog(m.all, m.textInput.Value())
	if m.sortBy != SortByCatalog {
		entries = slices.Clone(entries)
		slices.SortStableFunc(entries, func(a, b units.CatalogEntry) int {
			if m.sortBy == SortByName {
				return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			}
			return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
		})
	}
	m.entries = entries
	m.virtualList.SetItems(entries)
	m.virtualList.SetSelected(0)
}

func (m *CatalogModel) listHeight() int {
	return max(m.height-catalogChromeHeight, minHeight)
}

// Entries returns the entries currently shown, after filtering and sorting.
func (m *CatalogModel) Entries() []units.CatalogEntry {
	return m.entries
}

// State returns the current view state.
func (m *CatalogModel) State() ViewState {
	return m.state
}

// SortField returns the current sort field.
func (m *CatalogModel) SortField() CatalogSortField {
	return m.sortBy
}

// Selected returns the entry under the cursor, or nil when the list is empty.
func (m *CatalogModel) Selected() *units.CatalogEntry {
	return m.virtualList.GetSelectedItem()
}

// View renders the current view.
func (m *CatalogModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		if entry := m.Selected(); entry != nil {
			return RenderCatalogDetail(*entry)
		}
		return ""
	default:
		return m.renderListView()
	}
}

func (m *CatalogModel) renderListView() string {
	title := HeaderStyle.Render(fmt.Sprintf("UNITS (%d of %d, sorted by %s)",
		m.virtualList.ItemCount(), len(m.all), m.sortBy))

	header := TableHeaderStyle.Render(fmt.Sprintf("%-*s  %-*s  %s",
		colWidthName, "Name", colWidthDescription, "Description", "Synonyms"))

	parts := []string{title, header}
	if m.virtualList.ItemCount() == 0 {
		parts = append(parts, WarningStyle.Render("No units match the filter."))
	} else {
		parts = append(parts,
			m.virtualList.View(),
			HelpStyle.Render(fmt.Sprintf("Rows %d-%d of %d",
				m.virtualList.VisibleFrom()+1, m.virtualList.VisibleTo(), m.virtualList.ItemCount())))
	}

	help := HelpStyle.Render("[/] Filter  [s] Sort  [↑↓/jk] Navigate  [Enter] Details  [q] Quit")

	if m.showFilter || m.textInput.Value() != "" {
		parts = append(parts, "Filter: "+m.textInput.View())
	}
	parts = append(parts, help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderEntry(entry units.CatalogEntry, selected bool) string {
	row := fmt.Sprintf("%-*s  %-*s  %s",
		colWidthName, truncate(entry.Name, colWidthName),
		colWidthDescription, truncate(entry.Description, colWidthDescription),
		strings.Join(entry.Synonyms, ", "))
	if selected {
		return SelectedStyle.Render(row)
	}
	return row
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

// RenderCatalogDetail renders one unit with its value in base units.
func RenderCatalogDetail(entry units.CatalogEntry) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("UNIT DETAIL"))
	sb.WriteString("\n\n")

	line := func(label, value string) {
		sb.WriteString(LabelStyle.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	line("Name:", entry.Name)
	line("Plural:", entry.ID.PluralName())
	line("Description:", entry.Description)
	line("Synonyms:", strings.Join(entry.Synonyms, ", "))
	line("Base units:", baseDescription(entry.ID))

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("[Esc] Back to list  [q] Quit"))
	return sb.String()
}

// baseDescription renders one of u in base units, e.g. "0.3048 metre".
func baseDescription(u units.UnitID) string {
	base, scale, err := units.Reduce(units.Single(u))
	switch {
	case errors.Is(err, units.ErrTemperatureNotInRate):
		return "absolute temperature scale"
	case err != nil:
		return err.Error()
	case base.IsEmpty():
		return units.FormatNumber(scale, 6)
	default:
		return units.FormatNumber(scale, 6) + " " + units.FormatUnits(base, scale != 1)
	}
}

// RunCatalogBrowser runs the interactive browser until the user quits.
func RunCatalogBrowser(ctx context.Context, entries []units.CatalogEntry, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewCatalogModel(entries),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running catalog browser: %w", err)
	}
	return nil
}
