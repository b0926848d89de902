package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"worldcup-stats-service/internal/app/tables"
	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/resultlist"
)

const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyReset  = "r"
	keySpace  = " "
	minHeight = 5

	// chromeHeight is the space taken by the header, highlight line and help.
	chromeHeight = 6
)

// TableModel is the Bubble Tea model for the expandable results table.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type TableModel struct {
	manager   *resultlist.Manager
	tree      *bracket.Tree
	scale     chart.LinearScale
	table     table.Model
	views     []tables.RowView
	highlight bracket.Highlight
	title     string
	err       error
	quitting  bool
}

// NewTableModel builds a collapsed table over teams. tree may be nil, in which
// case hovering highlights nothing.
func NewTableModel(title string, teams []results.TeamRecord, tree *bracket.Tree, height int) (TableModel, error) {
	manager, err := resultlist.New(teams)
	if err != nil {
		return TableModel{}, err
	}
	m := TableModel{
		manager: manager,
		tree:    tree,
		scale:   chart.GoalScale(teams),
		title:   title,
	}
	m.table = table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(max(height-chromeHeight, minHeight)),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	m.table.SetStyles(s)

	m.refresh()
	return m, nil
}

func (m TableModel) Init() tea.Cmd {
	return nil
}

func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chromeHeight, minHeight))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TableModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case keyEnter, keySpace:
		m.err = m.manager.Toggle(m.table.Cursor())
		m.refresh()
		return m, nil
	case keyReset:
		m.manager.Reset()
		m.err = nil
		m.table.SetCursor(0)
		m.refresh()
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		m.hover()
		return m, cmd
	}
}

// refresh re-renders every row, then recomputes the hover highlight.
func (m *TableModel) refresh() {
	m.views = tables.Render(m.manager.Rows(), m.scale)
	m.table.SetRows(tableRows(m.views))
	m.hover()
}

func (m *TableModel) hover() {
	m.highlight = bracket.Highlight{}
	if m.tree == nil {
		return
	}
	sel, err := m.manager.Selection(m.table.Cursor())
	if err != nil {
		return
	}
	m.highlight = m.tree.Highlight(sel)
}

func (m TableModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.highlightLine())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render("up/down move  enter expand/collapse  r reset  q quit"))
	return b.String()
}

func (m TableModel) highlightLine() string {
	if len(m.highlight.Labels) == 0 {
		return HelpStyle.Render("bracket: nothing to highlight")
	}
	return HighlightStyle.Render(fmt.Sprintf("bracket: %d links, %d labels (%s)",
		len(m.highlight.Links), len(m.highlight.Labels), strings.Join(m.highlight.Labels, ", ")))
}

// Rows returns the rows as last rendered.
func (m TableModel) Rows() []tables.RowView {
	return m.views
}

// Highlight returns what the row under the cursor lights up in the bracket.
func (m TableModel) Highlight() bracket.Highlight {
	return m.highlight
}

// Cursor returns the index of the row under the cursor.
func (m TableModel) Cursor() int {
	return m.table.Cursor()
}
