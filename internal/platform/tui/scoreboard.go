package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the filter sidebar
	sidebarWidth       = 16  // Width of filter sidebar
	maxScores          = 100 // Max scores to load
)

// scoreFilter is one tab of the scoreboard. An empty speed lists every preset.
type scoreFilter struct {
	title string
	speed string
}

func scoreFilters() []scoreFilter {
	filters := []scoreFilter{{title: "All"}}
	for _, p := range config.Presets {
		filters = append(filters, scoreFilter{title: p.Label(), speed: string(p)})
	}
	return filters
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next speed"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev speed"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	gameID      string
	filters     []scoreFilter
	cursor      int
	store       ScoreReader
	scores      []storage.ScoreEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(gameID string, store ScoreReader, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:      gameID,
		filters:     scoreFilters(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 16},
		{Title: "Speed", Width: 7},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Shrink the player column first on narrow terminals.
	fixed := 0
	for _, c := range columns {
		fixed += c.Width + 2
	}
	if fixed > tableWidth {
		columns[1].Width = max(6, columns[1].Width-(fixed-tableWidth))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores reloads the rows for the current filter.
func (m *ScoreboardModel) loadScores() {
	m.scores, m.loadErr = nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(m.gameID, m.filters[m.cursor].speed, maxScores)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		result := "over"
		if s.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			s.Speed,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.MaxTile),
			result,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.loadScores()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.cursor = (m.cursor + len(m.filters) - 1) % len(m.filters)
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s", m.filters[m.cursor].title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the filter list as a sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Speed\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, f := range m.filters {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + f.title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the filters as tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(f.title)
		} else {
			tabs[i] = tabStyle.Render(" " + f.title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load scores.")
	}
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(gameID string, store ScoreReader, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(gameID, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: run scoreboard: %w", err)
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
