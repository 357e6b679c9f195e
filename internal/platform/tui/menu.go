package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

// ScoreReader lists stored high scores.
type ScoreReader interface {
	TopScores(gameID, speed string, limit int) ([]storage.ScoreEntry, error)
}

// SpeedMenuModel lets the player pick a fall speed before a game.
type SpeedMenuModel struct {
	gameID    string
	cfg       config.Config
	best      map[config.SpeedPreset]int
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	selected       *config.SpeedPreset
	quitting       bool
	openScoreboard bool
}

// NewSpeedMenuModel creates the menu with the configured default speed
// preselected. scores may be nil.
func NewSpeedMenuModel(gameID string, cfg config.Config, scores ScoreReader, width, height int) SpeedMenuModel {
	m := SpeedMenuModel{
		gameID:    gameID,
		cfg:       cfg,
		best:      make(map[config.SpeedPreset]int),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range config.Presets {
		if p == cfg.DefaultSpeed {
			m.cursor = i
		}
		if scores == nil {
			continue
		}
		if top, err := scores.TopScores(gameID, string(p), 1); err == nil && len(top) > 0 {
			m.best[p] = top[0].Score
		}
	}
	return m
}

// Init initializes the menu model.
func (m SpeedMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m SpeedMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m SpeedMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(config.Presets)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		p := config.Presets[m.cursor]
		m.selected = &p
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m SpeedMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	topPad := max(0, (m.height-12)/2)
	b.WriteString(strings.Repeat("\n", topPad))

	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S   2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a speed", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		line := fmt.Sprintf(" %-7s %4dms ", p.Label(), m.cfg.FallDelay(p).Milliseconds())
		if best, ok := m.best[p]; ok {
			line += fmt.Sprintf(" best %-6d", best)
		} else {
			line += "            "
		}

		style := menuItemStyle
		if i == m.cursor {
			style = menuFocusStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("↑/↓ choose  Enter play  Tab scores  Q quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// MenuResult holds the result of running the speed menu.
type MenuResult struct {
	Speed           config.SpeedPreset
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// Result reports what the player chose.
func (m SpeedMenuModel) Result() MenuResult {
	res := MenuResult{Width: m.width, Height: m.height}
	switch {
	case m.openScoreboard:
		res.WantsScoreboard = true
	case m.selected != nil:
		res.Speed = *m.selected
	default:
		res.Quit = true
	}
	return res
}

// RunSpeedMenu runs the speed menu and returns the selection.
func RunSpeedMenu(gameID string, cfg config.Config, scores ScoreReader, width, height int) (MenuResult, error) {
	model := NewSpeedMenuModel(gameID, cfg, scores, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, fmt.Errorf("tui: run menu: %w", err)
	}

	m, ok := finalModel.(SpeedMenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}
	return m.Result(), nil
}
