package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris2048/internal/audio"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

// ScoreSaver persists finished games.
type ScoreSaver interface {
	SaveScore(rec storage.ScoreRecord) (int64, error)
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Options configures a play session.
type Options struct {
	Store  ScoreSaver    // nil disables score saving
	Logger *log.Logger   // nil discards logs
	Sound  *audio.Player // nil disables sound
	Player string
	Speed  string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	started    time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	// The bottom line is reserved for key help
	cfg.ScreenH = max(1, cfg.ScreenH-1)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("session started",
		"game", m.game.ID(), "player", m.opts.Player, "speed", m.opts.Speed, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.opts.Logger.Info("session ended",
			"score", m.gameState.Score, "game_over", m.gameState.GameOver,
			"duration", time.Since(m.started).Round(time.Second))
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(1, msg.Height-1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.opts.Logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.opts.Sound != nil {
		m.opts.Sound.PlayEvents(result.Events, result.State.Won)
	}
	for _, e := range result.Events {
		m.opts.Logger.Debug("event", "kind", e.Kind, "count", e.Count, "points", e.Points)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGameOver()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordGameOver logs the result and saves it once. Save failures are
// logged and do not interrupt the session.
func (m *Model) recordGameOver() {
	st := m.gameState
	m.opts.Logger.Info("game over", "score", st.Score, "won", st.Won, "max_tile", st.MaxTile)

	if m.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreRecord{
		GameID:  m.game.ID(),
		Player:  m.opts.Player,
		Speed:   m.opts.Speed,
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Won:     st.Won,
	})
	if err != nil {
		m.opts.Logger.Error("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the most recent game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run game: %w", err)
	}
	return nil
}
