// Package desktop runs Tetris 2048 in an Ebiten window. It drives the same
// game.Game as the terminal shell and draws from game snapshots.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tetris2048/internal/audio"
	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/game"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

// ScoreStore saves finished games and lists the best ones.
type ScoreStore interface {
	SaveScore(rec storage.ScoreRecord) (int64, error)
	TopScores(gameID, speed string, limit int) ([]storage.ScoreEntry, error)
}

// Options configures a desktop session.
type Options struct {
	Store    ScoreStore    // nil disables score saving
	Logger   *log.Logger   // nil discards logs
	Sound    *audio.Player // nil disables sound
	Player   string
	Speed    config.SpeedPreset // empty opens the speed menu
	Seed     int64              // 0 seeds from the clock
	TickRate int
}

type mode int

const (
	modeMenu mode = iota
	modePlaying
)

// App implements ebiten.Game.
type App struct {
	cfg  config.Config
	opts Options
	mode mode

	cursor int
	best   map[config.SpeedPreset]int

	speed config.SpeedPreset
	game  *game.Game
	frame core.InputFrame
	state core.GameState
	saved bool
}

// NewApp creates the desktop application.
func NewApp(cfg config.Config, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	a := &App{
		cfg:   cfg,
		opts:  opts,
		best:  make(map[config.SpeedPreset]int),
		frame: core.NewInputFrame(),
	}
	for i, p := range config.Presets {
		if p == cfg.DefaultSpeed {
			a.cursor = i
		}
	}

	if opts.Speed != "" {
		a.start(opts.Speed)
	} else {
		a.loadBest()
	}
	return a
}

func (a *App) loadBest() {
	if a.opts.Store == nil {
		return
	}
	for _, p := range config.Presets {
		top, err := a.opts.Store.TopScores(game.ID, string(p), 1)
		if err != nil {
			a.opts.Logger.Warn("could not load high scores", "error", err)
			return
		}
		if len(top) > 0 {
			a.best[p] = top[0].Score
		}
	}
}

// start begins a new game at the given speed.
func (a *App) start(speed config.SpeedPreset) {
	seed := a.opts.Seed
	if seed == 0 || a.game != nil {
		seed = time.Now().UnixNano()
	}

	rc := core.DefaultConfig()
	rc.TickRate = a.opts.TickRate
	rc.Seed = seed

	a.speed = speed
	a.game = game.New(game.SettingsFrom(a.cfg, speed))
	a.game.Reset(rc)
	a.state = a.game.State()
	a.saved = false
	a.mode = modePlaying

	a.opts.Logger.Info("session started", "speed", speed, "seed", seed, "player", a.opts.Player)
}

// Update advances the application by one tick.
func (a *App) Update() error {
	if a.mode == modeMenu {
		return a.updateMenu()
	}
	return a.updateGame()
}

func (a *App) updateMenu() error {
	switch {
	case justPressedAny(ebiten.KeyQ, ebiten.KeyEscape):
		return ebiten.Termination
	case justPressedAny(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK):
		if a.cursor > 0 {
			a.cursor--
		}
	case justPressedAny(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ):
		if a.cursor < len(config.Presets)-1 {
			a.cursor++
		}
	case justPressedAny(ebiten.KeyEnter, ebiten.KeySpace):
		a.start(config.Presets[a.cursor])
	}
	return nil
}

func (a *App) updateGame() error {
	a.frame.Clear()
	pollActions(&a.frame)

	if a.frame.Has(core.ActionQuit) {
		a.opts.Logger.Info("session ended", "score", a.state.Score)
		return ebiten.Termination
	}

	if a.state.GameOver {
		switch {
		case a.frame.Has(core.ActionRestart):
			a.start(a.speed)
		case justPressedAny(ebiten.KeyM):
			a.mode = modeMenu
			a.loadBest()
		}
		return nil
	}

	res := a.game.Step(a.frame)
	a.state = res.State

	if len(res.Events) > 0 {
		if a.opts.Sound != nil {
			a.opts.Sound.PlayEvents(res.Events, res.State.Won)
		}
		for _, ev := range res.Events {
			a.opts.Logger.Debug("event", "kind", ev.Kind, "count", ev.Count, "points", ev.Points)
		}
	}

	if a.state.GameOver && !a.saved {
		a.saved = true
		a.recordGameOver()
	}
	return nil
}

func (a *App) recordGameOver() {
	st := a.state
	a.opts.Logger.Info("game over", "score", st.Score, "won", st.Won, "max_tile", st.MaxTile)

	if a.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := a.opts.Store.SaveScore(storage.ScoreRecord{
		GameID:  game.ID,
		Player:  a.opts.Player,
		Speed:   string(a.speed),
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Won:     st.Won,
	})
	if err != nil {
		a.opts.Logger.Error("could not save score", "error", err)
	}
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if a.mode == modeMenu {
		a.drawMenu(screen)
		return
	}

	snap := a.game.Snapshot()
	a.drawBoard(screen, snap)
	a.drawHUD(screen, snap)

	switch {
	case snap.GameOver:
		title := "GAME OVER"
		if snap.Won {
			title = "YOU WIN!"
		}
		drawOverlay(screen, []string{
			title,
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Max tile: %d", snap.MaxTile),
			"",
			"R restart  M menu  Q quit",
		})
	case snap.Paused:
		drawOverlay(screen, []string{"PAUSED", "", "P to resume"})
	}
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, opts Options) error {
	app := NewApp(cfg, opts)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Tetris 2048")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.opts.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: run game: %w", err)
	}
	return nil
}
