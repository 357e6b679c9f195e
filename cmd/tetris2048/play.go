package main

import (
	"fmt"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris2048/internal/audio"
	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/game"
	"github.com/vovakirdan/tetris2048/internal/platform/desktop"
	"github.com/vovakirdan/tetris2048/internal/platform/tui"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

var (
	flagSpeed string
	flagGUI   bool
	flagSound bool
	flagName  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris 2048",
	Long: `Start a game. Without --speed a menu asks for the fall speed and the
game returns to it after each session.

Controls:
  Left/Right, A/D, H/L  - Move
  Up, W, K              - Rotate clockwise
  Down, S, J            - Soft drop
  Space                 - Hard drop
  P/Esc                 - Pause
  R                     - Restart (after game over)
  Q/Ctrl+C              - Quit

Speeds:
  slow   (easy)   - 400ms per row
  normal          - 200ms per row
  fast   (hard)   - 75ms per row

Examples:
  tetris2048 play
  tetris2048 play --speed hard
  tetris2048 play --gui --sound
  tetris2048 play --name alice --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast (skips the menu)")
	cmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of the terminal")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().StringVar(&flagName, "name", "", "Player name for high scores (default: random)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var speed config.SpeedPreset
	if cmd.Flags().Changed("speed") {
		if speed, err = config.ParseSpeed(flagSpeed); err != nil {
			return err
		}
	}

	player := flagName
	if player == "" {
		player = petname.Generate(2, "-")
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := openSound()
	if sound != nil {
		defer sound.Close()
	}

	if flagGUI {
		opts := desktop.Options{
			Logger:   logger,
			Sound:    sound,
			Player:   player,
			Speed:    speed,
			Seed:     flagSeed,
			TickRate: flagFPS,
		}
		if store != nil {
			opts.Store = store
		}
		return desktop.Run(cfg, opts)
	}

	return playTerminal(cfg, speed, player, store, sound)
}

// playTerminal runs the speed menu and game loop in the terminal. A fixed
// speed plays a single session.
func playTerminal(cfg config.Config, speed config.SpeedPreset, player string, store *storage.Store, sound *audio.Player) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	var scores tui.ScoreReader
	opts := tui.Options{
		Logger: logger,
		Sound:  sound,
		Player: player,
	}
	if store != nil {
		scores = store
		opts.Store = store
	}

	seed := flagSeed
	for {
		chosen := speed
		if chosen == "" {
			res, err := tui.RunSpeedMenu(game.ID, cfg, scores, width, height)
			if err != nil {
				return err
			}
			width, height = res.Width, res.Height

			if res.Quit {
				return nil
			}
			if res.WantsScoreboard {
				goBack, err := tui.RunScoreboard(game.ID, scores, width, height)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}
			chosen = res.Speed
		}

		opts.Speed = string(chosen)
		rc := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		}
		if err := tui.Run(game.New(game.SettingsFrom(cfg, chosen)), opts, rc); err != nil {
			return fmt.Errorf("play: %w", err)
		}

		if speed != "" {
			return nil
		}
		// Later sessions from the menu always get a fresh seed.
		seed = 0
	}
}

// openSound starts the audio device when --sound is set. Failure is logged
// and the game runs silent.
func openSound() *audio.Player {
	if !flagSound {
		return nil
	}
	p := audio.NewPlayer(audio.DefaultSampleRate)
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return p
}
