package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vmatyush/brickstorm/internal/config"
	"github.com/vmatyush/brickstorm/internal/core"
	"github.com/vmatyush/brickstorm/internal/platform/tui"
	"github.com/vmatyush/brickstorm/internal/registry"
	"github.com/vmatyush/brickstorm/internal/sim"
	"github.com/vmatyush/brickstorm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagEndless    bool
	flagEventsLog  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play brickstorm",
	Long: `Start a game session. Without flags an interactive picker offers
campaign, endless mode and level selection.

Controls:
  A/D, arrows  - Move paddle
  Shift+A/D    - Dash (short burst with cooldown)
  ,/.          - Aim the serve
  Space        - Launch resting balls
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  brickstorm play
  brickstorm play --difficulty hard
  brickstorm play --endless
  brickstorm play --level 5 --seed 42
  brickstorm play --config ./my-brickstorm.yaml
  brickstorm play --events-log ./events.log`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at campaign level N (1-indexed, skips the picker)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode (skips the picker)")
	playCmd.Flags().StringVar(&flagEventsLog, "events-log", "", "Append simulation events to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	installCustomLevels()

	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sim.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		sim.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	}

	gameID := "brickstorm"
	switch {
	case flagEndless:
		gameID = "brickstorm_endless"
	case flagLevel > 0:
		sim.SetStartLevel(flagLevel - 1)
	default:
		// Interactive picker; Tab flips to the scoreboard and back.
		for {
			result, selErr := tui.RunModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}

			if result.WantsScoreboard {
				if !showScoreboard(cfg) {
					return
				}
				continue
			}

			if result.Selection == nil {
				return // backed out or quit
			}

			if result.Selection.Mode == tui.ModeEndless {
				gameID = "brickstorm_endless"
			}
			if result.Selection.Level > 0 {
				sim.SetStartLevel(result.Selection.Level - 1)
			}
			break
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Attach the event sink before the session starts
	if flagEventsLog != "" {
		sink, sinkErr := tui.OpenLogSink(flagEventsLog)
		if sinkErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening events log: %v\n", sinkErr)
			os.Exit(1)
		}
		defer sink.Close()

		if g, ok := game.(*sim.Game); ok {
			g.SetSink(sink)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// showScoreboard opens the scoreboard screen. Returns true if the user wants
// to go back to the picker, false to quit.
func showScoreboard(cfg core.RuntimeConfig) bool {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		return false
	}
	defer store.Close()

	goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}
	return goBack
}
