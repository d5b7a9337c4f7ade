package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagNoMenu     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  Left/H/A   - Move left
  Right/L/D  - Move right
  Up/X/W     - Rotate clockwise
  Z          - Rotate counter-clockwise
  Down/S     - Soft drop
  Space      - Hard drop
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower gravity, gentler speed-up per level
  normal - Classic gravity curve
  hard   - Fast gravity from the start
  fixed  - No speed-up, gravity stays at the starting level

Examples:
  tetris play
  tetris play --level 5
  tetris play --difficulty hard --no-menu
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level 1-10 (skips the start menu)")
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the start menu, start at level 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "tetris",
	})

	// Surface config problems before entering the alt screen.
	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			logger.Fatal("cannot load config", "path", flagConfig, "error", err)
		}
	}

	// Get terminal size early for the start menu
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

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)

	switch {
	case flagLevel > 0:
		if flagLevel > 10 {
			logger.Fatal("starting level out of range", "level", flagLevel)
		}
		tetris.SetStartLevel(flagLevel)
	case !flagNoMenu:
		selection, err := tui.RunStartMenu(cfg)
		if err != nil {
			logger.Fatal("start menu failed", "error", err)
		}
		// User quit instead of choosing
		if selection == nil {
			return
		}
		tetris.SetStartLevel(selection.Level)
	}

	if err := tui.Run(tetris.New(), cfg); err != nil {
		logger.Fatal("game exited with error", "error", err)
	}
}
