package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirmarshall/pacade/internal/config"
	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/games/pacman"
	"github.com/sirmarshall/pacade/internal/platform/tui"
)

var flagGameConfig string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the maze game",
	Long: `Start the maze game, optionally on a specific level file.
Without an argument the configured level is used, falling back to the
built-in board.

Controls:
  WASD/Arrows - Move
  R           - Respawn
  P           - Pause
  Esc         - Back to menu
  Q/Ctrl+C    - Quit

Examples:
  pacade play
  pacade play levels/level1.txt
  pacade play --config ./my-game.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagGameConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) {
	gameCfg, err := config.LoadGame(flagGameConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 0 {
		pacman.SetLevelPath(args[0])
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game := pacman.New(gameCfg)
	if err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
