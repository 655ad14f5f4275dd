package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/games/pacman"
	"github.com/sirmarshall/pacade/internal/maze"
	"github.com/sirmarshall/pacade/internal/platform/tui"
	"github.com/sirmarshall/pacade/internal/registry"
	"github.com/sirmarshall/pacade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive picker menu",
	Long: `Start the interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an app, Tab for the
level library. After an app exits, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab/L        - Level library
  Q            - Quit

Examples:
  pacade menu
  pacade menu --fps 30
  pacade menu --db ./levels.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open the level library
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open level library: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		gameID := menuResult.GameID

		if menuResult.WantsLevels {
			picked, goBack, lvErr := tui.RunLevelBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if lvErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", lvErr)
			}
			switch {
			case picked != nil:
				pacman.SetGrid(maze.Parse(picked.Data))
				gameID = "pacmaze"
			case goBack:
				continue // Back to menu
			default:
				return // User quit from the browser
			}
		}

		if gameID == "" {
			break
		}

		app, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating app: %v\n", err)
			continue
		}

		if err := tui.Run(app, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		}

		// Loop back to menu
	}
}
