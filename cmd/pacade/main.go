// pacade is a terminal maze game and level editor.
//
// Usage:
//
//	pacade list              - List available apps
//	pacade play [level]      - Play the maze game
//	pacade edit [file]       - Edit a level file
//	pacade menu              - Start the interactive picker menu
//	pacade serve             - Start SSH server for remote play
//	pacade levels            - Manage the level library
//	pacade dump [file]       - Print a level as a source literal
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set level library path (default: ~/.pacade/levels.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import apps to register them
	_ "github.com/sirmarshall/pacade/internal/games/editor"
	_ "github.com/sirmarshall/pacade/internal/games/pacman"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacade",
	Short: "Pac Maze - a maze game and level editor in your terminal",
	Long: `Pac Maze is a terminal maze game with a built-in level editor.

Available commands:
  list     - Show all available apps
  play     - Play the maze game directly
  edit     - Open a level in the editor
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  levels   - Manage the level library
  dump     - Print a level as a source literal

Examples:
  pacade play
  pacade play levels/level1.txt
  pacade edit levels/level1.txt
  pacade menu
  pacade serve --ssh :2222
  pacade levels list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacade/levels.db", "Path to level library database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(dumpCmd)
}
