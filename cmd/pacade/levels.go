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

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage the level library",
	Long: `Manage the shared level library database.

Levels live as named entries in a SQLite database. The editor and the
game read level files directly; the library is for collecting, sharing
and browsing boards.

Examples:
  pacade levels list
  pacade levels import classic levels/level1.txt
  pacade levels export classic ./out.txt
  pacade levels delete classic
  pacade levels browse`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored levels",
	Run:   runLevelsList,
}

var levelsImportCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Import a level file into the library",
	Args:  cobra.ExactArgs(2),
	Run:   runLevelsImport,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Export a stored level to a file",
	Args:  cobra.ExactArgs(2),
	Run:   runLevelsExport,
}

var levelsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored level",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsDelete,
}

var levelsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the library interactively",
	Run:   runLevelsBrowse,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsImportCmd)
	levelsCmd.AddCommand(levelsExportCmd)
	levelsCmd.AddCommand(levelsDeleteCmd)
	levelsCmd.AddCommand(levelsBrowseCmd)
}

// openLibrary opens the level library or exits with an error.
func openLibrary() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening level library: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runLevelsList(_ *cobra.Command, _ []string) {
	store := openLibrary()
	defer store.Close()

	entries, err := store.ListLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("The library is empty.")
		fmt.Println("Run 'pacade levels import <name> <file>' to add a level.")
		return
	}

	fmt.Printf("  %-24s  %-8s  %-8s  %s\n", "Name", "Size", "Pellets", "Updated")
	for _, e := range entries {
		grid := maze.Parse(e.Data)
		fmt.Printf("  %-24s  %-8s  %-8d  %s\n",
			e.Name,
			fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
			grid.PelletCount(),
			e.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
}

func runLevelsImport(_ *cobra.Command, args []string) {
	name, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	// Normalize through a parse/serialize round trip so ragged rows are
	// padded and unknown characters dropped before the level is shared.
	normalized := maze.Serialize(maze.Parse(string(data)))

	store := openLibrary()
	defer store.Close()

	if err := store.SaveLevel(name, normalized); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %s as %q\n", path, name)
}

func runLevelsExport(_ *cobra.Command, args []string) {
	name, path := args[0], args[1]

	store := openLibrary()
	defer store.Close()

	entry, err := store.Level(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no level named %q\n", name)
		os.Exit(1)
	}

	if err := os.WriteFile(path, []byte(entry.Data+"\n"), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Exported %q to %s\n", name, path)
}

func runLevelsDelete(_ *cobra.Command, args []string) {
	name := args[0]

	store := openLibrary()
	defer store.Close()

	if err := store.DeleteLevel(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %q\n", name)
}

func runLevelsBrowse(_ *cobra.Command, _ []string) {
	store := openLibrary()
	defer store.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	picked, _, err := tui.RunLevelBrowser(store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if picked == nil {
		return
	}

	// Play the picked level straight away.
	pacman.SetGrid(maze.Parse(picked.Data))
	game, err := registry.Create("pacmaze")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS}
	if err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
