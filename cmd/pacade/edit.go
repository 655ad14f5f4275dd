package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirmarshall/pacade/internal/config"
	"github.com/sirmarshall/pacade/internal/core"
	"github.com/sirmarshall/pacade/internal/games/editor"
	"github.com/sirmarshall/pacade/internal/platform/tui"
)

var (
	flagEditorConfig string
	flagCols         int
	flagRows         int
	flagBordered     bool
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open a level in the editor",
	Long: `Start the level editor on a file. The file is loaded if it exists
and becomes the save target either way. Without an argument the configured
file path is used.

Controls:
  Mouse/click  - Paint (drag to draw strokes)
  WASD/Arrows  - Move the paint cursor
  Enter/Space  - Paint at the cursor
  0-3          - Select tool: erase, wall, pellet, power pellet
  Ctrl+S       - Save
  Ctrl+X       - Clear to the blank template
  Esc          - Menu
  Q/Ctrl+C     - Quit

Examples:
  pacade edit
  pacade edit levels/level1.txt
  pacade edit levels/big.txt --cols 40 --rows 30
  pacade edit --bordered`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditorConfig, "config", "", "Path to custom editor config YAML")
	editCmd.Flags().IntVar(&flagCols, "cols", 0, "Blank template width (overrides config)")
	editCmd.Flags().IntVar(&flagRows, "rows", 0, "Blank template height (overrides config)")
	editCmd.Flags().BoolVar(&flagBordered, "bordered", false, "Start the blank template with a wall ring")
}

func runEdit(cmd *cobra.Command, args []string) {
	editorCfg, err := config.LoadEditor(flagEditorConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagCols > 0 {
		editorCfg.Grid.Cols = flagCols
	}
	if flagRows > 0 {
		editorCfg.Grid.Rows = flagRows
	}
	if cmd.Flags().Changed("bordered") {
		editorCfg.Grid.Bordered = flagBordered
	}
	if len(args) > 0 {
		editor.SetFilePath(args[0])
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

	app := editor.New(editorCfg)
	if err := tui.Run(app, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}
