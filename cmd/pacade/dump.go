package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirmarshall/pacade/internal/maze"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print a level as a source literal",
	Long: `Print a level as a nested-array source literal, for pasting a board
into code. Without an argument the built-in board is printed.

Examples:
  pacade dump
  pacade dump levels/level1.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDump,
}

func runDump(_ *cobra.Command, args []string) {
	grid := maze.ClassicBoard()
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
			os.Exit(1)
		}
		grid = maze.Parse(string(data))
	}

	fmt.Println(grid.DumpLiteral())
}
