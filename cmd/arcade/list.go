package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade and the buttons each one reads.`,
	Run: func(cmd *cobra.Command, args []string) {
		printGames(cmd.OutOrStdout())
	},
}

func printGames(w io.Writer) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Buttons")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Buttons)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
