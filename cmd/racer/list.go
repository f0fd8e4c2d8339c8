package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/track"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tracks",
	Long: `Shows the built-in tracks, plus any YAML tracks found under --track-dir.`,
	Run: runList,
}

type listRow struct {
	id, title, source string
	walls             int
}

func runList(_ *cobra.Command, _ []string) {
	var rows []listRow
	for _, t := range registry.List() {
		rows = append(rows, listRow{id: t.ID, title: t.Title, walls: t.Walls, source: "built-in"})
	}

	if flagTrackDir != "" {
		defs, err := track.NewLoader(flagTrackDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		for _, d := range defs {
			rows = append(rows, listRow{id: d.ID, title: d.Name, walls: len(d.Track.Walls()), source: d.FilePath})
		}
	}

	if len(rows) == 0 {
		fmt.Println("No tracks available.")
		return
	}

	fmt.Println("Available tracks:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, r := range rows {
		maxIDLen = max(maxIDLen, len(r.id))
		maxTitleLen = max(maxTitleLen, len(r.title))
	}

	fmt.Printf("  %-*s  %-*s  %5s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Walls", "Source")
	fmt.Printf("  %-*s  %-*s  %5s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "------")

	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %5d  %s\n", maxIDLen, r.id, maxTitleLen, r.title, r.walls, r.source)
	}

	fmt.Println()
	fmt.Println("Run 'racer drive <id>' to drive a track.")
}
