package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [track]",
	Short: "Show the best runs on a track",
	Long: `Display the longest recorded runs for the specified track.

Examples:
  racer scores canonical
  racer scores oval --limit 25
  racer scores canonical --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	def, err := resolveTrack(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, def.ID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(def.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", def.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'racer drive %s' to set the first distance!\n", def.ID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-8s  %-16s  %s\n", "Rank", "Distance", "Ticks", "Result", "Date", "Driver")
	fmt.Printf("  %-4s  %-10s  %-7s  %-8s  %-16s  %s\n", "----", "--------", "-----", "------", "----", "------")

	for i, r := range runs {
		result := "timeout"
		if r.Crashed {
			result = "crash"
		}
		fmt.Printf("  %-4d  %-10.1f  %-7d  %-8s  %-16s  %s\n",
			i+1, r.Distance, r.Ticks, result, r.CreatedAt.Format("2006-01-02 15:04"), r.Driver)
	}

	if stats, err := store.GetTrackStats(def.ID); err == nil {
		fmt.Println()
		fmt.Printf("%d runs, %d crashes, best %.1f\n", stats.RunsCount, stats.CrashCount, stats.BestDistance)
	}
}
