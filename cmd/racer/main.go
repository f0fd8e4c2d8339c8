// racer drives a car around a walled track in the terminal, either by
// keyboard or with a population of autopilot drivers.
//
// Usage:
//
//	racer list              - List available tracks
//	racer drive <track>     - Drive a track with the keyboard
//	racer menu              - Pick tracks interactively
//	racer sim <track>       - Run autopilot drivers headless
//	racer scores <track>    - Show the best runs on a track
//	racer serve             - Start SSH server for remote driving
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.racer/runs.db)
//	--config <path>       - Use a custom racer.yaml
//	--track-file <path>   - Drive a track loaded from a YAML file
//	--track-dir <path>    - Also look up track IDs in this directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import tracks to register them
	_ "github.com/vovakirdan/tui-racer/internal/tracks/canonical"
	_ "github.com/vovakirdan/tui-racer/internal/tracks/oval"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagTrackFile string
	flagTrackDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Racer - drive a sensor-equipped car around a track in your terminal",
	Long: `Racer simulates an arcade-style car on a track bounded by walls.
The car carries a fan of 16 distance sensors and crashes when its
footprint touches a wall.

Available commands:
  list     - Show all available tracks
  drive    - Drive a track with the keyboard
  menu     - Interactive track picker
  sim      - Run a population of autopilot drivers without a UI
  scores   - View the best runs on a track
  serve    - Start SSH server for remote driving

Examples:
  racer list
  racer drive canonical
  racer drive --track-file ./tracks/hairpin.yaml
  racer sim oval --population 32 --workers 8
  racer scores canonical`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.racer/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTrackFile, "track-file", "", "Load the track from a YAML file instead of the registry")
	rootCmd.PersistentFlags().StringVar(&flagTrackDir, "track-dir", "", "Directory of YAML track files to search by ID")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(driveCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
