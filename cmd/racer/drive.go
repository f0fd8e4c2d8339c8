package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var driveCmd = &cobra.Command{
	Use:   "drive [track]",
	Short: "Drive a track with the keyboard",
	Long: `Drive the specified track. The run is recorded when the car crashes,
when you restart, or when you leave.

Controls:
  Up/W       - Throttle
  Down/S     - Brake
  Left/A     - Steer left
  Right/D    - Steer right
  P/Space    - Pause
  R          - Restart
  Esc        - Back
  Ctrl+S     - Save a screenshot to ~/.racer/screenshots
  Q/Ctrl+C   - Quit

Examples:
  racer drive canonical
  racer drive oval --fps 30
  racer drive --track-file ./tracks/hairpin.yaml
  racer drive hairpin --track-dir ./tracks`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDrive,
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

func runDrive(_ *cobra.Command, args []string) {
	def, err := resolveTrack(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - driving still works
		store = nil
	}

	runErr := tui.Run(def, rc.Vehicle.Params(), store, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running drive: %v\n", runErr)
		os.Exit(1)
	}
}
