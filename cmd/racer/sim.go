package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/sim"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var (
	flagPopulation int
	flagWorkers    int
	flagMaxTicks   int
	flagSeed       int64
	flagSave       bool
	flagVerbose    bool
)

var simCmd = &cobra.Command{
	Use:   "sim [track]",
	Short: "Run a population of autopilot drivers headless",
	Long: `Run a population of autopilot drivers on the track concurrently and
report how far each one got. Every driver gets its own car; the track is
shared read-only. A run ends when the car crashes or after --max-ticks.

Population size, worker count and tick limit default to the values in
racer.yaml. Autopilot tuning is jittered per driver from --seed.

Examples:
  racer sim canonical
  racer sim oval --population 32 --workers 8 --max-ticks 2000
  racer sim canonical --save --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagPopulation, "population", 0, "Number of drivers (0 = from config)")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent sessions (0 = from config)")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Tick limit per run (0 = from config)")
	simCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for autopilot jitter (0 = random based on time)")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record every run in the database")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every finished run")
}

func runSim(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	def, err := resolveTrack(args)
	if err != nil {
		logger.Fatal("cannot resolve track", "error", err)
	}

	rc, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	population := pick(flagPopulation, rc.Simulation.Population)
	opts := sim.PopulationOptions{
		Workers:  pick(flagWorkers, rc.Simulation.Workers),
		MaxTicks: pick(flagMaxTicks, rc.Simulation.MaxTicks),
		Logger:   logger,
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := rc.Vehicle.Params()
	base := sim.Autopilot{
		Limits:  params,
		Caution: rc.Autopilot.Caution,
		Gain:    rc.Autopilot.SteerGain,
	}
	drivers := sim.Jittered(base, population, rc.Autopilot.Jitter, seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting population",
		"track", def.ID,
		"drivers", population,
		"workers", opts.Workers,
		"max_ticks", opts.MaxTicks,
		"seed", seed,
	)

	started := time.Now()
	results, err := sim.RunPopulation(ctx, def.Track, params, def.Start, drivers, opts)
	if err != nil {
		logger.Error("population aborted", "error", err)
		stop()
		os.Exit(1)
	}

	crashed := 0
	for _, r := range results {
		if r.Crashed {
			crashed++
		}
	}
	best, _ := sim.Best(results)
	logger.Info("population finished",
		"elapsed", time.Since(started).Round(time.Millisecond),
		"crashed", crashed,
		"best_driver", best.Driver,
		"best_distance", fmt.Sprintf("%.1f", best.Travelled),
	)

	printResults(results)

	if flagSave {
		if err := saveResults(def.ID, results); err != nil {
			logger.Error("could not save runs", "error", err)
			stop()
			os.Exit(1)
		}
		logger.Info("runs saved", "count", len(results), "db", flagDBPath)
	}
}

// pick returns flag when set, otherwise the configured value.
func pick(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

func printResults(results []sim.RunResult) {
	fmt.Printf("  %-6s  %-10s  %-7s  %-8s  %s\n", "Driver", "Distance", "Ticks", "Result", "Tuning")
	fmt.Printf("  %-6s  %-10s  %-7s  %-8s  %s\n", "------", "--------", "-----", "------", "------")
	for _, r := range results {
		result := "timeout"
		if r.Crashed {
			result = "crash"
		}
		fmt.Printf("  %-6d  %-10.1f  %-7d  %-8s  %s\n", r.Driver, r.Travelled, r.Ticks, result, r.Name)
	}
}

func saveResults(trackID string, results []sim.RunResult) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs := make([]storage.Run, len(results))
	for i, r := range results {
		runs[i] = storage.Run{
			TrackID:  trackID,
			Driver:   r.Name,
			Ticks:    int64(r.Ticks),
			Distance: r.Travelled,
			Crashed:  r.Crashed,
		}
	}
	return store.SaveRuns(runs)
}
