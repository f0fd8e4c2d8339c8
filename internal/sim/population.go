package sim

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

// PopulationOptions controls a population run.
type PopulationOptions struct {
	Workers  int         // concurrent sessions; <= 0 means one per driver
	MaxTicks int         // ticks after which a surviving run is stopped
	Logger   *log.Logger // optional
}

// RunResult summarizes one driver's run.
type RunResult struct {
	Driver    int    // index into the drivers slice
	Name      string // fmt.Sprint of the driver
	Ticks     uint64
	Travelled float64
	Crashed   bool
}

// ctxCheckEvery is how many ticks pass between context checks.
const ctxCheckEvery = 64

// RunPopulation drives every driver in its own Session on the shared track.
// Each run ends at a crash or after opts.MaxTicks. Results are returned in
// driver order. A cancelled context aborts all runs and returns its error.
func RunPopulation(ctx context.Context, t *track.Track, p vehicle.Params, start track.Start, drivers []Driver, opts PopulationOptions) ([]RunResult, error) {
	if opts.MaxTicks <= 0 {
		return nil, fmt.Errorf("sim: max ticks must be positive, got %d", opts.MaxTicks)
	}

	results := make([]RunResult, len(drivers))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, d := range drivers {
		g.Go(func() error {
			res, err := runOne(ctx, t, p, start, d, opts.MaxTicks)
			if err != nil {
				return err
			}
			res.Driver = i
			results[i] = res

			if opts.Logger != nil {
				opts.Logger.Debug("run finished",
					"driver", i,
					"ticks", res.Ticks,
					"travelled", fmt.Sprintf("%.1f", res.Travelled),
					"crashed", res.Crashed,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, t *track.Track, p vehicle.Params, start track.Start, d Driver, maxTicks int) (RunResult, error) {
	s := NewSession(t, p, start)
	res := RunResult{Name: fmt.Sprint(d)}

	for !s.Dead() && s.Tick() < uint64(maxTicks) {
		if s.Tick()%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return RunResult{}, err
			}
		}
		s.Step(d.Decide(s.Observation()))
	}

	res.Ticks = s.Tick()
	res.Travelled = s.Travelled()
	res.Crashed = s.Dead()
	return res, nil
}

// Best returns the run that travelled farthest. Ties go to the earlier driver.
func Best(results []RunResult) (RunResult, bool) {
	if len(results) == 0 {
		return RunResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Travelled > best.Travelled {
			best = r
		}
	}
	return best, true
}
