package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/tracks/oval"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

func TestRunPopulationOpenField(t *testing.T) {
	p := vehicle.DefaultParams()
	base := Autopilot{Limits: p, Caution: 40, Gain: 0.25}
	drivers := Jittered(base, 3, 0.1, 1)

	results, err := RunPopulation(context.Background(), track.Build(nil, nil), p, track.DefaultStart(), drivers,
		PopulationOptions{Workers: 2, MaxTicks: 50})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, i, r.Driver)
		assert.False(t, r.Crashed)
		assert.Equal(t, uint64(50), r.Ticks)
		assert.Greater(t, r.Travelled, 0.0)
	}
}

func TestRunPopulationDeterministic(t *testing.T) {
	def := oval.Definition()
	p := vehicle.DefaultParams()
	drivers := Jittered(Autopilot{Limits: p, Caution: 45, Gain: 0.25}, 8, 0.2, 99)

	serial, err := RunPopulation(context.Background(), def.Track, p, def.Start, drivers,
		PopulationOptions{Workers: 1, MaxTicks: 400})
	require.NoError(t, err)

	parallel, err := RunPopulation(context.Background(), def.Track, p, def.Start, drivers,
		PopulationOptions{Workers: 4, MaxTicks: 400})
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestRunPopulationCrash(t *testing.T) {
	p := vehicle.DefaultParams()
	floorIt := DriverFunc(func(Observation) vehicle.Controls { return full(p) })

	results, err := RunPopulation(context.Background(), barrier(), p, floorOrigin, []Driver{floorIt},
		PopulationOptions{MaxTicks: 1000})
	require.NoError(t, err)

	assert.True(t, results[0].Crashed)
	assert.Less(t, results[0].Ticks, uint64(1000))
}

func TestRunPopulationCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := vehicle.DefaultParams()
	_, err := RunPopulation(ctx, track.Build(nil, nil), p, track.DefaultStart(),
		[]Driver{Autopilot{Limits: p}}, PopulationOptions{MaxTicks: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunPopulationRejectsZeroTicks(t *testing.T) {
	_, err := RunPopulation(context.Background(), track.Build(nil, nil), vehicle.DefaultParams(),
		track.DefaultStart(), nil, PopulationOptions{})
	assert.Error(t, err)
}

func TestBest(t *testing.T) {
	_, ok := Best(nil)
	assert.False(t, ok)

	best, ok := Best([]RunResult{
		{Driver: 0, Travelled: 10},
		{Driver: 1, Travelled: 30},
		{Driver: 2, Travelled: 30},
		{Driver: 3, Travelled: 5},
	})
	require.True(t, ok)
	assert.Equal(t, 1, best.Driver)
}
