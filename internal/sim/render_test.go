package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/tracks/oval"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

func TestRenderRing(t *testing.T) {
	def := oval.Definition()
	s := NewSession(def.Track, vehicle.DefaultParams(), def.Start)
	res := s.Step(full(vehicle.DefaultParams()))

	scr := core.NewScreen(80, 24)
	Render(s, res, scr)

	assert.Equal(t, string(repeatRune(GlyphWall, 80)), scr.Row(0), "outer top wall spans the width")
	assert.Equal(t, core.ColorWall, scr.GetCell(0, 0).Color)
	assert.Contains(t, scr.String(), string(GlyphNose))
	assert.Contains(t, scr.Row(23), "tick 1")
	assert.NotContains(t, scr.String(), "CRASHED")
}

func TestRenderCrashedAndTiny(t *testing.T) {
	p := vehicle.DefaultParams()
	s := NewSession(barrier(), p, track.Start{Position: core.V(40, -10)})

	scr := core.NewScreen(80, 10)
	Render(s, s.Last(), scr)
	assert.Contains(t, scr.Row(9), "CRASHED")
	assert.Equal(t, '┌', scr.Get(34, 3), "banner box in the middle of the track area")
	assert.Contains(t, scr.Row(4), "│ CRASHED │")

	tiny := core.NewScreen(1, 1)
	assert.NotPanics(t, func() { Render(s, s.Last(), tiny) })
}

func repeatRune(r rune, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return out
}
