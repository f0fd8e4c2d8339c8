package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Glyphs used by Render.
const (
	GlyphWall    = '#'
	GlyphVehicle = 'o'
	GlyphNose    = '>'
	GlyphRay     = '.'
	GlyphHit     = 'x'
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// viewport maps world coordinates onto screen cells.
type viewport struct {
	min   core.Vec
	scale float64 // world units per column
}

func newViewport(min, max core.Vec, cols, rows int) viewport {
	w := math.Max(max.X-min.X, 1)
	h := math.Max(max.Y-min.Y, 1)
	scale := math.Max(
		w/float64(core.Max(cols-1, 1)),
		h/(cellAspect*float64(core.Max(rows-1, 1))),
	)
	return viewport{min: min, scale: scale}
}

func (vp viewport) cell(p core.Vec) (int, int) {
	x := int(math.Round((p.X - vp.min.X) / vp.scale))
	y := int(math.Round((p.Y - vp.min.Y) / (vp.scale * cellAspect)))
	return x, y
}

func (vp viewport) line(dst *core.Screen, a, b core.Vec, r rune, c core.Color) {
	x0, y0 := vp.cell(a)
	x1, y1 := vp.cell(b)
	dst.DrawLine(x0, y0, x1, y1, r, c)
}

// Render draws the session onto dst: walls, sensor rays up to their hits,
// the vehicle footprint with its nose, and a one-line HUD on the last row.
func Render(s *Session, last StepResult, dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 2 || dst.Height() < 2 {
		return
	}

	lo, hi := s.Track().Bounds()
	vp := newViewport(lo, hi, dst.Width(), dst.Height()-1)

	v := s.Vehicle()
	center := v.Center()

	for _, h := range last.Hits {
		if !h.OK {
			continue
		}
		vp.line(dst, center, h.Point, GlyphRay, core.ColorRay)
		x, y := vp.cell(h.Point)
		dst.SetColored(x, y, GlyphHit, core.ColorHit)
	}

	for _, w := range s.Track().Walls() {
		vp.line(dst, w.A, w.B, GlyphWall, core.ColorWall)
	}

	corners := v.Corners()
	for i := range corners {
		vp.line(dst, corners[i], corners[(i+1)%len(corners)], GlyphVehicle, core.ColorVehicle)
	}
	heading := core.V(1, 0).Rotate(-v.Rotation()).Scale(v.Params.Width / 2)
	nx, ny := vp.cell(center.Add(heading))
	dst.SetColored(nx, ny, GlyphNose, core.ColorNose)

	hud := fmt.Sprintf("tick %d  speed %.2f  dist %.0f  heading %.1f°",
		last.Tick, last.Speed, last.Travelled, v.Rotation())
	if last.Dead {
		hud += "  CRASHED"
	}
	dst.DrawTextColored(0, dst.Height()-1, hud, core.ColorHUD)

	if last.Dead {
		drawBanner(dst, " CRASHED ")
	}
}

// drawBanner boxes msg in the middle of the track area.
func drawBanner(dst *core.Screen, msg string) {
	w, h := len(msg)+2, 3
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-1-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, msg)
}
