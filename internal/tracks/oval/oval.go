// Package oval registers a small rectangular ring, handy for demos and
// for exercising drivers on a track with only right-angle corners.
package oval

import (
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/track"
)

// ID is the registry key of the ring track.
const ID = "oval"

// Lane is the distance between the outer and inner walls.
const Lane = 80

// Definition builds the ring track.
func Definition() track.Definition {
	outer := rect(0, 0, 600, 300)
	inner := rect(Lane, Lane, 600-Lane, 300-Lane)

	return track.Definition{
		ID:    ID,
		Name:  "Ring Road",
		Track: track.Build(outer, inner),
		Start: track.Start{
			// Left lane, centered, heading up the screen.
			Position: core.V(Lane/2-17.5, 150-10),
			Rotation: 90,
		},
	}
}

// rect returns a closed clockwise loop (first point repeated).
func rect(x0, y0, x1, y1 float64) []core.Vec {
	return []core.Vec{
		core.V(x0, y0),
		core.V(x1, y0),
		core.V(x1, y1),
		core.V(x0, y1),
		core.V(x0, y0),
	}
}

func init() {
	registry.Register(ID, Definition)
}
