package track

import (
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func loop(n int) []core.Vec {
	pts := make([]core.Vec, n)
	for i := range pts {
		pts[i] = core.V(float64(i*10), float64(i%2*5))
	}
	return pts
}

func TestBuildWallCount(t *testing.T) {
	tests := []struct {
		name         string
		outer, inner int
		expected     int
	}{
		{"both loops", 5, 4, (5 - 1) + (4 - 1)},
		{"minimal loops", 2, 2, 2},
		{"single point inner", 6, 1, 5},
		{"empty inner", 3, 0, 2},
		{"empty track", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := Build(loop(tc.outer), loop(tc.inner))
			if got := len(tr.Walls()); got != tc.expected {
				t.Errorf("len(Walls()) = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestBuildOrderNoWrap(t *testing.T) {
	outer := []core.Vec{core.V(0, 0), core.V(10, 0), core.V(10, 10)}
	inner := []core.Vec{core.V(3, 3), core.V(6, 3)}

	walls := Build(outer, inner).Walls()

	expected := []core.Segment{
		core.Seg(core.V(0, 0), core.V(10, 0)),
		core.Seg(core.V(10, 0), core.V(10, 10)),
		core.Seg(core.V(3, 3), core.V(6, 3)),
	}
	if len(walls) != len(expected) {
		t.Fatalf("len(Walls()) = %d, expected %d", len(walls), len(expected))
	}
	for i := range expected {
		if walls[i] != expected[i] {
			t.Errorf("Walls()[%d] = %v, expected %v", i, walls[i], expected[i])
		}
	}
}

func TestBuildCopiesInput(t *testing.T) {
	outer := []core.Vec{core.V(0, 0), core.V(10, 0)}
	tr := Build(outer, nil)

	outer[1] = core.V(99, 99)
	if tr.Outer()[1] != core.V(10, 0) {
		t.Error("Build should not alias the caller's boundary slice")
	}
	if tr.Walls()[0].B != core.V(10, 0) {
		t.Error("walls should not change when the input slice is modified")
	}
}

func TestWallsIsStable(t *testing.T) {
	tr := Build(loop(4), loop(3))
	a := tr.Walls()
	b := tr.Walls()
	if &a[0] != &b[0] {
		t.Error("Walls() should return the precomputed slice, not a copy")
	}
}

func TestFromInts(t *testing.T) {
	tr := FromInts([][2]int{{10, 690}, {11, 625}, {10, 690}}, [][2]int{{70, 630}, {74, 580}})

	if got := len(tr.Walls()); got != 3 {
		t.Fatalf("len(Walls()) = %d, expected 3", got)
	}
	if tr.Walls()[0].A != core.V(10, 690) {
		t.Errorf("first wall start = %v, expected (10, 690)", tr.Walls()[0].A)
	}
}

func TestBounds(t *testing.T) {
	tr := Build(
		[]core.Vec{core.V(5, 10), core.V(100, 2), core.V(40, 80)},
		[]core.Vec{core.V(-3, 50)},
	)
	min, max := tr.Bounds()
	if min != core.V(-3, 2) || max != core.V(100, 80) {
		t.Errorf("Bounds() = %v, %v, expected (-3,2), (100,80)", min, max)
	}

	emin, emax := Build(nil, nil).Bounds()
	if emin != (core.Vec{}) || emax != (core.Vec{}) {
		t.Errorf("empty Bounds() = %v, %v, expected zero", emin, emax)
	}
}
