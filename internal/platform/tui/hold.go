package tui

import "github.com/vovakirdan/tui-racer/internal/core"

// heldKeys approximates held keys on terminals, which only report presses
// and auto-repeat. An action stays held for window ticks after its last
// press. Opposite actions cancel each other so the newest one wins.
type heldKeys struct {
	window uint64
	last   map[core.Action]uint64
}

var opposite = map[core.Action]core.Action{
	core.ActionAccelerate: core.ActionBrake,
	core.ActionBrake:      core.ActionAccelerate,
	core.ActionSteerLeft:  core.ActionSteerRight,
	core.ActionSteerRight: core.ActionSteerLeft,
}

func newHeldKeys(window uint64) *heldKeys {
	if window == 0 {
		window = 1
	}
	return &heldKeys{
		window: window,
		last:   make(map[core.Action]uint64),
	}
}

// holdWindow covers the keyboard's initial auto-repeat delay.
func holdWindow(tickRate int) uint64 {
	if tickRate < 2 {
		return 1
	}
	return uint64(tickRate / 2)
}

// Press records a press of a driving action at tick.
func (h *heldKeys) Press(a core.Action, tick uint64) {
	if _, ok := opposite[a]; !ok {
		return
	}
	h.last[a] = tick
	delete(h.last, opposite[a])
}

// Frame returns the actions still held at tick.
func (h *heldKeys) Frame(tick uint64) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.last {
		if tick-at < h.window {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	return frame
}

// Release drops every held action.
func (h *heldKeys) Release() {
	clear(h.last)
}
