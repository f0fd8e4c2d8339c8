package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionAccelerate) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionAccelerate)
	f.Set(ActionSteerLeft)
	if !f.Has(ActionAccelerate) || !f.Has(ActionSteerLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionAccelerate) || f.Has(ActionSteerLeft) {
		t.Error("Clear should reset all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:       "None",
		ActionAccelerate: "Accelerate",
		ActionSteerRight: "SteerRight",
		Action(99):       "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
