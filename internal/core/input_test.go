package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionConfirm) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionRotate)

	if !f.Has(ActionConfirm) {
		t.Error("Has(ActionConfirm) should be true after Set")
	}
	if !f.Has(ActionRotate) {
		t.Error("Has(ActionRotate) should be true after Set")
	}
	if f.Has(ActionUp) {
		t.Error("Has(ActionUp) should be false")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionConfirm)

	f.Clear()

	if f.Has(ActionUp) || f.Has(ActionConfirm) {
		t.Error("Clear should remove all actions")
	}

	// Frame should still be usable after Clear
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set should work after Clear")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	clone := f.Clone()
	if !clone.Has(ActionLeft) {
		t.Error("Clone should carry over actions")
	}

	// Mutating the clone must not affect the original
	clone.Set(ActionRight)
	if f.Has(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-value frame must not panic on any operation
	var f InputFrame

	if f.Has(ActionQuit) {
		t.Error("Zero-value frame should have no actions")
	}

	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set should initialize the zero-value frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionConfirm, "Confirm"},
		{ActionRotate, "Rotate"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
