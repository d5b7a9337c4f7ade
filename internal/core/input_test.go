package core

import "testing"

func TestInputFrameOrdering(t *testing.T) {
	frame := NewInputFrame()
	frame.Press(ActionRotateCW)
	frame.Press(ActionLeft)
	frame.Press(ActionRotateCW)

	got := frame.Actions()
	want := []Action{ActionRotateCW, ActionLeft, ActionRotateCW}

	if len(got) != len(want) {
		t.Fatalf("Actions() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInputFrameDuplicatesKept(t *testing.T) {
	// Two rapid identical commands in one frame are two commands.
	frame := NewInputFrame()
	frame.Press(ActionRotateCW)
	frame.Press(ActionRotateCW)

	if frame.Len() != 2 {
		t.Errorf("Len() = %d, want 2", frame.Len())
	}
}

func TestInputFrameHas(t *testing.T) {
	frame := NewInputFrame()

	if frame.Has(ActionLeft) {
		t.Error("empty frame should not report any action")
	}

	frame.Press(ActionLeft)
	if !frame.Has(ActionLeft) {
		t.Error("frame should report pressed action")
	}
	if frame.Has(ActionRight) {
		t.Error("frame should not report unpressed action")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	frame := NewInputFrame()
	frame.Press(ActionNone)

	if frame.Len() != 0 {
		t.Errorf("ActionNone should not be recorded, Len() = %d", frame.Len())
	}
}

func TestInputFrameClear(t *testing.T) {
	frame := NewInputFrame()
	frame.Press(ActionHardDrop)
	frame.Clear()

	if frame.Len() != 0 {
		t.Errorf("after Clear, Len() = %d, want 0", frame.Len())
	}
	if frame.Has(ActionHardDrop) {
		t.Error("after Clear, frame should report no actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	frame := NewInputFrame()
	frame.Press(ActionLeft)

	clone := frame.Clone()
	frame.Press(ActionRight)

	if clone.Len() != 1 {
		t.Errorf("clone should be independent of original, Len() = %d", clone.Len())
	}
}
