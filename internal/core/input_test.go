package core

import (
	"reflect"
	"testing"
)

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionDrop)
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if !f.Has(ActionDrop) || !f.Has(ActionLeft) {
		t.Errorf("frame %v is missing actions", f)
	}
	if f.Has(ActionRight) || f.Has(ActionNone) {
		t.Errorf("frame %v has actions never set", f)
	}
	if f.Len() != 2 {
		t.Errorf("Len = %d, expected 2", f.Len())
	}
	if got, want := f.Actions(), []Action{ActionLeft, ActionDrop}; !reflect.DeepEqual(got, want) {
		t.Errorf("Actions = %v, expected %v", got, want)
	}
	if got := f.String(); got != "[Left Drop]" {
		t.Errorf("String = %q", got)
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear left %v", f)
	}
}

func TestInputFrameCopyIsSnapshot(t *testing.T) {
	var f InputFrame
	f.Set(ActionPause)
	snap := f
	f.Clear()

	if !snap.Has(ActionPause) {
		t.Error("copy changed with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionRotate, "Rotate"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
		{Action(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tt.a), got, tt.want)
		}
	}
}
