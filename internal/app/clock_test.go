package app

import (
	"math"
	"testing"
)

func TestFixedStepAccumulates(t *testing.T) {
	f := NewFixedStep(10)
	if n := f.Advance(4); n != 0 {
		t.Fatalf("got %d ticks for 4ms", n)
	}
	if n := f.Advance(7); n != 1 {
		t.Fatalf("got %d ticks for 11ms total", n)
	}
	if n := f.Advance(29); n != 3 {
		t.Fatalf("got %d ticks for 30ms total", n)
	}
}

func TestFixedStepClampsLongFrames(t *testing.T) {
	f := NewFixedStep(10)
	if n := f.Advance(5000); n != 10 {
		t.Fatalf("long frame: got %d ticks want 10", n)
	}
	if n := f.Advance(math.NaN()); n != 0 {
		t.Fatalf("NaN frame produced %d ticks", n)
	}
	f.Advance(9)
	f.Reset()
	if n := f.Advance(5); n != 0 {
		t.Fatalf("reset kept leftover time")
	}
}
