package state

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type scriptedState struct {
	name    string
	log     *[]string
	onEnter func()
	onTick  func()
}

func (s *scriptedState) Enter() {
	*s.log = append(*s.log, s.name+".enter")
	if s.onEnter != nil {
		s.onEnter()
	}
}

func (s *scriptedState) Update(float64) {
	*s.log = append(*s.log, s.name+".update")
	if s.onTick != nil {
		s.onTick()
	}
	*s.log = append(*s.log, s.name+".update-done")
}

func (s *scriptedState) Draw(*ebiten.Image) {}

func (s *scriptedState) Exit() { *s.log = append(*s.log, s.name+".exit") }

func TestSwitchRequestedDuringUpdateWaitsForIt(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	b := &scriptedState{name: "b", log: &log}
	c := &scriptedState{name: "c", log: &log}
	a := &scriptedState{name: "a", log: &log}
	a.onTick = func() {
		sm.SetState(b)
		if sm.Current() != a {
			t.Fatalf("switched before update returned")
		}
		sm.SetState(c)
	}

	sm.SetState(a)
	sm.Update(1.0 / 60)
	want := "a.enter a.update a.update-done a.exit c.enter"
	if got := strings.Join(log, " "); got != want {
		t.Fatalf("calls: got=%q want=%q", got, want)
	}
	if sm.Current() != c {
		t.Fatalf("expected the last requested state, got %v", sm.Current())
	}
}

func TestQuitRequestedDuringUpdate(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	a := &scriptedState{name: "a", log: &log}
	a.onTick = func() { sm.SetState(nil) }

	sm.SetState(a)
	sm.Update(1.0 / 60)
	if sm.Current() != nil {
		t.Fatalf("expected quit, got %v", sm.Current())
	}
	if got := strings.Join(log, " "); got != "a.enter a.update a.update-done a.exit" {
		t.Fatalf("calls: %q", got)
	}
	// после выхода Update ничего не делает
	sm.Update(1.0 / 60)
	if len(log) != 4 {
		t.Fatalf("update after quit touched a state: %v", log)
	}
}

func TestSwitchFromEnterIsImmediate(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	b := &scriptedState{name: "b", log: &log}
	a := &scriptedState{name: "a", log: &log}
	a.onEnter = func() { sm.SetState(b) }

	sm.SetState(a)
	if sm.Current() != b {
		t.Fatalf("expected b, got %v", sm.Current())
	}
}
