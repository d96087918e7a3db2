package state

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/replay"
)

func newTestSession(t *testing.T, settings config.Settings) *Session {
	t.Helper()
	s := NewSession(settings, defs.DefaultCatalog(), nil, app.WithSeed(5), app.WithLogger(log.New(io.Discard, "", 0)))
	t.Cleanup(s.Close)
	return s
}

func TestSessionSelectionHonoursOwnership(t *testing.T) {
	catalog := defs.DefaultCatalog()
	settings := config.DefaultSettings()
	settings.Skin = catalog.Skins[len(catalog.Skins)-1].ID

	s := newTestSession(t, settings)
	if s.SkinIndex != 0 || len(s.Catalog.Skins) != 1 {
		t.Fatalf("unowned skin must not be selectable: index %d of %d", s.SkinIndex, len(s.Catalog.Skins))
	}

	settings.Owned = []string{settings.Skin}
	s = newTestSession(t, settings)
	if s.Skin().ID != settings.Skin {
		t.Fatalf("owned skin not preselected: %s", s.Skin().ID)
	}
	if s.Loadout().SkinID != settings.Skin {
		t.Fatalf("loadout ignores selection: %+v", s.Loadout())
	}
}

func TestSessionCycleWraps(t *testing.T) {
	settings := config.DefaultSettings()
	catalog := defs.DefaultCatalog()
	for _, w := range catalog.Weapons {
		settings.Owned = append(settings.Owned, w.ID)
	}
	s := newTestSession(t, settings)
	n := len(s.Catalog.Weapons)

	s.CycleWeapon(-1)
	if s.WeaponIndex != n-1 {
		t.Fatalf("expected wrap to %d, got %d", n-1, s.WeaponIndex)
	}
	s.CycleWeapon(1)
	if s.WeaponIndex != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.WeaponIndex)
	}
	s.CycleSkin(3)
	if s.SkinIndex != 0 {
		t.Fatalf("single skin must stay selected, got %d", s.SkinIndex)
	}
}

func TestSessionAdvanceRunsWholeTicks(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings())
	s.StartRun()

	tick := s.Step.TickMs
	snap := s.Advance(component.Input{}, tick*2.5)
	if snap.Tick != 2 {
		t.Fatalf("expected 2 ticks, got %d", snap.Tick)
	}
	snap = s.Advance(component.Input{}, tick*0.75)
	if snap.Tick != 3 {
		t.Fatalf("leftover time not carried: tick %d", snap.Tick)
	}
	if got := len(s.Recorder.Recording().Frames); got != 3 {
		t.Fatalf("expected 3 recorded frames, got %d", got)
	}
}

func TestSessionSavesReplay(t *testing.T) {
	settings := config.DefaultSettings()
	settings.ReplayPath = filepath.Join(t.TempDir(), "last.wdr")
	s := newTestSession(t, settings)
	s.StartRun()
	s.Advance(component.Input{Firing: true}, s.Step.TickMs*3)

	s.SaveReplay()
	if _, err := os.Stat(settings.ReplayPath); err != nil {
		t.Fatalf("replay not written: %v", err)
	}
	rec, err := replay.Load(settings.ReplayPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rec.Frames) != 3 || rec.Seed != s.Game.RunSeed() {
		t.Fatalf("unexpected replay: %d frames, seed %d", len(rec.Frames), rec.Seed)
	}
}

func TestStateMachineEmptyMeansQuit(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings())
	sm := NewStateMachine()
	sm.SetState(NewMenuState(sm, s))
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatalf("expected the menu, got %T", sm.Current())
	}
	sm.SetState(nil)
	if sm.Current() != nil {
		t.Fatalf("expected no state after quitting")
	}
}
