// internal/state/session.go
package state

import (
	"log"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/replay"
	"go-wave-defense/internal/system"
	"go-wave-defense/pkg/render"
)

// Session is everything the screens share: the engine, the recorder in front of it,
// the menu selection and the drawing helpers.
type Session struct {
	Settings config.Settings
	Catalog  *defs.Catalog // only what the player owns
	Game     *app.Game
	Recorder *replay.Recorder
	Effects  *system.VisualEffectSystem
	Renderer *render.ArenaRenderer
	Step     *app.FixedStep

	SkinIndex   int
	WeaponIndex int

	Last app.Snapshot // последний снимок для отрисовки
}

// NewSession builds the engine for the given settings. renderer may be nil in tests.
func NewSession(settings config.Settings, catalog *defs.Catalog, renderer *render.ArenaRenderer, opts ...app.Option) *Session {
	opts = append([]app.Option{app.WithCatalog(catalog)}, opts...)
	g := app.NewGame(opts...)

	s := &Session{
		Settings: settings,
		Catalog:  catalog.Owned(settings.Owned),
		Game:     g,
		Recorder: replay.NewRecorder(g),
		Effects:  system.NewVisualEffectSystem(g.EventDispatcher, catalog.EnemyColors()),
		Renderer: renderer,
		Step:     app.NewFixedStep(settings.TickMs()),
	}
	s.selectByID(settings.Skin, settings.Weapon)
	s.Last = g.Snapshot()
	return s
}

func (s *Session) selectByID(skinID, weaponID string) {
	for i, sk := range s.Catalog.Skins {
		if sk.ID == skinID {
			s.SkinIndex = i
		}
	}
	for i, w := range s.Catalog.Weapons {
		if w.ID == weaponID {
			s.WeaponIndex = i
		}
	}
}

// Skin returns the selected skin.
func (s *Session) Skin() defs.SkinDefinition {
	return s.Catalog.Skins[s.SkinIndex]
}

// Weapon returns the selected weapon.
func (s *Session) Weapon() defs.WeaponDefinition {
	return s.Catalog.Weapons[s.WeaponIndex]
}

// CycleSkin moves the skin selection by delta, wrapping around.
func (s *Session) CycleSkin(delta int) {
	s.SkinIndex = wrap(s.SkinIndex+delta, len(s.Catalog.Skins))
}

// CycleWeapon moves the weapon selection by delta, wrapping around.
func (s *Session) CycleWeapon(delta int) {
	s.WeaponIndex = wrap(s.WeaponIndex+delta, len(s.Catalog.Weapons))
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Loadout combines the current selection.
func (s *Session) Loadout() component.Loadout {
	l, err := s.Catalog.Loadout(s.Skin().ID, s.Weapon().ID)
	if err != nil {
		log.Printf("Selection rejected, using defaults: %v", err)
		return s.Catalog.DefaultLoadout()
	}
	return l
}

// StartRun starts a recorded run with the selected loadout.
func (s *Session) StartRun() {
	s.Recorder.StartRun(s.Loadout())
	s.Step.Reset()
	s.Last = s.Game.Snapshot()
}

// Advance feeds one host frame into the engine and returns the latest snapshot.
// Input is sampled once per frame and reused for every tick that frame covers.
func (s *Session) Advance(in component.Input, frameMs float64) app.Snapshot {
	for n := s.Step.Advance(frameMs); n > 0; n-- {
		s.Last = s.Recorder.Tick(in, s.Step.TickMs)
		if s.Last.Phase != component.PlayingPhase {
			s.Step.Reset()
			break
		}
	}
	s.Effects.Update(frameMs)
	return s.Last
}

// ChooseUpgrade forwards an upgrade choice through the recorder.
func (s *Session) ChooseUpgrade(kind component.UpgradeKind) bool {
	if !s.Recorder.ChooseUpgrade(kind) {
		return false
	}
	s.Step.Reset()
	s.Last = s.Game.Snapshot()
	return true
}

// SaveReplay writes the finished run when a replay path is configured.
func (s *Session) SaveReplay() {
	if s.Settings.ReplayPath == "" {
		return
	}
	if err := replay.Save(s.Settings.ReplayPath, s.Recorder.Recording()); err != nil {
		log.Printf("Failed to save replay: %v", err)
		return
	}
	log.Printf("Replay saved to %s", s.Settings.ReplayPath)
}

// ReturnToMenu ends the run and goes back to loadout selection.
func (s *Session) ReturnToMenu() {
	s.Game.ReturnToMenu()
	s.Last = s.Game.Snapshot()
}

// Close detaches the session listeners from the engine.
func (s *Session) Close() {
	s.Effects.Close()
}
