package replay

import (
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
)

// Recorder drives a Game and keeps the inputs of the current run.
type Recorder struct {
	game *app.Game
	rec  Recording
}

func NewRecorder(g *app.Game) *Recorder {
	return &Recorder{game: g}
}

// Game returns the wrapped engine.
func (r *Recorder) Game() *app.Game {
	return r.game
}

// StartRun starts a run and begins a new recording.
func (r *Recorder) StartRun(l component.Loadout) {
	r.game.StartRun(l)
	r.rec = Recording{
		Version: Version,
		Seed:    r.game.RunSeed(),
		Loadout: r.game.Snapshot().Loadout,
	}
}

// Tick forwards to the engine. Only ticks that actually simulate are recorded.
func (r *Recorder) Tick(in component.Input, dtMs float64) app.Snapshot {
	if r.game.Phase() != component.PlayingPhase {
		return r.game.Tick(in, dtMs)
	}
	r.rec.Frames = append(r.rec.Frames, Frame{Input: in, DtMs: dtMs})
	snap := r.game.Tick(in, dtMs)
	if summary, ok := r.game.Summary(); ok {
		r.rec.Summary = &summary
	}
	return snap
}

// ChooseUpgrade forwards to the engine and records accepted choices.
func (r *Recorder) ChooseUpgrade(kind component.UpgradeKind) bool {
	if !r.game.ChooseUpgrade(kind) {
		return false
	}
	r.rec.Upgrades = append(r.rec.Upgrades, UpgradeChoice{AfterFrame: len(r.rec.Frames), Kind: kind})
	return true
}

// Recording returns a copy of the current recording.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	rec.Upgrades = append([]UpgradeChoice(nil), r.rec.Upgrades...)
	return rec
}
