package replay

import (
	"fmt"

	"go-wave-defense/internal/app"
)

// Play re-simulates a recording on a fresh engine and returns the final snapshot.
func Play(rec Recording, opts ...app.Option) (app.Snapshot, *app.Game) {
	g := app.NewGame(opts...)
	g.StartRunWithSeed(rec.Loadout, rec.Seed)

	next := 0
	for i, f := range rec.Frames {
		for next < len(rec.Upgrades) && rec.Upgrades[next].AfterFrame <= i {
			g.ChooseUpgrade(rec.Upgrades[next].Kind)
			next++
		}
		g.Tick(f.Input, f.DtMs)
	}
	for ; next < len(rec.Upgrades); next++ {
		g.ChooseUpgrade(rec.Upgrades[next].Kind)
	}
	return g.Snapshot(), g
}

// Verify replays rec and checks that it ends with the recorded summary.
func Verify(rec Recording, opts ...app.Option) (app.Summary, error) {
	_, g := Play(rec, opts...)
	got, ended := g.Summary()
	if rec.Summary == nil {
		if ended {
			return got, fmt.Errorf("%w: recording has no summary but the run ended", ErrMismatch)
		}
		return got, nil
	}
	if !ended || got != *rec.Summary {
		return got, fmt.Errorf("%w: got %+v, recorded %+v", ErrMismatch, got, *rec.Summary)
	}
	return got, nil
}
