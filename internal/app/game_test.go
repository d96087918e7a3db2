package app

import (
	"io"
	"log"
	"math"
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
)

const frameMs = 1000.0 / config.TicksPerSecond

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestGame(t *testing.T, tuning config.Tuning) *Game {
	t.Helper()
	g := NewGame(WithSeed(42), WithTuning(tuning), WithLogger(quietLogger()))
	g.StartRunWithSeed(g.Catalog.DefaultLoadout(), 1234)
	return g
}

// calmTuning disables spawning and spread so a test controls every enemy.
func calmTuning() config.Tuning {
	t := config.DefaultTuning()
	t.SpawnIntervalMs = 1e9
	t.MinSpawnIntervalMs = 1e9
	t.BaseSpread = 0
	t.EnemySpeed = 0
	t.EnemySpeedPerWave = 0
	return t
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := NewGame(WithLogger(quietLogger()))
	if g.Phase() != component.MenuPhase {
		t.Fatalf("phase: got=%s want=menu", g.Phase())
	}
	snap := g.Tick(component.Input{Up: true}, frameMs)
	if snap.Tick != 0 || snap.Phase != component.MenuPhase {
		t.Fatalf("tick in menu must be ignored: %+v", snap)
	}
	if _, ok := g.Summary(); ok {
		t.Fatalf("no summary before a run")
	}
}

func TestStartRunClampsMalformedLoadout(t *testing.T) {
	g := NewGame(WithLogger(quietLogger()))
	g.StartRun(component.Loadout{FireRateMs: -100, BaseDamage: 5})
	snap := g.Snapshot()
	if snap.Loadout.FireRateMs != 50 || snap.Run.Upgrades.FireRateMs != 50 {
		t.Fatalf("fire rate not clamped: %+v", snap.Loadout)
	}
	if snap.Loadout.ProjectileRadius <= 0 {
		t.Fatalf("projectile radius not clamped: %f", snap.Loadout.ProjectileRadius)
	}
	if g.RunSeed() == 0 {
		t.Fatalf("run seed must be non-zero")
	}
}

func TestOneEnemyKillAndPickupScores150(t *testing.T) {
	g := newTestGame(t, calmTuning())
	player := g.ECS.Player
	target := component.Position{X: player.X + 200, Y: player.Y}
	g.ECS.AddEnemy(g.WaveSystem.NewEnemy(component.EnemyRegular, 1, target.X, target.Y))
	if g.ECS.Enemies[0].Health != 10 {
		t.Fatalf("wave-1 enemy health: got=%f want=10", g.ECS.Enemies[0].Health)
	}

	shots := 0
	g.EventDispatcher.Subscribe(event.ShotFired, event.ListenerFunc(func(event.Event) { shots++ }))

	sawKill := false
	for i := 0; i < 600; i++ {
		snap := g.Snapshot()
		in := component.Input{AimX: target.X, AimY: target.Y}
		if len(snap.Enemies) > 0 {
			in.Firing = true
		} else {
			in.Right = snap.Player.X < target.X
		}
		snap = g.Tick(in, frameMs)

		if snap.Run.Kills == 1 && !sawKill {
			sawKill = true
			if snap.Run.Score != 100 {
				t.Fatalf("score right after the kill: got=%d want=100", snap.Run.Score)
			}
			if len(snap.Pickups) != 1 || snap.Pickups[0].Position != target {
				t.Fatalf("expected one pickup at the kill position: %+v", snap.Pickups)
			}
			if shots != 2 {
				t.Fatalf("expected the enemy to die to the second shot, shots=%d", shots)
			}
		}
		if snap.Run.WaveProgress == 1 {
			if snap.Run.Score != 150 || snap.Run.Kills != 1 {
				t.Fatalf("final: score=%d kills=%d", snap.Run.Score, snap.Run.Kills)
			}
			return
		}
	}
	t.Fatalf("pickup never collected, kill seen=%t", sawKill)
}

func TestTenBaseHitsEndRun(t *testing.T) {
	g := newTestGame(t, calmTuning())
	g.ECS.Player.Position = component.Position{X: 30, Y: 30}
	base := g.ECS.Base

	for i := 1; i <= 10; i++ {
		if g.Phase() != component.PlayingPhase {
			t.Fatalf("run ended after %d hits", i-1)
		}
		g.ECS.AddEnemy(g.WaveSystem.NewEnemy(component.EnemyRegular, 1, base.X, base.Y))
		snap := g.Tick(component.Input{}, frameMs)
		if want := 100 - 10*float64(i); snap.BaseIntegrity() != want {
			t.Fatalf("hit %d: integrity=%f want=%f", i, snap.BaseIntegrity(), want)
		}
	}
	if g.Phase() != component.GameOverPhase {
		t.Fatalf("phase: got=%s want=gameover", g.Phase())
	}
	summary, ok := g.Summary()
	if !ok || !summary.BaseDestroyed || summary.Kills != 0 {
		t.Fatalf("unexpected summary: %+v ok=%t", summary, ok)
	}

	ticks := g.ECS.Tick
	g.Tick(component.Input{Up: true}, frameMs)
	if g.ECS.Tick != ticks {
		t.Fatalf("tick after game over must be ignored")
	}

	g.ReturnToMenu()
	if g.Phase() != component.MenuPhase || g.ECS.Run.Score != 0 || len(g.ECS.Enemies) != 0 {
		t.Fatalf("menu must reset the run")
	}
	if _, ok := g.Summary(); ok {
		t.Fatalf("summary must be dropped on return to menu")
	}
}

// clearWave drops a pickup on the player and ticks once.
func clearWave(t *testing.T, g *Game) Snapshot {
	t.Helper()
	g.ECS.AddPickup(component.Pickup{Position: g.ECS.Player.Position, Radius: g.Tuning.PickupRadius})
	return g.Tick(component.Input{}, frameMs)
}

func TestFireRateUpgradeFloorsAt100(t *testing.T) {
	tuning := calmTuning()
	tuning.WaveQuota = 1
	g := newTestGame(t, tuning)

	for i := 0; i < 6; i++ {
		snap := clearWave(t, g)
		if snap.Phase != component.UpgradingPhase {
			t.Fatalf("round %d: phase=%s want=upgrading", i, snap.Phase)
		}
		if len(snap.Enemies) != 0 || len(snap.Pickups) != 0 {
			t.Fatalf("arena not cleared between waves")
		}
		if !g.ChooseUpgrade(component.UpgradeFireRate) {
			t.Fatalf("round %d: upgrade rejected", i)
		}
	}
	run := g.Snapshot().Run
	if run.Upgrades.FireRateMs != 100 {
		t.Fatalf("fire rate: got=%f want=100", run.Upgrades.FireRateMs)
	}
	if run.Wave != 7 {
		t.Fatalf("wave: got=%d want=7", run.Wave)
	}
}

func TestChooseUpgradeWhilePlayingIsNoop(t *testing.T) {
	g := newTestGame(t, calmTuning())
	for i := 0; i < 30; i++ {
		g.Tick(component.Input{Left: true}, frameMs)
	}
	before := g.Snapshot()
	if g.ChooseUpgrade(component.UpgradePower) {
		t.Fatalf("upgrade accepted while playing")
	}
	after := g.Snapshot()
	if before.Run != after.Run || before.Phase != after.Phase {
		t.Fatalf("run state changed: %+v -> %+v", before.Run, after.Run)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := newTestGame(t, calmTuning())
	g.ECS.AddEnemy(g.WaveSystem.NewEnemy(component.EnemyTank, 1, 700, 100))
	snap := g.Snapshot()
	snap.Enemies[0].Health = -1
	if g.ECS.Enemies[0].Health <= 0 {
		t.Fatalf("snapshot shares memory with the engine")
	}
}

func TestNonFiniteInputIsTolerated(t *testing.T) {
	g := newTestGame(t, calmTuning())
	snap := g.Tick(component.Input{AimX: math.NaN(), AimY: math.Inf(1), Firing: true}, math.NaN())
	if snap.Run.ElapsedMs != 0 {
		t.Fatalf("NaN dt must not advance the clock: %f", snap.Run.ElapsedMs)
	}
	for _, p := range snap.Projectiles {
		if math.IsNaN(p.X) || math.IsNaN(p.Velocity.X) {
			t.Fatalf("NaN leaked into a projectile: %+v", p)
		}
	}
}

func TestInfiniteDeltaDoesNotStopTheClock(t *testing.T) {
	g := newTestGame(t, calmTuning())
	firing := component.Input{AimX: 400, AimY: 0, Firing: true}

	shots := 0
	g.EventDispatcher.Subscribe(event.ShotFired, event.ListenerFunc(func(event.Event) { shots++ }))

	snap := g.Tick(firing, math.Inf(1))
	if snap.Run.ElapsedMs != 0 {
		t.Fatalf("infinite dt must not advance the clock: %f", snap.Run.ElapsedMs)
	}
	g.Tick(firing, math.Inf(-1))

	before := shots
	for i := 0; i < 120; i++ {
		snap = g.Tick(firing, frameMs)
	}
	if math.IsInf(snap.Run.ElapsedMs, 0) || math.IsNaN(snap.Run.ElapsedMs) {
		t.Fatalf("clock corrupted: %f", snap.Run.ElapsedMs)
	}
	// 120 ticks at 60 TPS is two seconds, several 400ms cooldowns
	if shots-before < 3 {
		t.Fatalf("weapon stopped firing after an infinite dt: %d shots", shots-before)
	}
}

// TestRandomPlayKeepsInvariants drives the engine with seeded random input and checks
// the per-tick invariants until the run ends.
func TestRandomPlayKeepsInvariants(t *testing.T) {
	tuning := config.DefaultTuning()
	g := NewGame(WithSeed(7), WithTuning(tuning), WithLogger(quietLogger()))
	g.StartRun(g.Catalog.DefaultLoadout())
	input := utils.NewPRNGService(99)

	waveKills := 0
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { waveKills++ }))
	g.EventDispatcher.Subscribe(event.UpgradeChosen, event.ListenerFunc(func(event.Event) { waveKills = 0 }))

	var in component.Input
	for i := 0; i < 20000 && g.Phase() != component.GameOverPhase; i++ {
		if i%20 == 0 {
			in = component.Input{
				Up:     input.Float64() < 0.3,
				Down:   input.Float64() < 0.3,
				Left:   input.Float64() < 0.3,
				Right:  input.Float64() < 0.3,
				AimX:   input.Float64() * tuning.ArenaWidth,
				AimY:   input.Float64() * tuning.ArenaHeight,
				Firing: true,
			}
		}
		if snap := g.Snapshot(); len(snap.Enemies) > 0 {
			in.AimX, in.AimY = snap.Enemies[0].X, snap.Enemies[0].Y
		}
		snap := g.Tick(in, frameMs)

		p := snap.Player
		if p.X < p.Radius || p.X > tuning.ArenaWidth-p.Radius || p.Y < p.Radius || p.Y > tuning.ArenaHeight-p.Radius {
			t.Fatalf("tick %d: player out of bounds (%f,%f)", snap.Tick, p.X, p.Y)
		}
		for _, e := range snap.Enemies {
			if e.Health <= 0 {
				t.Fatalf("tick %d: stored enemy with health %f", snap.Tick, e.Health)
			}
		}
		if snap.Run.WaveProgress > snap.Run.WaveQuota {
			t.Fatalf("tick %d: progress %d above quota %d", snap.Tick, snap.Run.WaveProgress, snap.Run.WaveQuota)
		}
		if snap.Player.Health < 0 || snap.Base.Integrity < 0 {
			t.Fatalf("tick %d: negative health or integrity", snap.Tick)
		}

		switch snap.Phase {
		case component.PlayingPhase:
			if waveKills != len(snap.Pickups)+snap.Run.WaveProgress {
				t.Fatalf("tick %d: kills=%d pickups=%d progress=%d", snap.Tick, waveKills, len(snap.Pickups), snap.Run.WaveProgress)
			}
		case component.UpgradingPhase:
			if len(snap.Enemies) != 0 || len(snap.Pickups) != 0 {
				t.Fatalf("tick %d: arena not cleared at quota", snap.Tick)
			}
			g.ChooseUpgrade(component.UpgradeKinds[snap.Run.Wave%len(component.UpgradeKinds)])
		}
	}
}

func TestSameSeedSameRun(t *testing.T) {
	play := func() Snapshot {
		g := NewGame(WithSeed(2024), WithLogger(quietLogger()))
		g.StartRun(g.Catalog.DefaultLoadout())
		var snap Snapshot
		for i := 0; i < 3000 && g.Phase() == component.PlayingPhase; i++ {
			in := component.Input{Left: i%200 < 100, Right: i%200 >= 100, AimX: 400, AimY: 0, Firing: true}
			if len(g.ECS.Enemies) > 0 {
				in.AimX, in.AimY = g.ECS.Enemies[0].X, g.ECS.Enemies[0].Y
			}
			snap = g.Tick(in, frameMs)
		}
		return snap
	}
	a, b := play(), play()
	if a.Run != b.Run || a.Tick != b.Tick || len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("runs diverged: %+v vs %+v", a.Run, b.Run)
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Fatalf("enemy %d diverged", i)
		}
	}
}
