package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/event"
)

func TestStartRunRecreatesPlayerAndBase(t *testing.T) {
	w := newWorld(t, 1)
	if w.ecs.Phase != component.PlayingPhase {
		t.Fatalf("phase: got=%s", w.ecs.Phase)
	}
	if w.ecs.Base.X != 400 || w.ecs.Base.Y != 300 || w.ecs.Base.Integrity != 100 {
		t.Fatalf("unexpected base: %+v", w.ecs.Base)
	}
	p := w.ecs.Player
	if p.Health != 100 || p.MaxHealth != 100 || p.Speed != 6 || p.Radius != 15 {
		t.Fatalf("unexpected player: %+v", p)
	}
	if p.Y-w.ecs.Base.Y < p.Radius+w.ecs.Base.Radius {
		t.Fatalf("player starts inside the base")
	}
	run := w.ecs.Run
	if run.Wave != 1 || run.WaveQuota != 10 || run.Upgrades.Power != 5 || run.Upgrades.FireRateMs != 400 {
		t.Fatalf("unexpected run state: %+v", run)
	}
	if w.count(event.RunStarted) != 1 {
		t.Fatalf("expected a RunStarted event")
	}
}

func TestWaveClearedClearsArena(t *testing.T) {
	w := newWorld(t, 1)
	w.ecs.AddEnemy(w.wave.NewEnemy(component.EnemyRegular, 1, 700, 100))
	w.ecs.AddPickup(component.Pickup{Position: component.Position{X: 50, Y: 50}})
	w.ecs.AddProjectile(component.Projectile{Position: component.Position{X: 60, Y: 60}})
	w.ecs.Run.Score = 300

	w.state.Apply(OutcomeWaveCleared)
	if w.ecs.Phase != component.UpgradingPhase {
		t.Fatalf("phase: got=%s want=upgrading", w.ecs.Phase)
	}
	if len(w.ecs.Enemies)+len(w.ecs.Pickups)+len(w.ecs.Projectiles) != 0 {
		t.Fatalf("arena not cleared")
	}
	if w.ecs.Run.Score != 300 {
		t.Fatalf("clearing must not score, got %d", w.ecs.Run.Score)
	}
}

func TestChooseUpgradeStartsNextWave(t *testing.T) {
	w := newWorld(t, 1)
	w.ecs.Run.WaveProgress = 10
	w.ecs.Run.ElapsedMs = 12345
	w.state.Apply(OutcomeWaveCleared)

	if !w.state.ChooseUpgrade(component.UpgradeAccuracy) {
		t.Fatalf("upgrade rejected while upgrading")
	}
	run := w.ecs.Run
	if run.Wave != 2 || run.WaveProgress != 0 || run.Upgrades.Accuracy != 5 || run.LastSpawnMs != 12345 {
		t.Fatalf("unexpected run state: %+v", run)
	}
	if w.ecs.Phase != component.PlayingPhase {
		t.Fatalf("phase: got=%s want=playing", w.ecs.Phase)
	}
}

func TestChooseUpgradeWhilePlayingIsIgnored(t *testing.T) {
	w := newWorld(t, 1)
	w.ecs.Run.Score = 450
	before := w.ecs.Run

	if w.state.ChooseUpgrade(component.UpgradePower) {
		t.Fatalf("upgrade accepted while playing")
	}
	if w.ecs.Run != before {
		t.Fatalf("run state changed: %+v -> %+v", before, w.ecs.Run)
	}
	if w.count(event.UpgradeChosen) != 0 {
		t.Fatalf("unexpected UpgradeChosen event")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	w := newWorld(t, 1)
	w.ecs.Run.Score = 250
	w.ecs.Run.Kills = 2
	w.ecs.Run.ElapsedMs = 61500

	w.state.Apply(OutcomeBaseDestroyed)
	if w.ecs.Phase != component.GameOverPhase {
		t.Fatalf("phase: got=%s want=gameover", w.ecs.Phase)
	}
	last := w.events[len(w.events)-1]
	data, ok := last.Data.(event.GameOverData)
	if last.Type != event.GameOver || !ok {
		t.Fatalf("expected GameOver event, got %+v", last)
	}
	if data.Score != 250 || data.Kills != 2 || data.SurvivalSeconds != 61 || !data.BaseDestroyed {
		t.Fatalf("unexpected summary: %+v", data)
	}

	w.state.Apply(OutcomeWaveCleared)
	if w.ecs.Phase != component.GameOverPhase || w.state.ChooseUpgrade(component.UpgradePower) {
		t.Fatalf("game over must be terminal")
	}

	w.state.ReturnToMenu()
	if w.ecs.Phase != component.MenuPhase || w.ecs.Run.Score != 0 {
		t.Fatalf("menu must reset the run: %+v", w.ecs.Run)
	}
}
