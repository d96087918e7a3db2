// internal/system/state.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
)

// StateSystem переключает фазы забега: Menu -> Playing -> Upgrading -> Playing ... -> GameOver.
type StateSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}

// Apply performs the transition requested by a combat pass.
func (s *StateSystem) Apply(outcome Outcome) {
	switch outcome {
	case OutcomeBaseDestroyed, OutcomePlayerDead:
		s.SwitchToGameOver(outcome == OutcomeBaseDestroyed)
	case OutcomeWaveCleared:
		s.SwitchToUpgrading()
	}
}

// StartRun recreates the player and the base for a fresh run and enters Playing.
// The entity store must already be reset.
func (s *StateSystem) StartRun(l component.Loadout) {
	t := s.tuning
	cx, cy := t.ArenaWidth/2, t.ArenaHeight/2
	maxHealth := PlayerMaxHealth(l, t)
	// Игрок не должен начинать внутри базы.
	offsetY := math.Max(t.PlayerSpawnOffsetY, t.BaseRadius+t.PlayerRadius)

	s.ecs.Loadout = l
	s.ecs.Base = component.Base{
		Position:     component.Position{X: cx, Y: cy},
		Radius:       t.BaseRadius,
		Integrity:    t.BaseIntegrity,
		MaxIntegrity: t.BaseIntegrity,
	}
	s.ecs.Player = component.Player{
		Position:  component.Position{X: cx, Y: cy + offsetY},
		Radius:    t.PlayerRadius,
		Speed:     PlayerSpeed(l, t),
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
	s.ecs.Aim = s.ecs.Player.Position
	s.ecs.Run = component.RunState{
		Wave:      1,
		WaveQuota: t.WaveQuota,
		Upgrades:  InitialUpgrades(l, t),
	}
	s.ecs.Phase = component.PlayingPhase
	s.dispatch(event.RunStarted, event.WaveData{Wave: 1})
}

// SwitchToUpgrading pauses the run between waves. Live enemies, pickups and
// projectiles are discarded without scoring.
func (s *StateSystem) SwitchToUpgrading() {
	if s.ecs.Phase != component.PlayingPhase {
		return
	}
	s.ecs.ClearEnemies()
	s.ecs.ClearPickups()
	s.ecs.ClearProjectiles()
	s.ecs.Phase = component.UpgradingPhase
	s.dispatch(event.WaveCleared, event.WaveData{Wave: s.ecs.Run.Wave})
}

// ChooseUpgrade applies one upgrade and starts the next wave. Outside Upgrading it
// does nothing and returns false.
func (s *StateSystem) ChooseUpgrade(kind component.UpgradeKind) bool {
	if s.ecs.Phase != component.UpgradingPhase {
		return false
	}
	run := &s.ecs.Run
	run.Upgrades = ApplyUpgrade(run.Upgrades, kind, s.tuning)
	run.Wave++
	run.WaveProgress = 0
	run.WaveQuota = s.tuning.WaveQuota
	run.LastSpawnMs = run.ElapsedMs
	s.ecs.Phase = component.PlayingPhase
	s.dispatch(event.UpgradeChosen, event.WaveData{Wave: run.Wave, Upgrade: kind})
	return true
}

// SwitchToGameOver ends the run. The phase is terminal until the host returns to the menu.
func (s *StateSystem) SwitchToGameOver(baseDestroyed bool) {
	if s.ecs.Phase != component.PlayingPhase {
		return
	}
	s.ecs.Phase = component.GameOverPhase
	run := s.ecs.Run
	s.dispatch(event.GameOver, event.GameOverData{
		Score:           run.Score,
		SurvivalSeconds: run.SurvivalSeconds(),
		Kills:           run.Kills,
		BaseDestroyed:   baseDestroyed,
	})
}

// ReturnToMenu drops every per-run record.
func (s *StateSystem) ReturnToMenu() {
	s.ecs.Reset()
}

func (s *StateSystem) dispatch(t event.EventType, data interface{}) {
	s.eventDispatcher.Dispatch(event.Event{Type: t, Tick: s.ecs.Tick, Data: data})
}
