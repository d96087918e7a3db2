package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/utils"
)

// Outcome is the phase change requested by a combat pass.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeBaseDestroyed
	OutcomePlayerDead
	OutcomeWaveCleared
)

// CombatSystem разрешает столкновения после движения. Порядок шагов фиксирован:
// база, игрок, снаряды, точки.
type CombatSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	consumed        map[types.EntityID]struct{}
	pending         []event.Event
}

func NewCombatSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		consumed:        make(map[types.EntityID]struct{}),
	}
}

// Resolve runs one combat pass. A terminal outcome stops the pass so nothing is
// scored after the run has ended.
func (s *CombatSystem) Resolve() Outcome {
	if s.resolveBase() {
		return OutcomeBaseDestroyed
	}
	if s.resolvePlayerContact() {
		return OutcomePlayerDead
	}
	s.resolveProjectiles()
	if s.resolvePickups() {
		return OutcomeWaveCleared
	}
	return OutcomeNone
}

func (s *CombatSystem) resolveBase() bool {
	base := &s.ecs.Base
	s.ecs.RemoveEnemies(func(e *component.Enemy) bool {
		if !utils.Overlaps(e.X, e.Y, e.Radius, base.X, base.Y, base.Radius) {
			return false
		}
		remaining := ApplyDamage(&base.Integrity, e.ContactDamage)
		s.queue(event.BaseDamaged, event.DamageData{Amount: e.ContactDamage, Remaining: remaining})
		return true
	})
	s.flush()
	return base.Destroyed()
}

func (s *CombatSystem) resolvePlayerContact() bool {
	player := &s.ecs.Player
	touching := 0
	for _, e := range s.ecs.Enemies {
		if utils.Overlaps(e.X, e.Y, e.Radius, player.X, player.Y, player.Radius) {
			touching++
		}
	}
	if touching == 0 {
		return false
	}

	damage := s.tuning.ContactDamage
	if s.tuning.ScaleContactDamage {
		damage *= float64(touching)
	}
	remaining := ApplyDamage(&player.Health, damage)
	s.dispatch(event.PlayerDamaged, event.DamageData{Amount: damage, Remaining: remaining})
	return !player.Alive()
}

// resolveProjectiles lets every projectile hit at most one enemy, the first live one
// it overlaps in spawn order. Killed enemies turn into pickups at their position.
func (s *CombatSystem) resolveProjectiles() {
	clear(s.consumed)
	for _, p := range s.ecs.Projectiles {
		for i := range s.ecs.Enemies {
			e := &s.ecs.Enemies[i]
			if e.Health <= 0 || !utils.Overlaps(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
				continue
			}
			ApplyDamage(&e.Health, p.Damage)
			s.consumed[p.ID] = struct{}{}
			break
		}
	}
	if len(s.consumed) == 0 {
		return
	}

	s.ecs.RemoveProjectiles(func(p *component.Projectile) bool {
		_, hit := s.consumed[p.ID]
		return hit
	})
	s.ecs.RemoveEnemies(func(e *component.Enemy) bool {
		if e.Health > 0 {
			return false
		}
		s.ecs.AddPickup(component.Pickup{Position: e.Position, Radius: s.tuning.PickupRadius})
		s.ecs.Run.Kills++
		s.ecs.Run.Score += s.tuning.KillScore
		s.queue(event.EnemyKilled, event.EnemyData{ID: e.ID, Kind: e.Kind, X: e.X, Y: e.Y})
		return true
	})
	s.flush()
}

// resolvePickups collects overlapping pickups until the wave quota is reached and
// reports whether it was.
func (s *CombatSystem) resolvePickups() bool {
	run := &s.ecs.Run
	player := s.ecs.Player
	s.ecs.RemovePickups(func(pk *component.Pickup) bool {
		if run.QuotaMet() || !utils.Overlaps(pk.X, pk.Y, pk.Radius, player.X, player.Y, player.Radius) {
			return false
		}
		run.Score += s.tuning.PickupScore
		run.WaveProgress++
		s.queue(event.PickupCollected, event.PickupData{ID: pk.ID, Progress: run.WaveProgress, Quota: run.WaveQuota})
		return true
	})
	s.flush()
	return run.QuotaMet()
}

func (s *CombatSystem) dispatch(t event.EventType, data interface{}) {
	s.eventDispatcher.Dispatch(event.Event{Type: t, Tick: s.ecs.Tick, Data: data})
}

// queue holds an event raised while a collection is being compacted; flush
// delivers them once the store is consistent again.
func (s *CombatSystem) queue(t event.EventType, data interface{}) {
	s.pending = append(s.pending, event.Event{Type: t, Tick: s.ecs.Tick, Data: data})
}

func (s *CombatSystem) flush() {
	for _, e := range s.pending {
		s.eventDispatcher.Dispatch(e)
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}
