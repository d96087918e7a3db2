package app

import (
	"slices"

	"go-wave-defense/internal/component"
)

// Snapshot is a read-only copy of the simulation after a tick. It shares no memory
// with the engine, so hosts may keep it across ticks.
type Snapshot struct {
	Phase       component.Phase
	Tick        uint64
	Run         component.RunState
	Loadout     component.Loadout
	Player      component.Player
	Base        component.Base
	Aim         component.Position
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Pickups     []component.Pickup
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	return Snapshot{
		Phase:       ecs.Phase,
		Tick:        ecs.Tick,
		Run:         ecs.Run,
		Loadout:     ecs.Loadout,
		Player:      ecs.Player,
		Base:        ecs.Base,
		Aim:         ecs.Aim,
		Enemies:     slices.Clone(ecs.Enemies),
		Projectiles: slices.Clone(ecs.Projectiles),
		Pickups:     slices.Clone(ecs.Pickups),
	}
}

// Score, Wave, Health and BaseIntegrity are the HUD values.
func (s Snapshot) Score() int             { return s.Run.Score }
func (s Snapshot) Wave() int              { return s.Run.Wave }
func (s Snapshot) Health() float64        { return s.Player.Health }
func (s Snapshot) BaseIntegrity() float64 { return s.Base.Integrity }

// WaveFraction is the share of the wave quota already collected.
func (s Snapshot) WaveFraction() float64 {
	if s.Run.WaveQuota <= 0 {
		return 0
	}
	return float64(s.Run.WaveProgress) / float64(s.Run.WaveQuota)
}
