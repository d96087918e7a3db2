// internal/entity/ecs.go
package entity

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
)

// ECS owns every mutable entity of a run. Enemies, projectiles and pickups are kept
// in creation order so that collision resolution is deterministic.
type ECS struct {
	NextID      types.EntityID
	Tick        uint64 // ticks simulated in the current run
	Phase       component.Phase
	Run         component.RunState
	Loadout     component.Loadout
	Weapon      component.Weapon
	Aim         component.Position
	Player      component.Player
	Base        component.Base
	Enemies     []component.Enemy
	Projectiles []component.Projectile
	Pickups     []component.Pickup
}

func NewECS() *ECS {
	return &ECS{NextID: 1}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Reset drops every entity and restarts id allocation.
func (ecs *ECS) Reset() {
	*ecs = ECS{
		NextID:      1,
		Enemies:     ecs.Enemies[:0],
		Projectiles: ecs.Projectiles[:0],
		Pickups:     ecs.Pickups[:0],
	}
}

// AddEnemy stores e under a fresh id and returns it.
func (ecs *ECS) AddEnemy(e component.Enemy) types.EntityID {
	e.ID = ecs.NewEntity()
	ecs.Enemies = append(ecs.Enemies, e)
	return e.ID
}

// AddProjectile stores p under a fresh id and returns it.
func (ecs *ECS) AddProjectile(p component.Projectile) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.Projectiles = append(ecs.Projectiles, p)
	return p.ID
}

// AddPickup stores p under a fresh id and returns it.
func (ecs *ECS) AddPickup(p component.Pickup) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.Pickups = append(ecs.Pickups, p)
	return p.ID
}

// RemoveEnemies deletes every enemy for which drop returns true, keeping order.
func (ecs *ECS) RemoveEnemies(drop func(*component.Enemy) bool) {
	kept := ecs.Enemies[:0]
	for i := range ecs.Enemies {
		if !drop(&ecs.Enemies[i]) {
			kept = append(kept, ecs.Enemies[i])
		}
	}
	ecs.Enemies = kept
}

// RemoveProjectiles deletes every projectile for which drop returns true, keeping order.
func (ecs *ECS) RemoveProjectiles(drop func(*component.Projectile) bool) {
	kept := ecs.Projectiles[:0]
	for i := range ecs.Projectiles {
		if !drop(&ecs.Projectiles[i]) {
			kept = append(kept, ecs.Projectiles[i])
		}
	}
	ecs.Projectiles = kept
}

// RemovePickups deletes every pickup for which drop returns true, keeping order.
func (ecs *ECS) RemovePickups(drop func(*component.Pickup) bool) {
	kept := ecs.Pickups[:0]
	for i := range ecs.Pickups {
		if !drop(&ecs.Pickups[i]) {
			kept = append(kept, ecs.Pickups[i])
		}
	}
	ecs.Pickups = kept
}

// ClearEnemies removes all enemies.
func (ecs *ECS) ClearEnemies() {
	ecs.Enemies = ecs.Enemies[:0]
}

// ClearProjectiles removes all projectiles.
func (ecs *ECS) ClearProjectiles() {
	ecs.Projectiles = ecs.Projectiles[:0]
}

// ClearPickups removes all pickups.
func (ecs *ECS) ClearPickups() {
	ecs.Pickups = ecs.Pickups[:0]
}
