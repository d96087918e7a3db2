// internal/system/projectile.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"

	mathutils "go-wave-defense/pkg/utils"
)

// ProjectileSystem управляет выстрелами игрока и полётом снарядов
type ProjectileSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, tuning *config.Tuning, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		tuning:          tuning,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SetRNG swaps the random source, used when a new run is seeded.
func (s *ProjectileSystem) SetRNG(rng *utils.PRNGService) {
	s.rng = rng
}

// CanFire reports whether the cooldown allows a shot at simulation time now.
// The first shot of a run is never blocked.
func CanFire(w component.Weapon, fireRateMs, now float64) bool {
	return !w.HasFired || now-w.LastShotMs > fireRateMs
}

// Fire spawns one projectile toward the aim point when the trigger is held and the
// cooldown has elapsed. It reports whether a shot was produced.
func (s *ProjectileSystem) Fire(in component.Input) bool {
	now := s.ecs.Run.ElapsedMs
	upgrades := s.ecs.Run.Upgrades
	if !in.Firing || !CanFire(s.ecs.Weapon, upgrades.FireRateMs, now) {
		return false
	}

	player := s.ecs.Player
	angle := mathutils.Angle(player.X, player.Y, in.AimX, in.AimY)
	angle += s.rng.Jitter(Spread(upgrades, s.tuning))
	vx, vy := mathutils.Polar(angle, s.tuning.BulletSpeed)

	loadout := s.ecs.Loadout
	id := s.ecs.AddProjectile(component.Projectile{
		Position: player.Position,
		Velocity: component.Velocity{X: vx, Y: vy},
		Radius:   loadout.ProjectileRadius,
		Damage:   ProjectileDamage(loadout, upgrades, s.tuning),
		Color:    loadout.ProjectileColor,
	})
	s.ecs.Weapon = component.Weapon{LastShotMs: now, HasFired: true}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Tick: s.ecs.Tick,
		Data: event.ShotData{ID: id, Angle: angle},
	})
	return true
}

// StepProjectile advances a projectile by its velocity.
func StepProjectile(p component.Projectile) component.Projectile {
	p.X += p.Velocity.X
	p.Y += p.Velocity.Y
	return p
}

// InArena reports whether pos lies strictly inside the arena rectangle.
func InArena(pos component.Position, t *config.Tuning) bool {
	return pos.X > 0 && pos.X < t.ArenaWidth && pos.Y > 0 && pos.Y < t.ArenaHeight
}

// Update moves every projectile and drops the ones that left the arena.
func (s *ProjectileSystem) Update() {
	s.ecs.RemoveProjectiles(func(p *component.Projectile) bool {
		*p = StepProjectile(*p)
		return !InArena(p.Position, s.tuning)
	})
}
