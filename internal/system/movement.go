// internal/system/movement.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/pkg/utils"
)

// StepPlayer moves the player one tick along the input axes, keeps it inside the arena
// and pushes it out of the base footprint.
func StepPlayer(p component.Player, in component.Input, base component.Base, t *config.Tuning) component.Player {
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}
	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}
	p.Position = clampToArena(p.Position, p.Radius, t)

	minDist := p.Radius + base.Radius
	if utils.Distance(p.X, p.Y, base.X, base.Y) < minDist {
		angle := utils.Angle(base.X, base.Y, p.X, p.Y)
		dx, dy := utils.Polar(angle, minDist)
		p.X, p.Y = base.X+dx, base.Y+dy
		// Выталкивание у края арены не должно выводить игрока за границы.
		p.Position = clampToArena(p.Position, p.Radius, t)
	}
	return p
}

func clampToArena(pos component.Position, r float64, t *config.Tuning) component.Position {
	pos.X = utils.Clamp(pos.X, r, t.ArenaWidth-r)
	pos.Y = utils.Clamp(pos.Y, r, t.ArenaHeight-r)
	return pos
}

// StepEnemy moves an enemy straight toward the base at its own speed.
func StepEnemy(e component.Enemy, base component.Base) component.Enemy {
	angle := utils.Angle(e.X, e.Y, base.X, base.Y)
	e.X += math.Cos(angle) * e.Speed
	e.Y += math.Sin(angle) * e.Speed
	return e
}

// StepPickup applies the magnet model: inside the attraction range the pickup gains
// velocity toward the player, integrates it, then loses a fraction of it. Outside the
// range it stays put and forgets any velocity.
func StepPickup(pk component.Pickup, player component.Position, t *config.Tuning) component.Pickup {
	if utils.Distance(pk.X, pk.Y, player.X, player.Y) >= t.MagnetRange {
		pk.Velocity = component.Velocity{}
		return pk
	}
	angle := utils.Angle(pk.X, pk.Y, player.X, player.Y)
	pk.Velocity.X += math.Cos(angle) * t.MagnetAccel
	pk.Velocity.Y += math.Sin(angle) * t.MagnetAccel
	pk.X += pk.Velocity.X
	pk.Y += pk.Velocity.Y
	pk.Velocity.X *= t.MagnetDamping
	pk.Velocity.Y *= t.MagnetDamping
	return pk
}

// MovementSystem обновляет позиции игрока, врагов и точек
type MovementSystem struct {
	ecs    *entity.ECS
	tuning *config.Tuning
}

func NewMovementSystem(ecs *entity.ECS, tuning *config.Tuning) *MovementSystem {
	return &MovementSystem{ecs: ecs, tuning: tuning}
}

func (s *MovementSystem) Update(in component.Input) {
	s.ecs.Player = StepPlayer(s.ecs.Player, in, s.ecs.Base, s.tuning)
	for i := range s.ecs.Enemies {
		s.ecs.Enemies[i] = StepEnemy(s.ecs.Enemies[i], s.ecs.Base)
	}
	for i := range s.ecs.Pickups {
		s.ecs.Pickups[i] = StepPickup(s.ecs.Pickups[i], s.ecs.Player.Position, s.tuning)
	}
}
