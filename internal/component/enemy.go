package component

import (
	"go-wave-defense/internal/types"
	"image/color"
)

// EnemyKind tags an enemy with its stat profile.
type EnemyKind string

const (
	EnemyRegular EnemyKind = "regular"
	EnemyFast    EnemyKind = "fast"
	EnemyTank    EnemyKind = "tank"
)

// EnemyKinds lists every kind in a stable order.
var EnemyKinds = []EnemyKind{EnemyRegular, EnemyFast, EnemyTank}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID types.EntityID
	Position
	Kind          EnemyKind
	Radius        float64
	Health        float64
	MaxHealth     float64
	Speed         float64
	ContactDamage float64 // integrity taken from the base on arrival
	Color         color.RGBA
}
