// internal/component/projectile.go
package component

import (
	"go-wave-defense/internal/types"
	"image/color"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID types.EntityID
	Position
	Velocity Velocity
	Radius float64
	Damage float64
	Color  color.RGBA // visual tag inherited from the weapon
}
