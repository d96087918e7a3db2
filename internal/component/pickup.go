package component

import "go-wave-defense/internal/types"

// Pickup is the dot dropped where an enemy died. Velocity stays zero until the
// player comes within the magnet range.
type Pickup struct {
	ID types.EntityID
	Position
	Velocity Velocity
	Radius float64
}
