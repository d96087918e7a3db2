// internal/component/player.go
package component

// Player is the singleton avatar controlled by the host input.
type Player struct {
	Position
	Radius    float64
	Speed     float64 // units per tick, base speed plus skin modifier
	Health    float64
	MaxHealth float64
}

// Alive reports whether the player still has health left.
func (p Player) Alive() bool {
	return p.Health > 0
}
