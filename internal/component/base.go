package component

// Base is the structure in the middle of the arena that enemies walk towards.
type Base struct {
	Position
	Radius       float64
	Integrity    float64
	MaxIntegrity float64
}

// Destroyed reports whether the base has no integrity left.
func (b Base) Destroyed() bool {
	return b.Integrity <= 0
}
