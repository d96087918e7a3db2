// internal/defs/enemies.go
package defs

import "go-wave-defense/internal/component"

// EnemyDefinition holds the stat profile of one enemy kind. Health and speed are
// multipliers over the per-wave baseline.
type EnemyDefinition struct {
	Kind             component.EnemyKind `json:"kind" jsonschema:"title=Enemy kind,enum=regular,enum=fast,enum=tank"`
	Name             string              `json:"name"`
	Radius           float64             `json:"radius" jsonschema:"minimum=1"`
	HealthMultiplier float64             `json:"health_multiplier" jsonschema:"minimum=0"`
	SpeedMultiplier  float64             `json:"speed_multiplier" jsonschema:"minimum=0"`
	Visuals          Visuals             `json:"visuals"`
}
