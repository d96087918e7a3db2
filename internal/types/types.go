// internal/types/types.go
package types

// EntityID identifies an enemy, projectile or pickup for the lifetime of a run.
// IDs are handed out in creation order and never reused within a run.
type EntityID uint32
