// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен, мс
	Duration float64 // Общая продолжительность эффекта, мс
}

// Active reports whether the flash is still running.
func (f DamageFlash) Active() bool {
	return f.Timer < f.Duration
}

// Burst is an expanding ring left where an enemy died or hit the base.
type Burst struct {
	Position
	Color     color.RGBA
	MaxRadius float64
	Timer     float64
	Duration  float64
}

// Progress returns how far the burst is through its animation, in [0, 1].
func (b Burst) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	p := b.Timer / b.Duration
	if p > 1 {
		return 1
	}
	return p
}
