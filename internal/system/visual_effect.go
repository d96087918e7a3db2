// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/event"
)

const (
	flashDurationMs = 150
	burstDurationMs = 350
	killBurstRadius = 30
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
// Она только слушает события движка и никогда не влияет на симуляцию.
type VisualEffectSystem struct {
	PlayerFlash component.DamageFlash
	BaseFlash   component.DamageFlash
	Bursts      []component.Burst

	enemyColors map[component.EnemyKind]color.RGBA
	unsubscribe []func()
}

// NewVisualEffectSystem создает новую систему визуальных эффектов и подписывает её
// на события диспетчера.
func NewVisualEffectSystem(d *event.Dispatcher, enemyColors map[component.EnemyKind]color.RGBA) *VisualEffectSystem {
	s := &VisualEffectSystem{
		PlayerFlash: component.DamageFlash{Timer: flashDurationMs, Duration: flashDurationMs},
		BaseFlash:   component.DamageFlash{Timer: flashDurationMs, Duration: flashDurationMs},
		enemyColors: enemyColors,
	}
	for _, t := range []event.EventType{event.EnemyKilled, event.BaseDamaged, event.PlayerDamaged, event.RunStarted, event.WaveCleared} {
		s.unsubscribe = append(s.unsubscribe, d.Subscribe(t, s))
	}
	return s
}

// Close detaches the system from the dispatcher.
func (s *VisualEffectSystem) Close() {
	for _, u := range s.unsubscribe {
		u()
	}
	s.unsubscribe = nil
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyData)
		if !ok {
			return
		}
		s.Bursts = append(s.Bursts, component.Burst{
			Position:  component.Position{X: data.X, Y: data.Y},
			Color:     s.enemyColors[data.Kind],
			MaxRadius: killBurstRadius,
			Duration:  burstDurationMs,
		})
	case event.BaseDamaged:
		s.BaseFlash = component.DamageFlash{Duration: flashDurationMs}
	case event.PlayerDamaged:
		s.PlayerFlash = component.DamageFlash{Duration: flashDurationMs}
	case event.RunStarted, event.WaveCleared:
		s.Bursts = s.Bursts[:0]
	}
}

// Update обновляет все активные визуальные эффекты. dtMs is wall time, effects keep
// animating while the simulation is paused between waves.
func (s *VisualEffectSystem) Update(dtMs float64) {
	s.PlayerFlash.Timer += dtMs
	s.BaseFlash.Timer += dtMs

	kept := s.Bursts[:0]
	for _, b := range s.Bursts {
		b.Timer += dtMs
		if b.Timer < b.Duration {
			kept = append(kept, b)
		}
	}
	s.Bursts = kept
}
