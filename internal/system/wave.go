// internal/system/wave.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
)

// WaveSystem решает, когда и какого врага выпустить на арену.
type WaveSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	rng             *utils.PRNGService
	profiles        map[component.EnemyKind]defs.EnemyDefinition
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, tuning *config.Tuning, catalog *defs.Catalog, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	profiles := make(map[component.EnemyKind]defs.EnemyDefinition, len(catalog.Enemies))
	for _, e := range catalog.Enemies {
		profiles[e.Kind] = e
	}
	return &WaveSystem{
		ecs:             ecs,
		tuning:          tuning,
		rng:             rng,
		profiles:        profiles,
		eventDispatcher: eventDispatcher,
	}
}

// SetRNG swaps the random source, used when a new run is seeded.
func (s *WaveSystem) SetRNG(rng *utils.PRNGService) {
	s.rng = rng
}

// SpawnIntervalMs is the minimum time between two spawns on the given wave.
func SpawnIntervalMs(wave int, t *config.Tuning) float64 {
	return math.Max(t.MinSpawnIntervalMs, t.SpawnIntervalMs-float64(wave)*t.SpawnIntervalPerWaveMs)
}

// EnemyCap is the number of live enemies above which spawning pauses.
func EnemyCap(wave int, t *config.Tuning) int {
	return t.EnemyCapBase + wave
}

// ChooseKind maps a single uniform roll to an enemy kind. Tank is checked last so it
// wins on waves where both rules could apply.
func ChooseKind(wave int, roll float64, t *config.Tuning) component.EnemyKind {
	kind := component.EnemyRegular
	if wave >= t.FastMinWave && roll > t.FastRollAbove {
		kind = component.EnemyFast
	}
	if wave >= t.TankMinWave && roll < t.TankRollBelow {
		kind = component.EnemyTank
	}
	return kind
}

// NewEnemy builds an enemy of the given kind scaled for the wave.
func (s *WaveSystem) NewEnemy(kind component.EnemyKind, wave int, x, y float64) component.Enemy {
	profile, ok := s.profiles[kind]
	if !ok {
		profile = defs.EnemyDefinition{Kind: kind, Radius: s.tuning.EnemyRadius, HealthMultiplier: 1, SpeedMultiplier: 1}
	}
	health := (s.tuning.EnemyHealth + float64(wave)*s.tuning.EnemyHealthPerWave) * profile.HealthMultiplier
	speed := (s.tuning.EnemySpeed + float64(wave)*s.tuning.EnemySpeedPerWave) * profile.SpeedMultiplier
	return component.Enemy{
		Position:      component.Position{X: x, Y: y},
		Kind:          kind,
		Radius:        profile.Radius,
		Health:        health,
		MaxHealth:     health,
		Speed:         speed,
		ContactDamage: s.tuning.BaseDamagePerEnemy,
		Color:         profile.Visuals.RGBA(),
	}
}

// Update spawns at most one enemy per tick.
func (s *WaveSystem) Update() {
	run := &s.ecs.Run
	if len(s.ecs.Enemies) >= EnemyCap(run.Wave, s.tuning) || run.QuotaMet() {
		return
	}
	if run.ElapsedMs-run.LastSpawnMs <= SpawnIntervalMs(run.Wave, s.tuning) {
		return
	}

	x, y := s.edgePoint()
	kind := ChooseKind(run.Wave, s.rng.Float64(), s.tuning)
	enemy := s.NewEnemy(kind, run.Wave, x, y)
	id := s.ecs.AddEnemy(enemy)
	run.LastSpawnMs = run.ElapsedMs

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Tick: s.ecs.Tick,
		Data: event.EnemyData{ID: id, Kind: kind, X: x, Y: y},
	})
}

// edgePoint picks one of the four edges with equal probability and a uniform point
// along it, pushed SpawnMargin units outside the arena.
func (s *WaveSystem) edgePoint() (float64, float64) {
	w, h, m := s.tuning.ArenaWidth, s.tuning.ArenaHeight, s.tuning.SpawnMargin
	switch s.rng.Intn(4) {
	case 0:
		return s.rng.Float64() * w, -m
	case 1:
		return w + m, s.rng.Float64() * h
	case 2:
		return s.rng.Float64() * w, h + m
	default:
		return -m, s.rng.Float64() * h
	}
}
