package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
)

type world struct {
	ecs        *entity.ECS
	tuning     *config.Tuning
	dispatcher *event.Dispatcher
	events     []event.Event
	wave       *WaveSystem
	movement   *MovementSystem
	projectile *ProjectileSystem
	combat     *CombatSystem
	state      *StateSystem
}

func newWorld(t *testing.T, seed int64) *world {
	t.Helper()
	tuning := config.DefaultTuning()
	w := &world{
		ecs:        entity.NewECS(),
		tuning:     &tuning,
		dispatcher: event.NewDispatcher(),
	}
	w.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.events = append(w.events, e)
	}))
	rng := utils.NewPRNGService(seed)
	w.wave = NewWaveSystem(w.ecs, w.tuning, defs.DefaultCatalog(), rng, w.dispatcher)
	w.movement = NewMovementSystem(w.ecs, w.tuning)
	w.projectile = NewProjectileSystem(w.ecs, w.tuning, rng, w.dispatcher)
	w.combat = NewCombatSystem(w.ecs, w.tuning, w.dispatcher)
	w.state = NewStateSystem(w.ecs, w.tuning, w.dispatcher)
	w.state.StartRun(defaultLoadout())
	return w
}

func (w *world) count(typ event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestSpawnIntervalTightensWithWave(t *testing.T) {
	tuning := config.DefaultTuning()
	cases := map[int]float64{1: 1900, 5: 1500, 12: 800, 30: 800}
	for wave, want := range cases {
		if got := SpawnIntervalMs(wave, &tuning); got != want {
			t.Errorf("wave %d: got=%f want=%f", wave, got, want)
		}
	}
	if got := EnemyCap(3, &tuning); got != 8 {
		t.Errorf("enemy cap on wave 3: got=%d want=8", got)
	}
}

func TestChooseKind(t *testing.T) {
	tuning := config.DefaultTuning()
	cases := []struct {
		wave int
		roll float64
		want component.EnemyKind
	}{
		{1, 0.9, component.EnemyRegular},
		{1, 0.1, component.EnemyRegular},
		{2, 0.9, component.EnemyFast},
		{2, 0.1, component.EnemyRegular},
		{2, 0.7, component.EnemyRegular},
		{3, 0.1, component.EnemyTank},
		{3, 0.5, component.EnemyRegular},
		{3, 0.71, component.EnemyFast},
	}
	for _, c := range cases {
		if got := ChooseKind(c.wave, c.roll, &tuning); got != c.want {
			t.Errorf("wave %d roll %.2f: got=%s want=%s", c.wave, c.roll, got, c.want)
		}
	}
}

func TestNewEnemyScalesWithWave(t *testing.T) {
	w := newWorld(t, 1)
	regular := w.wave.NewEnemy(component.EnemyRegular, 1, 0, 0)
	if regular.Health != 10 || regular.Radius != 15 || regular.ContactDamage != 10 {
		t.Fatalf("unexpected wave-1 regular: %+v", regular)
	}
	tank := w.wave.NewEnemy(component.EnemyTank, 3, 0, 0)
	if tank.Health != 60 || tank.Radius != 22 {
		t.Fatalf("unexpected wave-3 tank: %+v", tank)
	}
	if want := (0.8 + 0.3) * 0.5; tank.Speed-want > 1e-9 || want-tank.Speed > 1e-9 {
		t.Fatalf("tank speed: got=%f want=%f", tank.Speed, want)
	}
}

func TestSpawnWaitsForInterval(t *testing.T) {
	w := newWorld(t, 7)
	w.ecs.Run.ElapsedMs = 1900
	w.wave.Update()
	if len(w.ecs.Enemies) != 0 {
		t.Fatalf("spawned at exactly the interval")
	}
	w.ecs.Run.ElapsedMs = 1901
	w.wave.Update()
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("expected one enemy, got %d", len(w.ecs.Enemies))
	}
	if w.ecs.Run.LastSpawnMs != 1901 {
		t.Fatalf("last spawn not recorded: %f", w.ecs.Run.LastSpawnMs)
	}
	w.wave.Update()
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("spawned twice within one interval")
	}
	if w.count(event.EnemySpawned) != 1 {
		t.Fatalf("expected one EnemySpawned event")
	}
}

func TestSpawnPlacesEnemyOutsideAnEdge(t *testing.T) {
	w := newWorld(t, 11)
	for i := 0; i < 200; i++ {
		w.ecs.ClearEnemies()
		w.ecs.Run.ElapsedMs += 5000
		w.wave.Update()
		e := w.ecs.Enemies[0]
		onEdge := e.Y == -50 || e.Y == w.tuning.ArenaHeight+50 || e.X == -50 || e.X == w.tuning.ArenaWidth+50
		if !onEdge {
			t.Fatalf("enemy not on a spawn edge: (%f, %f)", e.X, e.Y)
		}
	}
}

func TestSpawnRespectsCapAndQuota(t *testing.T) {
	w := newWorld(t, 3)
	for i := 0; i < 20; i++ {
		w.ecs.Run.ElapsedMs += 5000
		w.wave.Update()
	}
	if got := len(w.ecs.Enemies); got != EnemyCap(1, w.tuning) {
		t.Fatalf("enemy count: got=%d want=%d", got, EnemyCap(1, w.tuning))
	}

	w.ecs.ClearEnemies()
	w.ecs.Run.WaveProgress = w.ecs.Run.WaveQuota
	w.ecs.Run.ElapsedMs += 5000
	w.wave.Update()
	if len(w.ecs.Enemies) != 0 {
		t.Fatalf("spawned after the quota was met")
	}
}

func TestSpawnSequenceIsDeterministic(t *testing.T) {
	run := func() []component.Enemy {
		w := newWorld(t, 99)
		w.ecs.Run.Wave = 4
		for i := 0; i < 8; i++ {
			w.ecs.Run.ElapsedMs += 5000
			w.wave.Update()
		}
		return append([]component.Enemy(nil), w.ecs.Enemies...)
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("different enemy counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("enemy %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestUnknownEnemyKindUsesEnemyRadius(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.PlayerRadius = 99
	catalog := *defs.DefaultCatalog()
	catalog.Enemies = nil
	for _, e := range defs.DefaultCatalog().Enemies {
		if e.Kind != component.EnemyTank {
			catalog.Enemies = append(catalog.Enemies, e)
		}
	}
	ws := NewWaveSystem(entity.NewECS(), &tuning, &catalog, utils.NewPRNGService(1), event.NewDispatcher())

	e := ws.NewEnemy(component.EnemyTank, 1, 10, 20)
	if e.Radius != tuning.EnemyRadius || e.Radius != 15 {
		t.Fatalf("radius: got=%f want=%f", e.Radius, tuning.EnemyRadius)
	}
	if want := tuning.EnemyHealth + tuning.EnemyHealthPerWave; e.Health != want {
		t.Fatalf("health: got=%f want=%f", e.Health, want)
	}
}
