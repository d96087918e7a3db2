// internal/app/game.go
package app

import (
	"log"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/utils"
)

// Summary is what a finished run reports to the host.
type Summary struct {
	Score           int
	SurvivalSeconds int
	Kills           int
	Wave            int
	BaseDestroyed   bool
}

// Game holds the simulation state and runs one tick at a time. It is not safe for
// concurrent use; hosts read Snapshots only.
type Game struct {
	ECS              *entity.ECS
	Tuning           config.Tuning
	Catalog          *defs.Catalog
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService // draws the seed of every run

	runRng     *utils.PRNGService
	logger     *log.Logger
	summary    Summary
	hasSummary bool
}

// Option configures a Game.
type Option func(*Game)

// WithSeed makes the sequence of runs reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.Rng = utils.NewPRNGService(seed) }
}

// WithTuning replaces the stock balance.
func WithTuning(t config.Tuning) Option {
	return func(g *Game) { g.Tuning = t }
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *defs.Catalog) Option {
	return func(g *Game) { g.Catalog = c }
}

// WithLogger routes engine diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// NewGame initializes a new game instance in the menu phase.
func NewGame(opts ...Option) *Game {
	g := &Game{
		ECS:             entity.NewECS(),
		Tuning:          config.DefaultTuning(),
		EventDispatcher: event.NewDispatcher(),
		logger:          log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Catalog == nil {
		g.Catalog = defs.DefaultCatalog()
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}
	g.runRng = utils.NewPRNGService(g.Rng.Seed())

	tuning := &g.Tuning
	g.WaveSystem = system.NewWaveSystem(g.ECS, tuning, g.Catalog, g.runRng, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.ECS, tuning)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, tuning, g.runRng, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.ECS, tuning, g.EventDispatcher)
	g.StateSystem = system.NewStateSystem(g.ECS, tuning, g.EventDispatcher)

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.WaveCleared, listener)
	g.EventDispatcher.Subscribe(event.UpgradeChosen, listener)
	g.EventDispatcher.Subscribe(event.GameOver, listener)
	return g
}

// GameEventListener records the run summary and logs progression.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveData); ok {
			g.logger.Printf("Wave %d cleared at tick %d, score %d", data.Wave, e.Tick, g.ECS.Run.Score)
		}
	case event.UpgradeChosen:
		if data, ok := e.Data.(event.WaveData); ok {
			g.logger.Printf("Upgrade %s chosen, starting wave %d", data.Upgrade, data.Wave)
		}
	case event.GameOver:
		data, ok := e.Data.(event.GameOverData)
		if !ok {
			return
		}
		g.summary = Summary{
			Score:           data.Score,
			SurvivalSeconds: data.SurvivalSeconds,
			Kills:           data.Kills,
			Wave:            g.ECS.Run.Wave,
			BaseDestroyed:   data.BaseDestroyed,
		}
		g.hasSummary = true
		g.logger.Printf("Game over at tick %d: score=%d survived=%ds kills=%d base_destroyed=%t",
			e.Tick, data.Score, data.SurvivalSeconds, data.Kills, data.BaseDestroyed)
	}
}

// StartRun resets every per-run record and enters Playing with the given loadout.
// The run seed is drawn from the game's own generator.
func (g *Game) StartRun(l component.Loadout) {
	seed := g.Rng.Int63()
	if seed == 0 {
		seed = 1
	}
	g.StartRunWithSeed(l, seed)
}

// StartRunWithSeed is StartRun with an explicit run seed, used to replay a recording.
func (g *Game) StartRunWithSeed(l component.Loadout, seed int64) {
	l = system.SanitizeLoadout(l, &g.Tuning)

	g.runRng = utils.NewPRNGService(seed)
	g.WaveSystem.SetRNG(g.runRng)
	g.ProjectileSystem.SetRNG(g.runRng)

	g.ECS.Reset()
	g.summary, g.hasSummary = Summary{}, false
	g.StateSystem.StartRun(l)
	g.logger.Printf("Run started: seed=%d skin=%s weapon=%s fire_rate=%.0fms", seed, l.SkinID, l.WeaponID, l.FireRateMs)
}

// RunSeed returns the seed of the current run.
func (g *Game) RunSeed() int64 {
	return g.runRng.Seed()
}

// Tick advances the simulation by one step when a run is in progress. dtMs only
// moves the clock used for spawn cadence, the fire cooldown and survival time;
// movement is per tick. A non-finite or negative dtMs counts as 0. Outside Playing
// the call is ignored.
func (g *Game) Tick(in component.Input, dtMs float64) Snapshot {
	if g.ECS.Phase != component.PlayingPhase {
		return g.Snapshot()
	}
	if math.IsNaN(dtMs) || math.IsInf(dtMs, 0) || dtMs < 0 {
		dtMs = 0
	}
	in = g.sanitizeInput(in)

	g.ECS.Tick++
	g.ECS.Run.ElapsedMs += dtMs
	g.ECS.Aim = component.Position{X: in.AimX, Y: in.AimY}

	g.WaveSystem.Update()
	g.MovementSystem.Update(in)
	g.ProjectileSystem.Fire(in)
	g.ProjectileSystem.Update()
	g.StateSystem.Apply(g.CombatSystem.Resolve())

	return g.Snapshot()
}

// sanitizeInput replaces a non-finite aim point with the previous one.
func (g *Game) sanitizeInput(in component.Input) component.Input {
	if math.IsNaN(in.AimX) || math.IsInf(in.AimX, 0) {
		in.AimX = g.ECS.Aim.X
	}
	if math.IsNaN(in.AimY) || math.IsInf(in.AimY, 0) {
		in.AimY = g.ECS.Aim.Y
	}
	return in
}

// ChooseUpgrade applies an upgrade between waves. It returns false and changes
// nothing outside the Upgrading phase.
func (g *Game) ChooseUpgrade(kind component.UpgradeKind) bool {
	return g.StateSystem.ChooseUpgrade(kind)
}

// ReturnToMenu ends whatever run is in progress and resets all per-run state.
func (g *Game) ReturnToMenu() {
	g.StateSystem.ReturnToMenu()
	g.summary, g.hasSummary = Summary{}, false
}

// Phase returns the current phase.
func (g *Game) Phase() component.Phase {
	return g.ECS.Phase
}

// Summary returns the final numbers of the run once it is over.
func (g *Game) Summary() (Summary, bool) {
	return g.summary, g.hasSummary
}
