// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/state"
	"go-wave-defense/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.Current() == nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaMs/1000.0 {
		deltaTime = config.MaxDeltaMs / 1000.0
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func arenaColors() render.ArenaColors {
	return render.ArenaColors{
		Background:  config.BackgroundColor,
		Grid:        config.GridColor,
		Base:        config.BaseColor,
		BaseStroke:  config.BaseStrokeColor,
		Player:      config.PlayerColor,
		Pickup:      config.PickupColor,
		AimLine:     config.AimLineColor,
		TextLight:   config.TextLightColor,
		TextDim:     config.TextDimColor,
		Health:      config.HealthColor,
		Integrity:   config.IntegrityColor,
		Progress:    config.ProgressColor,
		BarBack:     config.BarBackColor,
		Overlay:     config.OverlayColor,
		Button:      config.ButtonColor,
		ButtonHover: config.ButtonHover,
		StrokeWidth: float32(config.StrokeWidth),
	}
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	catalog := defs.DefaultCatalog()
	if settings.CatalogPath != "" {
		if catalog, err = defs.LoadCatalog(settings.CatalogPath); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Session seed %d", seed)

	renderer := render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, config.GridSpacing, config.HUDHeight, arenaColors())
	session := state.NewSession(settings, catalog, renderer, app.WithSeed(seed))
	defer session.Close()

	if settings.Audio {
		cues, err := audio.NewCuePlayer(session.Game.EventDispatcher)
		if err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer cues.Close()
			defer audio.Shutdown()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, session))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
