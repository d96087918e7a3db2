// cmd/viewer_raylib/main.go
package main

import (
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/ui"
)

// viewer держит всё состояние raylib-хоста
type viewer struct {
	game     *app.Game
	step     *app.FixedStep
	fx       *system.VisualEffectSystem
	loadout  component.Loadout
	snap     app.Snapshot
	font     rl.Font
	wave     *ui.WaveIndicator
	bars     []*ui.BarIndicator
	core     *ui.PipIndicator
	start    *ui.Button
	menu     *ui.Button
	upgrades []*ui.Button
}

func newViewer(g *app.Game, settings config.Settings, catalog *defs.Catalog) *viewer {
	loadout, err := catalog.Owned(settings.Owned).Loadout(settings.Skin, settings.Weapon)
	if err != nil {
		log.Printf("Selection rejected, using defaults: %v", err)
		loadout = catalog.DefaultLoadout()
	}

	font := rl.GetFontDefault()
	cx := float32(config.ScreenWidth) / 2
	v := &viewer{
		game:    g,
		step:    app.NewFixedStep(settings.TickMs()),
		fx:      system.NewVisualEffectSystem(g.EventDispatcher, catalog.EnemyColors()),
		loadout: loadout,
		font:    font,
		wave:    ui.NewWaveIndicator(cx, 4, 20),
		bars: []*ui.BarIndicator{
			ui.NewBarIndicator(float32(config.ScreenWidth)-150, 6, 120, 8, "HP", config.HealthColor, config.BarBackColor),
			ui.NewBarIndicator(float32(config.ScreenWidth)-150, 16, 120, 8, "WAVE", config.ProgressColor, config.BarBackColor),
		},
		core:  ui.NewPipIndicator(8, config.ScreenHeight-30, config.IntegrityColor),
		start: ui.NewButton(rl.NewRectangle(cx-100, config.ScreenHeight-140, 200, 44), "START", font, config.ButtonColor, config.ButtonHover),
		menu:  ui.NewButton(rl.NewRectangle(cx-100, config.ScreenHeight/2+60, 200, 44), "MENU", font, config.ButtonColor, config.ButtonHover),
	}
	for i, kind := range component.UpgradeKinds {
		x := cx - 330 + float32(i)*224
		v.upgrades = append(v.upgrades, ui.NewButton(rl.NewRectangle(x, config.ScreenHeight/2-70, 200, 140), kind.String(), font, config.ButtonColor, config.ButtonHover))
	}
	v.snap = g.Snapshot()
	return v
}

func (v *viewer) input() component.Input {
	mouse := rl.GetMousePosition()
	return component.Input{
		Up:     rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Down:   rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:   rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:  rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		AimX:   float64(mouse.X),
		AimY:   float64(mouse.Y),
		Firing: rl.IsMouseButtonDown(rl.MouseLeftButton) || rl.IsKeyDown(rl.KeySpace),
	}
}

func (v *viewer) update(frameMs float64) {
	mouse := rl.GetMousePosition()
	switch v.game.Phase() {
	case component.MenuPhase:
		if v.start.IsClicked(mouse) || rl.IsKeyPressed(rl.KeyEnter) {
			v.game.StartRun(v.loadout)
			v.step.Reset()
		}
	case component.PlayingPhase:
		in := v.input()
		for n := v.step.Advance(frameMs); n > 0; n-- {
			if v.game.Tick(in, v.step.TickMs).Phase != component.PlayingPhase {
				break
			}
		}
	case component.UpgradingPhase:
		for i, b := range v.upgrades {
			if b.IsClicked(mouse) || rl.IsKeyPressed(rl.KeyOne+int32(i)) {
				v.game.ChooseUpgrade(component.UpgradeKinds[i])
				v.step.Reset()
				break
			}
		}
	case component.GameOverPhase:
		if v.menu.IsClicked(mouse) || rl.IsKeyPressed(rl.KeyEnter) {
			v.game.ReturnToMenu()
		}
	}
	v.fx.Update(frameMs)
	v.snap = v.game.Snapshot()
}

func circle(x, y, r float64, c rl.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), c)
}

func (v *viewer) drawArena() {
	s := v.snap
	for x := int32(0); x <= config.ScreenWidth; x += config.GridSpacing {
		rl.DrawLine(x, 0, x, config.ScreenHeight, ui.ToRL(config.GridColor))
	}
	for y := int32(0); y <= config.ScreenHeight; y += config.GridSpacing {
		rl.DrawLine(0, y, config.ScreenWidth, y, ui.ToRL(config.GridColor))
	}

	baseColor := ui.ToRL(config.BaseColor)
	if v.fx.BaseFlash.Active() {
		baseColor = rl.White
	}
	circle(s.Base.X, s.Base.Y, s.Base.Radius, baseColor)
	rl.DrawCircleLines(int32(s.Base.X), int32(s.Base.Y), float32(s.Base.Radius), ui.ToRL(config.BaseStrokeColor))

	for _, pk := range s.Pickups {
		circle(pk.X, pk.Y, pk.Radius, ui.ToRL(config.PickupColor))
	}
	for _, e := range s.Enemies {
		circle(e.X, e.Y, e.Radius, ui.ToRL(e.Color))
	}
	for _, p := range s.Projectiles {
		circle(p.X, p.Y, p.Radius, ui.ToRL(p.Color))
	}
	for _, b := range v.fx.Bursts {
		c := ui.ToRL(b.Color)
		c.A = uint8(255 * (1 - b.Progress()))
		rl.DrawCircleLines(int32(b.X), int32(b.Y), float32(b.MaxRadius*b.Progress()), c)
	}

	rl.DrawLine(int32(s.Player.X), int32(s.Player.Y), int32(s.Aim.X), int32(s.Aim.Y), ui.ToRL(config.AimLineColor))
	playerColor := ui.ToRL(config.PlayerColor)
	if v.fx.PlayerFlash.Active() {
		playerColor = rl.White
	}
	circle(s.Player.X, s.Player.Y, s.Player.Radius, playerColor)
}

func (v *viewer) drawHUD() {
	s := v.snap
	rl.DrawRectangle(0, 0, config.ScreenWidth, config.HUDHeight, ui.ToRL(config.OverlayColor))
	rl.DrawText(fmt.Sprintf("SCORE %d  KILLS %d", s.Score(), s.Run.Kills), 8, 8, 10, rl.White)
	v.wave.Draw(s.Wave(), s.WaveFraction(), &v.game.Tuning, v.font)
	v.bars[0].Draw(s.Health(), s.Player.MaxHealth)
	v.bars[1].Draw(float64(s.Run.WaveProgress), float64(s.Run.WaveQuota))
	v.core.Draw(s.BaseIntegrity(), s.Base.MaxIntegrity, 10)
}

func (v *viewer) draw() {
	mouse := rl.GetMousePosition()
	rl.BeginDrawing()
	rl.ClearBackground(ui.ToRL(config.BackgroundColor))
	defer rl.EndDrawing()

	if v.game.Phase() == component.MenuPhase {
		rl.DrawText("WAVE DEFENSE", config.ScreenWidth/2-90, 120, 30, rl.White)
		rl.DrawText(fmt.Sprintf("%s / %s", v.loadout.SkinID, v.loadout.WeaponID), config.ScreenWidth/2-90, 170, 10, rl.LightGray)
		v.start.Draw(mouse)
		return
	}

	v.drawArena()
	v.drawHUD()

	switch v.game.Phase() {
	case component.UpgradingPhase:
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, ui.ToRL(config.OverlayColor))
		for i, b := range v.upgrades {
			title, detail := system.UpgradeCard(component.UpgradeKinds[i], v.snap.Run.Upgrades, &v.game.Tuning)
			b.Text = title
			b.Draw(mouse)
			rl.DrawText(detail, int32(b.Rect.X)+12, int32(b.Rect.Y+b.Rect.Height)-24, 10, rl.LightGray)
		}
	case component.GameOverPhase:
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, ui.ToRL(config.OverlayColor))
		summary, _ := v.game.Summary()
		rl.DrawText("GAME OVER", config.ScreenWidth/2-80, config.ScreenHeight/2-60, 30, ui.ToRL(config.HealthColor))
		rl.DrawText(fmt.Sprintf("score %d  survived %ds  kills %d", summary.Score, summary.SurvivalSeconds, summary.Kills),
			config.ScreenWidth/2-120, config.ScreenHeight/2, 10, rl.White)
		v.menu.Draw(mouse)
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

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Wave Defense | raylib")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.TPS))

	g := app.NewGame(app.WithSeed(seed), app.WithCatalog(catalog))
	v := newViewer(g, settings, catalog)
	defer v.fx.Close()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		v.update(float64(rl.GetFrameTime()) * 1000)
		v.draw()
	}
}
