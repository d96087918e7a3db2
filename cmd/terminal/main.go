// cmd/terminal/main.go
package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/replay"
	"go-wave-defense/internal/system"
)

const (
	// Терминал не сообщает об отпускании клавиш: нажатие держится holdMs
	holdMs  = 180
	frameMs = 16
)

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

type terminalHost struct {
	screen        tcell.Screen
	width, height int
	settings      config.Settings

	game     *app.Game
	recorder *replay.Recorder
	step     *app.FixedStep
	loadout  component.Loadout
	icons    map[component.EnemyKind]rune

	pressed  map[direction]time.Time
	fireAt   time.Time
	autoFire bool
	mouseAim bool
	mouseX   float64
	mouseY   float64
	snap     app.Snapshot
}

func newTerminalHost(settings config.Settings, catalog *defs.Catalog, seed int64) (*terminalHost, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	loadout, err := catalog.Owned(settings.Owned).Loadout(settings.Skin, settings.Weapon)
	if err != nil {
		log.Printf("Selection rejected, using defaults: %v", err)
		loadout = catalog.DefaultLoadout()
	}

	g := app.NewGame(app.WithSeed(seed), app.WithCatalog(catalog))
	h := &terminalHost{
		screen:   screen,
		settings: settings,
		game:     g,
		recorder: replay.NewRecorder(g),
		step:     app.NewFixedStep(settings.TickMs()),
		loadout:  loadout,
		icons:    make(map[component.EnemyKind]rune),
		pressed:  make(map[direction]time.Time),
		autoFire: true,
	}
	for _, e := range catalog.Enemies {
		if r := []rune(e.Visuals.Icon); len(r) > 0 {
			h.icons[e.Kind] = r[0]
		}
	}
	h.width, h.height = screen.Size()
	h.snap = g.Snapshot()
	return h, nil
}

func (h *terminalHost) viewport() viewport {
	return newViewport(h.width, h.height, h.game.Tuning.ArenaWidth, h.game.Tuning.ArenaHeight)
}

func (h *terminalHost) press(d direction) {
	h.pressed[d] = time.Now()
	// Противоположное направление отпускаем сразу
	switch d {
	case dirUp:
		delete(h.pressed, dirDown)
	case dirDown:
		delete(h.pressed, dirUp)
	case dirLeft:
		delete(h.pressed, dirRight)
	case dirRight:
		delete(h.pressed, dirLeft)
	}
}

func (h *terminalHost) held(d direction, now time.Time) bool {
	t, ok := h.pressed[d]
	return ok && now.Sub(t) < holdMs*time.Millisecond
}

func (h *terminalHost) input(now time.Time) component.Input {
	s := h.snap
	in := component.Input{
		Up:     h.held(dirUp, now),
		Down:   h.held(dirDown, now),
		Left:   h.held(dirLeft, now),
		Right:  h.held(dirRight, now),
		AimX:   s.Aim.X,
		AimY:   s.Aim.Y,
		Firing: h.autoFire || now.Sub(h.fireAt) < holdMs*time.Millisecond,
	}
	switch {
	case h.mouseAim:
		in.AimX, in.AimY = h.mouseX, h.mouseY
	default:
		if e, ok := nearestEnemy(s.Enemies, s.Player.X, s.Player.Y); ok {
			in.AimX, in.AimY = e.X, e.Y
		}
	}
	return in
}

// handleInput returns false when the host should exit.
func (h *terminalHost) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch ev.Key() {
		case tcell.KeyUp:
			h.press(dirUp)
		case tcell.KeyDown:
			h.press(dirDown)
		case tcell.KeyLeft:
			h.press(dirLeft)
		case tcell.KeyRight:
			h.press(dirRight)
		case tcell.KeyEnter:
			h.confirm()
		case tcell.KeyRune:
			h.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		h.mouseX, h.mouseY = h.viewport().world(col, row)
		h.mouseAim = true
		if ev.Buttons()&tcell.Button1 != 0 {
			h.fireAt = time.Now()
		}

	case *tcell.EventResize:
		h.width, h.height = h.screen.Size()
		h.screen.Sync()
	}
	return true
}

func (h *terminalHost) handleRune(r rune) {
	switch r {
	case 'w', 'k':
		h.press(dirUp)
	case 's', 'j':
		h.press(dirDown)
	case 'a', 'h':
		h.press(dirLeft)
	case 'd', 'l':
		h.press(dirRight)
	case ' ':
		h.fireAt = time.Now()
	case 'f':
		h.autoFire = !h.autoFire
	case 'm':
		h.mouseAim = false
	case '1', '2', '3':
		if h.game.Phase() == component.UpgradingPhase {
			h.recorder.ChooseUpgrade(component.UpgradeKinds[r-'1'])
			h.step.Reset()
		}
	}
}

func (h *terminalHost) confirm() {
	switch h.game.Phase() {
	case component.MenuPhase:
		h.recorder.StartRun(h.loadout)
		h.step.Reset()
	case component.GameOverPhase:
		h.game.ReturnToMenu()
	}
}

func (h *terminalHost) update(now time.Time, elapsedMs float64) {
	if h.game.Phase() == component.PlayingPhase {
		in := h.input(now)
		for n := h.step.Advance(elapsedMs); n > 0; n-- {
			if h.recorder.Tick(in, h.step.TickMs).Phase != component.PlayingPhase {
				h.step.Reset()
				break
			}
		}
		if h.game.Phase() == component.GameOverPhase && h.settings.ReplayPath != "" {
			if err := replay.Save(h.settings.ReplayPath, h.recorder.Recording()); err != nil {
				log.Printf("Failed to save replay: %v", err)
			}
		}
	}
	h.snap = h.game.Snapshot()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (h *terminalHost) text(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (h *terminalHost) centered(row int, s string, style tcell.Style) {
	h.text((h.width-len([]rune(s)))/2, row, s, style)
}

func (h *terminalHost) draw() {
	h.screen.Clear()
	s := h.snap
	v := h.viewport()
	dim := tcell.StyleDefault.Foreground(rgb(config.TextDimColor))
	light := tcell.StyleDefault.Foreground(rgb(config.TextLightColor))

	if s.Phase == component.MenuPhase {
		h.centered(h.height/2-2, "WAVE DEFENSE", light.Bold(true))
		h.centered(h.height/2, fmt.Sprintf("%s / %s", h.loadout.SkinID, h.loadout.WeaponID), dim)
		h.centered(h.height/2+2, "enter: start   wasd/hjkl: move   f: autofire   esc: quit", dim)
		h.screen.Show()
		return
	}

	baseStyle := tcell.StyleDefault.Background(rgb(config.BaseColor))
	v.disc(s.Base.X, s.Base.Y, s.Base.Radius, func(col, row int) {
		h.screen.SetContent(col, row, ' ', nil, baseStyle)
	})
	for _, pk := range s.Pickups {
		col, row := v.cell(pk.X, pk.Y)
		h.screen.SetContent(col, row, '*', nil, tcell.StyleDefault.Foreground(rgb(config.PickupColor)))
	}
	for _, e := range s.Enemies {
		icon, ok := h.icons[e.Kind]
		if !ok {
			icon = 'e'
		}
		col, row := v.cell(e.X, e.Y)
		h.screen.SetContent(col, row, icon, nil, tcell.StyleDefault.Foreground(rgb(e.Color)).Bold(true))
	}
	for _, p := range s.Projectiles {
		col, row := v.cell(p.X, p.Y)
		h.screen.SetContent(col, row, '·', nil, tcell.StyleDefault.Foreground(rgb(p.Color)))
	}
	col, row := v.cell(s.Player.X, s.Player.Y)
	h.screen.SetContent(col, row, '@', nil, tcell.StyleDefault.Foreground(rgb(config.PlayerColor)).Bold(true))

	hud := fmt.Sprintf(" SCORE %d  WAVE %d  KILLS %d  HP %.0f/%.0f  CORE %.0f/%.0f  FRAGMENTS %d/%d",
		s.Score(), s.Wave(), s.Run.Kills, s.Health(), s.Player.MaxHealth,
		s.BaseIntegrity(), s.Base.MaxIntegrity, s.Run.WaveProgress, s.Run.WaveQuota)
	h.text(0, 0, hud, light.Reverse(true))

	switch s.Phase {
	case component.UpgradingPhase:
		h.centered(h.height/2-2, "WAVE CLEARED", light.Bold(true))
		for i, kind := range component.UpgradeKinds {
			title, detail := system.UpgradeCard(kind, s.Run.Upgrades, &h.game.Tuning)
			h.centered(h.height/2+i, fmt.Sprintf("%d  %-10s %s", i+1, title, detail), light)
		}
	case component.GameOverPhase:
		summary, _ := h.game.Summary()
		h.centered(h.height/2-1, "GAME OVER", tcell.StyleDefault.Foreground(rgb(config.HealthColor)).Bold(true))
		h.centered(h.height/2+1, fmt.Sprintf("score %d  survived %ds  kills %d", summary.Score, summary.SurvivalSeconds, summary.Kills), light)
		h.centered(h.height/2+3, "enter: menu", dim)
	}
	h.screen.Show()
}

func (h *terminalHost) run() {
	ticker := time.NewTicker(frameMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- h.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !h.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			h.update(now, float64(now.Sub(last).Microseconds())/1000)
			last = now
			h.draw()
		}
	}
}

func (h *terminalHost) cleanup() {
	h.screen.Fini()
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	catalog := defs.DefaultCatalog()
	if settings.CatalogPath != "" {
		if catalog, err = defs.LoadCatalog(settings.CatalogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
	}
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	host, err := newTerminalHost(settings, catalog, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer host.cleanup()
	// Вывод лога поверх экрана ломает отрисовку
	log.SetOutput(io.Discard)

	if settings.Audio {
		// Non-fatal, the game runs without sound
		if cues, err := audio.NewCuePlayer(host.game.EventDispatcher); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Close()
			defer audio.Shutdown()
		}
	}

	host.run()
}
