// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wave-defense/internal/config"
)

const (
	startButtonW = 200
	startButtonH = 44
)

// MenuState — выбор скина и оружия перед забегом
type MenuState struct {
	sm      *StateMachine
	session *Session
	hovered bool
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {}

func (m *MenuState) startButton() (x, y int) {
	return (config.ScreenWidth - startButtonW) / 2, config.ScreenHeight - 140
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.SetState(nil)
		return
	}
	s := m.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		s.CycleSkin(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.CycleSkin(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		s.CycleWeapon(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.CycleWeapon(1)
	}

	bx, by := m.startButton()
	cx, cy := ebiten.CursorPosition()
	m.hovered = cx >= bx && cx < bx+startButtonW && cy >= by && cy < by+startButtonH

	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if m.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		start = true
	}
	if start {
		s.StartRun()
		m.sm.SetState(NewPlayState(m.sm, s))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	r := m.session.Renderer
	screen.Fill(config.BackgroundColor)

	cx := config.ScreenWidth / 2
	r.DrawCenteredText(screen, "WAVE DEFENSE", cx, 90, config.TextLightColor)
	r.DrawCenteredText(screen, "defend the core, collect the fragments", cx, 112, config.TextDimColor)

	skin := m.session.Skin()
	r.DrawCenteredText(screen, fmt.Sprintf("< SKIN: %s (%s) >", skin.Name, skin.Rarity), cx, 200, skin.Visuals.RGBA())
	r.DrawCenteredText(screen, fmt.Sprintf("speed %+.1f  health %+.0f  damage %+.0f", skin.Speed, skin.Health, skin.Damage), cx, 220, config.TextDimColor)

	weapon := m.session.Weapon()
	r.DrawCenteredText(screen, fmt.Sprintf("^ WEAPON: %s (%s) v", weapon.Name, weapon.Rarity), cx, 280, weapon.Visuals.RGBA())
	r.DrawCenteredText(screen, fmt.Sprintf("%.0fms  damage %.0f  size %.0f", weapon.FireRateMs, weapon.Damage, weapon.ProjectileRadius), cx, 300, config.TextDimColor)

	bx, by := m.startButton()
	r.DrawButton(screen, bx, by, startButtonW, startButtonH, "START", m.hovered)
	r.DrawCenteredText(screen, "WASD move, mouse aim, hold click to fire, esc quits", cx, config.ScreenHeight-40, config.TextDimColor)
}

func (m *MenuState) Exit() {}
