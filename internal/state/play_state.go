// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wave-defense/internal/component"
)

// PlayState — активная волна
type PlayState struct {
	sm      *StateMachine
	session *Session
}

func NewPlayState(sm *StateMachine, session *Session) *PlayState {
	return &PlayState{sm: sm, session: session}
}

func (p *PlayState) Enter() {}

// readInput samples keyboard and mouse into one engine input.
func readInput() component.Input {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	x, y := ebiten.CursorPosition()
	return component.Input{
		Up:     pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:   pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:   pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:  pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		AimX:   float64(x),
		AimY:   float64(y),
		Firing: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.session.ReturnToMenu()
		p.sm.SetState(NewMenuState(p.sm, p.session))
		return
	}

	snap := p.session.Advance(readInput(), deltaTime*1000)
	switch snap.Phase {
	case component.UpgradingPhase:
		p.sm.SetState(NewUpgradeState(p.sm, p.session))
	case component.GameOverPhase:
		p.sm.SetState(NewGameOverState(p.sm, p.session))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	r := p.session.Renderer
	r.Draw(screen, p.session.Last, p.session.Effects)
	r.DrawHUD(screen, p.session.Last)
}

func (p *PlayState) Exit() {}
