// internal/state/gameover_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-wave-defense/internal/config"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

// GameOverState shows the run summary over the frozen arena.
type GameOverState struct {
	sm      *StateMachine
	session *Session
}

func NewGameOverState(sm *StateMachine, session *Session) *GameOverState {
	return &GameOverState{sm: sm, session: session}
}

func (g *GameOverState) Enter() {
	g.session.SaveReplay()
}

func (g *GameOverState) Update(deltaTime float64) {
	g.session.Effects.Update(deltaTime * 1000)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.ReturnToMenu()
		g.sm.SetState(NewMenuState(g.sm, g.session))
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	s := g.session
	r := s.Renderer
	r.Draw(screen, s.Last, s.Effects)
	r.DrawOverlay(screen)

	summary, _ := s.Game.Summary()
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	reason := "YOU FELL"
	if summary.BaseDestroyed {
		reason = "CORE DESTROYED"
	}
	r.DrawCenteredText(screen, "GAME OVER", cx, cy-60, config.HealthColor)
	r.DrawCenteredText(screen, reason, cx, cy-40, config.TextDimColor)
	r.DrawCenteredText(screen, fmt.Sprintf("SCORE %d", summary.Score), cx, cy, config.TextLightColor)
	r.DrawCenteredText(screen, fmt.Sprintf("survived %ds  kills %d  wave %d", summary.SurvivalSeconds, summary.Kills, summary.Wave), cx, cy+20, config.TextDimColor)
	r.DrawCenteredText(screen, "press enter", cx, cy+70, config.TextDimColor)
}

func (g *GameOverState) Exit() {}
