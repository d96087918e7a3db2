// internal/state/upgrade_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/system"
	"go-wave-defense/pkg/render"
)

var upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// UpgradeState shows the three upgrade cards between waves.
type UpgradeState struct {
	sm      *StateMachine
	session *Session
	cards   []image.Rectangle
	hovered int
}

func NewUpgradeState(sm *StateMachine, session *Session) *UpgradeState {
	return &UpgradeState{
		sm:      sm,
		session: session,
		cards:   render.CardRects(len(component.UpgradeKinds), config.ScreenWidth, config.ScreenHeight),
		hovered: -1,
	}
}

func (u *UpgradeState) Enter() {}

func (u *UpgradeState) Update(deltaTime float64) {
	u.session.Effects.Update(deltaTime * 1000)

	x, y := ebiten.CursorPosition()
	u.hovered = render.HitCard(u.cards, x, y)

	choice := -1
	if u.hovered >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		choice = u.hovered
	}
	for i, k := range upgradeKeys {
		if inpututil.IsKeyJustPressed(k) {
			choice = i
		}
	}
	if choice < 0 || choice >= len(component.UpgradeKinds) {
		return
	}
	if u.session.ChooseUpgrade(component.UpgradeKinds[choice]) {
		u.sm.SetState(NewPlayState(u.sm, u.session))
	}
}

func (u *UpgradeState) Draw(screen *ebiten.Image) {
	s := u.session
	r := s.Renderer
	r.Draw(screen, s.Last, s.Effects)
	r.DrawHUD(screen, s.Last)
	r.DrawOverlay(screen)

	cx := config.ScreenWidth / 2
	r.DrawCenteredText(screen, "WAVE CLEARED", cx, u.cards[0].Min.Y-50, config.TextLightColor)
	r.DrawCenteredText(screen, "choose an upgrade", cx, u.cards[0].Min.Y-30, config.TextDimColor)

	for i, rect := range u.cards {
		fill := config.ButtonColor
		if i == u.hovered {
			fill = config.ButtonHover
		}
		x, y := float32(rect.Min.X), float32(rect.Min.Y)
		w, h := float32(rect.Dx()), float32(rect.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, render.DarkenColor(fill), true)
		vector.StrokeRect(screen, x, y, w, h, float32(config.StrokeWidth), fill, true)

		title, detail := system.UpgradeCard(component.UpgradeKinds[i], s.Last.Run.Upgrades, &s.Game.Tuning)
		mid := rect.Min.X + rect.Dx()/2
		r.DrawCenteredText(screen, string(rune('1'+i)), mid, rect.Min.Y+24, config.TextDimColor)
		r.DrawCenteredText(screen, title, mid, rect.Min.Y+64, config.TextLightColor)
		r.DrawCenteredText(screen, detail, mid, rect.Min.Y+92, config.TextDimColor)
	}
}

func (u *UpgradeState) Exit() {}
