package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/system"
)

// ArenaRenderer draws snapshots of the simulation with ebiten.
type ArenaRenderer struct {
	colors    ArenaColors
	width     int
	height    int
	hudHeight int
	gridImage *ebiten.Image // Предрендеренная сетка арены
	FontFace  font.Face
	gridSpace int
}

func NewArenaRenderer(width, height, gridSpacing, hudHeight int, colors ArenaColors) *ArenaRenderer {
	r := &ArenaRenderer{
		colors:    colors,
		width:     width,
		height:    height,
		hudHeight: hudHeight,
		FontFace:  basicfont.Face7x13,
		gridSpace: gridSpacing,
	}
	r.renderGridImage()
	return r
}

func (r *ArenaRenderer) renderGridImage() {
	r.gridImage = ebiten.NewImage(r.width, r.height)
	r.gridImage.Fill(r.colors.Background)
	for x := 0; x <= r.width; x += r.gridSpace {
		vector.StrokeLine(r.gridImage, float32(x), 0, float32(x), float32(r.height), 1, r.colors.Grid, false)
	}
	for y := 0; y <= r.height; y += r.gridSpace {
		vector.StrokeLine(r.gridImage, 0, float32(y), float32(r.width), float32(y), 1, r.colors.Grid, false)
	}
}

// Draw renders the arena: grid, base, pickups, enemies, projectiles, player and the
// aim line. fx may be nil.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, fx *system.VisualEffectSystem) {
	screen.DrawImage(r.gridImage, nil)

	base := snap.Base
	baseFill := r.colors.Base
	if fx != nil && fx.BaseFlash.Active() {
		baseFill = FlashColor(baseFill, 1-fx.BaseFlash.Timer/fx.BaseFlash.Duration)
	}
	vector.DrawFilledCircle(screen, float32(base.X), float32(base.Y), float32(base.Radius), baseFill, true)
	vector.StrokeCircle(screen, float32(base.X), float32(base.Y), float32(base.Radius), r.colors.StrokeWidth, r.colors.BaseStroke, true)

	for _, pk := range snap.Pickups {
		vector.DrawFilledCircle(screen, float32(pk.X), float32(pk.Y), float32(pk.Radius), r.colors.Pickup, true)
	}

	for _, e := range snap.Enemies {
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), e.Color, true)
		if e.Health < e.MaxHealth {
			w := float64(e.Radius * 2)
			x, y := float32(e.X-e.Radius), float32(e.Y-e.Radius-6)
			vector.DrawFilledRect(screen, x, y, float32(w), 3, r.colors.BarBack, false)
			vector.DrawFilledRect(screen, x, y, float32(BarFill(e.Health, e.MaxHealth, w)), 3, r.colors.Health, false)
		}
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}

	if fx != nil {
		for _, b := range fx.Bursts {
			progress := b.Progress()
			radius := float32(b.MaxRadius * progress)
			vector.StrokeCircle(screen, float32(b.X), float32(b.Y), radius, r.colors.StrokeWidth, WithAlpha(b.Color, 1-progress), true)
		}
	}

	player := snap.Player
	vector.StrokeLine(screen, float32(player.X), float32(player.Y), float32(snap.Aim.X), float32(snap.Aim.Y), 1, r.colors.AimLine, true)
	playerFill := r.colors.Player
	if fx != nil && fx.PlayerFlash.Active() {
		playerFill = FlashColor(playerFill, 1-fx.PlayerFlash.Timer/fx.PlayerFlash.Duration)
	}
	vector.DrawFilledCircle(screen, float32(player.X), float32(player.Y), float32(player.Radius), playerFill, true)
}

// DrawHUD renders score, wave, kills and the three bars along the top edge.
func (r *ArenaRenderer) DrawHUD(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.hudHeight), r.colors.Overlay, false)

	r.DrawText(screen, fmt.Sprintf("SCORE %d", snap.Score()), 8, 18, r.colors.TextLight)
	r.DrawText(screen, fmt.Sprintf("WAVE %d", snap.Wave()), 120, 18, r.colors.TextLight)
	r.DrawText(screen, fmt.Sprintf("KILLS %d", snap.Run.Kills), 200, 18, r.colors.TextDim)

	const barW, barH = 120, 8
	bars := []struct {
		label      string
		value, max float64
		c          color.RGBA
	}{
		{"HP", snap.Health(), snap.Player.MaxHealth, r.colors.Health},
		{"BASE", snap.BaseIntegrity(), snap.Base.MaxIntegrity, r.colors.Integrity},
		{"WAVE", float64(snap.Run.WaveProgress), float64(snap.Run.WaveQuota), r.colors.Progress},
	}
	x := float32(r.width - len(bars)*(barW+50))
	for _, b := range bars {
		r.DrawText(screen, b.label, int(x), 18, r.colors.TextDim)
		bx := x + 38
		vector.DrawFilledRect(screen, bx, 10, barW, barH, r.colors.BarBack, false)
		vector.DrawFilledRect(screen, bx, 10, float32(BarFill(b.value, b.max, barW)), barH, b.c, false)
		x += barW + 50
	}
}

// DrawOverlay darkens the whole screen, used behind menus.
func (r *ArenaRenderer) DrawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), r.colors.Overlay, false)
}

// DrawText draws s with its baseline at (x, y).
func (r *ArenaRenderer) DrawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(screen, s, r.FontFace, x, y, c)
}

// DrawCenteredText draws s horizontally centred on cx.
func (r *ArenaRenderer) DrawCenteredText(screen *ebiten.Image, s string, cx, y int, c color.Color) {
	bounds := text.BoundString(r.FontFace, s)
	text.Draw(screen, s, r.FontFace, cx-bounds.Dx()/2, y, c)
}

// DrawButton draws a filled rectangle with a centred label.
func (r *ArenaRenderer) DrawButton(screen *ebiten.Image, x, y, w, h int, label string, hovered bool) {
	fill := r.colors.Button
	if hovered {
		fill = r.colors.ButtonHover
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), r.colors.StrokeWidth, DarkenColor(fill), true)
	r.DrawCenteredText(screen, label, x+w/2, y+h/2+4, r.colors.TextLight)
}
