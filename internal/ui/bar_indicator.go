// internal/ui/bar_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BarIndicator is a labelled horizontal fill bar.
type BarIndicator struct {
	Rect  rl.Rectangle
	Label string
	Fill  rl.Color
	Back  rl.Color
}

func NewBarIndicator(x, y, w, h float32, label string, fill, back color.RGBA) *BarIndicator {
	return &BarIndicator{
		Rect:  rl.NewRectangle(x, y, w, h),
		Label: label,
		Fill:  ToRL(fill),
		Back:  ToRL(back),
	}
}

// Draw рисует полосу и подпись слева от неё.
func (b *BarIndicator) Draw(value, max float64) {
	rl.DrawRectangleRec(b.Rect, b.Back)
	filled := b.Rect
	filled.Width = float32(barFill(value, max, float64(b.Rect.Width)))
	rl.DrawRectangleRec(filled, b.Fill)
	rl.DrawRectangleLinesEx(b.Rect, 1, rl.DarkGray)

	labelWidth := rl.MeasureText(b.Label, 10)
	rl.DrawText(b.Label, int32(b.Rect.X)-labelWidth-6, int32(b.Rect.Y), 10, rl.LightGray)
}

func barFill(value, max, width float64) float64 {
	if max <= 0 || value <= 0 {
		return 0
	}
	return width * math.Min(1, value/max)
}

const (
	PipRadius  = 6.0
	PipSpacing = 4.0
)

// PipIndicator отображает целостность ядра в виде ряда кружков, по одному на удар.
type PipIndicator struct {
	Position rl.Vector2
	Full     rl.Color
}

func NewPipIndicator(x, y float32, full color.RGBA) *PipIndicator {
	return &PipIndicator{Position: rl.NewVector2(x, y), Full: ToRL(full)}
}

// Pips returns how many of total pips are lit for value out of max, rounding up so
// any remaining value shows at least one pip.
func Pips(value, max float64, total int) int {
	if max <= 0 || value <= 0 || total <= 0 {
		return 0
	}
	lit := int(math.Ceil(value / max * float64(total)))
	if lit > total {
		return total
	}
	return lit
}

// Draw рисует total кружков, из которых горят Pips(value, max, total).
func (i *PipIndicator) Draw(value, max float64, total int) {
	lit := Pips(value, max, total)
	for j := 0; j < total; j++ {
		x := i.Position.X + float32(j)*(PipRadius*2+PipSpacing) + PipRadius
		y := i.Position.Y + PipRadius
		c := rl.Black
		if j < lit {
			c = i.Full
		}
		rl.DrawCircleV(rl.NewVector2(x, y), PipRadius, c)
		rl.DrawCircleLines(int32(x), int32(y), PipRadius, rl.White)
	}
	text := fmt.Sprintf("%.0f/%.0f", value, max)
	rl.DrawText(text, int32(i.Position.X), int32(i.Position.Y+PipRadius*2+4), 10, rl.White)
}
