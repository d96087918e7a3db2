// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-wave-defense/internal/config"
)

// numerals — пары значение/символ от больших к меньшим
var numerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range numerals {
		for ; num >= n.value; num -= n.value {
			b.WriteString(n.symbol)
		}
	}
	return b.String()
}

// WaveIndicator shows the wave number in roman numerals with the quota progress
// underlined beneath it. The numeral turns warmer as new enemy kinds join the waves.
type WaveIndicator struct {
	X, Y     float32 // центр верхнего края
	FontSize float32
	Calm     rl.Color
	Fast     rl.Color // с волны, где появляются быстрые враги
	Tank     rl.Color // с волны, где появляются танки
	Progress rl.Color
}

func NewWaveIndicator(x, y, fontSize float32) *WaveIndicator {
	return &WaveIndicator{
		X:        x,
		Y:        y,
		FontSize: fontSize,
		Calm:     ToRL(config.TextLightColor),
		Fast:     rl.Orange,
		Tank:     ToRL(config.HealthColor),
		Progress: ToRL(config.ProgressColor),
	}
}

// colorFor picks the numeral colour for a wave given the tuning thresholds.
func (i *WaveIndicator) colorFor(wave int, t *config.Tuning) rl.Color {
	switch {
	case wave >= t.TankMinWave:
		return i.Tank
	case wave >= t.FastMinWave:
		return i.Fast
	}
	return i.Calm
}

// Draw рисует номер волны и полосу сбора фрагментов под ним.
func (i *WaveIndicator) Draw(wave int, fraction float64, t *config.Tuning, font rl.Font) {
	if wave <= 0 {
		return
	}
	text := toRoman(wave)
	size := rl.MeasureTextEx(font, text, i.FontSize, 1)
	pos := rl.NewVector2(i.X-size.X/2, i.Y)

	// Тень на один пиксель
	rl.DrawTextEx(font, text, rl.NewVector2(pos.X+1, pos.Y+1), i.FontSize, 1, rl.Black)
	rl.DrawTextEx(font, text, pos, i.FontSize, 1, i.colorFor(wave, t))

	under := rl.NewRectangle(pos.X, pos.Y+size.Y+2, size.X, 2)
	rl.DrawRectangleRec(under, rl.DarkGray)
	under.Width = float32(barFill(fraction, 1, float64(size.X)))
	rl.DrawRectangleRec(under, i.Progress)
}
