// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds all the color definitions needed to render the arena and HUD.
type ArenaColors struct {
	Background  color.RGBA
	Grid        color.RGBA
	Base        color.RGBA
	BaseStroke  color.RGBA
	Player      color.RGBA
	Pickup      color.RGBA
	AimLine     color.RGBA
	TextLight   color.RGBA
	TextDim     color.RGBA
	Health      color.RGBA
	Integrity   color.RGBA
	Progress    color.RGBA
	BarBack     color.RGBA
	Overlay     color.RGBA
	Button      color.RGBA
	ButtonHover color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FlashColor blends c toward white by t in [0, 1].
func FlashColor(c color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return c
	}
	if t > 1 {
		t = 1
	}
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*t) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// WithAlpha returns c with alpha scaled by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A) * a)
	return c
}
