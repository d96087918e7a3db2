package render

import "image"

// BarFill returns the filled width of a bar showing value out of max.
func BarFill(value, max, width float64) float64 {
	if max <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return width
	}
	return width * value / max
}

// CardRects lays out n equal cards centred horizontally on a screen of the given size.
func CardRects(n, screenW, screenH int) []image.Rectangle {
	const (
		cardW = 200
		cardH = 140
		gap   = 24
	)
	if n <= 0 {
		return nil
	}
	total := n*cardW + (n-1)*gap
	x := (screenW - total) / 2
	y := (screenH - cardH) / 2
	rects := make([]image.Rectangle, n)
	for i := range rects {
		rects[i] = image.Rect(x, y, x+cardW, y+cardH)
		x += cardW + gap
	}
	return rects
}

// HitCard returns the index of the card containing (x, y), or -1.
func HitCard(rects []image.Rectangle, x, y int) int {
	p := image.Pt(x, y)
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}
