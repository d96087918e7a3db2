package render

import (
	"image/color"
	"testing"
)

func TestBarFill(t *testing.T) {
	cases := []struct{ value, max, want float64 }{
		{50, 100, 100},
		{0, 100, 0},
		{-5, 100, 0},
		{150, 100, 200},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := BarFill(c.value, c.max, 200); got != c.want {
			t.Errorf("BarFill(%v, %v): got=%v want=%v", c.value, c.max, got, c.want)
		}
	}
}

func TestCardRectsAreCentredAndHittable(t *testing.T) {
	rects := CardRects(3, 800, 600)
	if len(rects) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(rects))
	}
	left, right := rects[0].Min.X, 800-rects[2].Max.X
	if left != right {
		t.Fatalf("cards not centred: left margin %d, right margin %d", left, right)
	}
	for i, r := range rects {
		c := r.Min.Add(r.Size().Div(2))
		if got := HitCard(rects, c.X, c.Y); got != i {
			t.Fatalf("centre of card %d hit card %d", i, got)
		}
	}
	if HitCard(rects, 0, 0) != -1 {
		t.Fatalf("corner must not hit a card")
	}
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{100, 0, 200, 255}
	if got := FlashColor(c, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("full flash: got=%v", got)
	}
	if got := FlashColor(c, 0); got != c {
		t.Fatalf("no flash: got=%v", got)
	}
	if got := WithAlpha(c, 0.5); got.A != 127 {
		t.Fatalf("alpha: got=%d want=127", got.A)
	}
	if got := DarkenColor(c); got != (color.RGBA{50, 0, 100, 255}) {
		t.Fatalf("darken: got=%v", got)
	}
}
