package main

import (
	"math"

	"go-wave-defense/internal/component"
)

// viewport maps the arena onto a grid of terminal cells below a one-line HUD.
type viewport struct {
	cols, rows     int
	arenaW, arenaH float64
}

func newViewport(screenW, screenH int, arenaW, arenaH float64) viewport {
	rows := screenH - 1
	if rows < 1 {
		rows = 1
	}
	if screenW < 1 {
		screenW = 1
	}
	return viewport{cols: screenW, rows: rows, arenaW: arenaW, arenaH: arenaH}
}

// cell returns the screen cell of an arena point, clamped to the grid.
func (v viewport) cell(x, y float64) (col, row int) {
	col = int(x / v.arenaW * float64(v.cols))
	row = int(y / v.arenaH * float64(v.rows))
	col = max(0, min(v.cols-1, col))
	row = max(0, min(v.rows-1, row))
	return col, row + 1
}

// world returns the arena point at the centre of a screen cell.
func (v viewport) world(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) / float64(v.cols) * v.arenaW
	y = (float64(row-1) + 0.5) / float64(v.rows) * v.arenaH
	return x, y
}

// disc calls fn for every cell whose centre lies inside the circle.
func (v viewport) disc(cx, cy, r float64, fn func(col, row int)) {
	c0, r0 := v.cell(cx-r, cy-r)
	c1, r1 := v.cell(cx+r, cy+r)
	hit := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := v.world(col, row)
			if math.Hypot(x-cx, y-cy) <= r {
				fn(col, row)
				hit = true
			}
		}
	}
	if !hit {
		fn(v.cell(cx, cy))
	}
}

// nearestEnemy returns the enemy closest to (x, y).
func nearestEnemy(enemies []component.Enemy, x, y float64) (component.Enemy, bool) {
	best, found := component.Enemy{}, false
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if d := math.Hypot(e.X-x, e.Y-y); d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
