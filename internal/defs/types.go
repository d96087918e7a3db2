// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Rarity is the marketplace tier of a skin or weapon.
type Rarity string

const (
	RarityCommon Rarity = "Common"
	RarityRare   Rarity = "Rare"
	RarityEpic   Rarity = "Epic"
)

// Visuals contains parameters for rendering a catalog entry.
type Visuals struct {
	Color string `json:"color" jsonschema:"title=Colour,pattern=^#[0-9a-fA-F]{6}$,description=Hex colour used for the entity or projectile"`
	Icon  string `json:"icon,omitempty" jsonschema:"description=Glyph shown in menus"`
}

// RGBA parses the visual colour, falling back to white on malformed input.
func (v Visuals) RGBA() color.RGBA {
	c, err := ParseColor(v.Color)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}

// ParseColor parses a "#rrggbb" string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
}
