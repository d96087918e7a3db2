// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go-wave-defense/internal/component"
)

//go:embed catalog.json
var defaultCatalogJSON []byte

// DefaultCatalog returns the catalog shipped with the game.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalogJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. An empty path yields the embedded catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := ParseCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates catalog JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ids are unique, colours parse and every enemy kind is defined.
func (c *Catalog) Validate() error {
	if len(c.Skins) == 0 {
		return fmt.Errorf("catalog has no skins")
	}
	if len(c.Weapons) == 0 {
		return fmt.Errorf("catalog has no weapons")
	}

	seen := make(map[string]bool)
	for _, s := range c.Skins {
		if s.ID == "" || seen[s.ID] {
			return fmt.Errorf("duplicate or empty skin id %q", s.ID)
		}
		seen[s.ID] = true
		if _, err := ParseColor(s.Visuals.Color); err != nil {
			return fmt.Errorf("skin %s: %w", s.ID, err)
		}
	}
	for _, w := range c.Weapons {
		if w.ID == "" || seen[w.ID] {
			return fmt.Errorf("duplicate or empty weapon id %q", w.ID)
		}
		seen[w.ID] = true
		if _, err := ParseColor(w.Visuals.Color); err != nil {
			return fmt.Errorf("weapon %s: %w", w.ID, err)
		}
	}
	for _, kind := range component.EnemyKinds {
		e, ok := c.Enemy(kind)
		if !ok {
			return fmt.Errorf("enemy kind %s is not defined", kind)
		}
		if e.Radius <= 0 || e.HealthMultiplier <= 0 || e.SpeedMultiplier <= 0 {
			return fmt.Errorf("enemy kind %s has non-positive stats", kind)
		}
	}
	return nil
}
