package defs

import (
	"errors"
	"fmt"
	"image/color"

	"go-wave-defense/internal/component"
)

var (
	ErrUnknownSkin   = errors.New("unknown skin")
	ErrUnknownWeapon = errors.New("unknown weapon")
)

// Catalog is the library of skins, weapons and enemy kinds. The first skin and the
// first weapon are the defaults every player owns.
type Catalog struct {
	Skins   []SkinDefinition   `json:"skins" jsonschema:"required,minItems=1"`
	Weapons []WeaponDefinition `json:"weapons" jsonschema:"required,minItems=1"`
	Enemies []EnemyDefinition  `json:"enemies" jsonschema:"required,minItems=3"`
}

// DefaultSkin returns the skin every player owns.
func (c *Catalog) DefaultSkin() SkinDefinition {
	return c.Skins[0]
}

// DefaultWeapon returns the weapon every player owns.
func (c *Catalog) DefaultWeapon() WeaponDefinition {
	return c.Weapons[0]
}

// Skin looks up a skin by id.
func (c *Catalog) Skin(id string) (SkinDefinition, bool) {
	for _, s := range c.Skins {
		if s.ID == id {
			return s, true
		}
	}
	return SkinDefinition{}, false
}

// Weapon looks up a weapon by id.
func (c *Catalog) Weapon(id string) (WeaponDefinition, bool) {
	for _, w := range c.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return WeaponDefinition{}, false
}

// Enemy returns the profile of an enemy kind.
func (c *Catalog) Enemy(kind component.EnemyKind) (EnemyDefinition, bool) {
	for _, e := range c.Enemies {
		if e.Kind == kind {
			return e, true
		}
	}
	return EnemyDefinition{}, false
}

// EnemyColors maps every enemy kind to its render colour.
func (c *Catalog) EnemyColors() map[component.EnemyKind]color.RGBA {
	out := make(map[component.EnemyKind]color.RGBA, len(c.Enemies))
	for _, e := range c.Enemies {
		out[e.Kind] = e.Visuals.RGBA()
	}
	return out
}

// Loadout combines a skin and a weapon into the modifiers consumed by the engine.
func (c *Catalog) Loadout(skinID, weaponID string) (component.Loadout, error) {
	skin, ok := c.Skin(skinID)
	if !ok {
		return component.Loadout{}, fmt.Errorf("%w: %q", ErrUnknownSkin, skinID)
	}
	weapon, ok := c.Weapon(weaponID)
	if !ok {
		return component.Loadout{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, weaponID)
	}
	return component.Loadout{
		SkinID:           skin.ID,
		WeaponID:         weapon.ID,
		SpeedMod:         skin.Speed,
		HealthMod:        skin.Health,
		DamageMod:        skin.Damage,
		FireRateMs:       weapon.FireRateMs,
		BaseDamage:       weapon.Damage,
		ProjectileRadius: weapon.ProjectileRadius,
		ProjectileColor:  weapon.Visuals.RGBA(),
	}, nil
}

// DefaultLoadout is the loadout of a player who owns nothing.
func (c *Catalog) DefaultLoadout() component.Loadout {
	l, _ := c.Loadout(c.DefaultSkin().ID, c.DefaultWeapon().ID)
	return l
}

// Owned returns a catalog restricted to the given asset ids. Defaults are always kept
// and enemy profiles are shared.
func (c *Catalog) Owned(ids []string) *Catalog {
	owned := make(map[string]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}

	out := &Catalog{Enemies: c.Enemies}
	for i, s := range c.Skins {
		if i == 0 || owned[s.ID] {
			out.Skins = append(out.Skins, s)
		}
	}
	for i, w := range c.Weapons {
		if i == 0 || owned[w.ID] {
			out.Weapons = append(out.Weapons, w)
		}
	}
	return out
}
