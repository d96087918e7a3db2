package component

import (
	"fmt"
	"image/color"
)

// Loadout holds the numeric modifiers of the selected skin and weapon.
// It is fixed for the duration of a run.
type Loadout struct {
	SkinID   string `msgpack:"skin"`
	WeaponID string `msgpack:"weapon"`

	SpeedMod  float64 `msgpack:"speed_mod"`
	HealthMod float64 `msgpack:"health_mod"`
	DamageMod float64 `msgpack:"damage_mod"`

	FireRateMs       float64    `msgpack:"fire_rate_ms"`
	BaseDamage       float64    `msgpack:"base_damage"`
	ProjectileRadius float64    `msgpack:"projectile_radius"`
	ProjectileColor  color.RGBA `msgpack:"projectile_color"`
}

// UpgradeKind is one of the choices offered between waves.
type UpgradeKind int

const (
	UpgradePower UpgradeKind = iota
	UpgradeFireRate
	UpgradeAccuracy
)

// UpgradeKinds lists the choices in the order they are offered.
var UpgradeKinds = []UpgradeKind{UpgradePower, UpgradeFireRate, UpgradeAccuracy}

func (k UpgradeKind) String() string {
	switch k {
	case UpgradePower:
		return "power"
	case UpgradeFireRate:
		return "firerate"
	case UpgradeAccuracy:
		return "accuracy"
	}
	return fmt.Sprintf("upgrade(%d)", int(k))
}

// Upgrades are the accumulated upgrade levels of a run.
type Upgrades struct {
	Power      int     // starts at the power baseline
	FireRateMs float64 // current shot interval
	Accuracy   int
}

// Weapon is the firing state derived from the loadout and upgrades.
type Weapon struct {
	LastShotMs float64
	HasFired   bool
}
