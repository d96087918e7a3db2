package system

import (
	"fmt"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
)

// defaultProjectileRadius replaces a missing or negative weapon radius.
const defaultProjectileRadius = 5

// SanitizeLoadout clamps malformed loadout values to safe minimums instead of
// rejecting them.
func SanitizeLoadout(l component.Loadout, t *config.Tuning) component.Loadout {
	l.SpeedMod = finite(l.SpeedMod)
	l.HealthMod = finite(l.HealthMod)
	l.DamageMod = finite(l.DamageMod)
	l.BaseDamage = finite(l.BaseDamage)

	if f := finite(l.FireRateMs); f < t.MinLoadoutFireRateMs {
		l.FireRateMs = t.MinLoadoutFireRateMs
	}
	if r := finite(l.ProjectileRadius); r <= 0 {
		l.ProjectileRadius = defaultProjectileRadius
	}
	if l.ProjectileColor.A == 0 {
		l.ProjectileColor.A = 255
	}
	return l
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// PlayerSpeed is the per-tick movement of the player.
func PlayerSpeed(l component.Loadout, t *config.Tuning) float64 {
	return math.Max(0, t.PlayerSpeed+l.SpeedMod)
}

// PlayerMaxHealth is the starting health of the player.
func PlayerMaxHealth(l component.Loadout, t *config.Tuning) float64 {
	return math.Max(1, t.PlayerHealth+l.HealthMod)
}

// InitialUpgrades returns the upgrade levels at the start of a run.
func InitialUpgrades(l component.Loadout, t *config.Tuning) component.Upgrades {
	return component.Upgrades{
		Power:      t.PowerBaseline,
		FireRateMs: l.FireRateMs,
		Accuracy:   0,
	}
}

// ProjectileDamage combines weapon damage, the skin bonus and the power level.
func ProjectileDamage(l component.Loadout, u component.Upgrades, t *config.Tuning) float64 {
	multiplier := 1 + float64(u.Power-t.PowerBaseline)*t.PowerScale
	damage := (l.BaseDamage + l.DamageMod) * multiplier
	if damage <= 0 {
		return t.FallbackDamage
	}
	return damage
}

// Spread is the full width in radians of the random cone a shot can leave in.
func Spread(u component.Upgrades, t *config.Tuning) float64 {
	return math.Max(0, t.BaseSpread-float64(u.Accuracy)*t.SpreadPerAccuracy)
}

// ApplyUpgrade returns u with one upgrade of the given kind applied.
func ApplyUpgrade(u component.Upgrades, kind component.UpgradeKind, t *config.Tuning) component.Upgrades {
	switch kind {
	case component.UpgradePower:
		u.Power += t.PowerStep
	case component.UpgradeFireRate:
		next := u.FireRateMs - t.FireRateStepMs
		if next < t.MinFireRateMs {
			// A loadout already faster than the floor is never slowed down.
			next = math.Min(u.FireRateMs, t.MinFireRateMs)
		}
		u.FireRateMs = next
	case component.UpgradeAccuracy:
		u.Accuracy += t.AccuracyStep
	}
	return u
}

// UpgradeCard is the title and effect line a host shows for an upgrade choice,
// given the levels the run currently has.
func UpgradeCard(kind component.UpgradeKind, u component.Upgrades, t *config.Tuning) (title, detail string) {
	next := ApplyUpgrade(u, kind, t)
	switch kind {
	case component.UpgradePower:
		return "POWER", fmt.Sprintf("power %d -> %d", u.Power, next.Power)
	case component.UpgradeFireRate:
		return "FIRE RATE", fmt.Sprintf("%.0fms -> %.0fms", u.FireRateMs, next.FireRateMs)
	case component.UpgradeAccuracy:
		return "ACCURACY", fmt.Sprintf("spread %.2f -> %.2f", Spread(u, t), Spread(next, t))
	}
	return kind.String(), ""
}
