package defs

// WeaponDefinition holds the firing profile of a weapon.
type WeaponDefinition struct {
	ID               string  `json:"id" jsonschema:"title=Weapon id,pattern=^[a-z0-9-]+$"`
	TokenID          int64   `json:"token_id" jsonschema:"description=Asset token id checked for ownership by the host"`
	Name             string  `json:"name"`
	Rarity           Rarity  `json:"rarity" jsonschema:"enum=Common,enum=Rare,enum=Epic"`
	FireRateMs       float64 `json:"fire_rate_ms" jsonschema:"description=Minimum milliseconds between shots"`
	Damage           float64 `json:"damage"`
	ProjectileRadius float64 `json:"projectile_radius"`
	Description      string  `json:"description,omitempty"`
	Visuals          Visuals `json:"visuals"`
}
