package defs

// SkinDefinition holds the stat deltas of a player skin.
type SkinDefinition struct {
	ID          string  `json:"id" jsonschema:"title=Skin id,pattern=^[a-z0-9-]+$"`
	TokenID     int64   `json:"token_id" jsonschema:"description=Asset token id checked for ownership by the host"`
	Name        string  `json:"name"`
	Rarity      Rarity  `json:"rarity" jsonschema:"enum=Common,enum=Rare,enum=Epic"`
	Speed       float64 `json:"speed" jsonschema:"description=Added to the player speed per tick"`
	Health      float64 `json:"health" jsonschema:"description=Added to the starting health"`
	Damage      float64 `json:"damage" jsonschema:"description=Added to the weapon damage"`
	Description string  `json:"description,omitempty"`
	Visuals     Visuals `json:"visuals"`
}
