// internal/event/types.go
package event

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
)

const (
	RunStarted      EventType = "RunStarted"      // Новый забег
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился у края арены
	ShotFired       EventType = "ShotFired"       // Игрок выстрелил
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен снарядом
	PickupCollected EventType = "PickupCollected" // Игрок подобрал точку
	BaseDamaged     EventType = "BaseDamaged"     // Враг дошёл до базы
	PlayerDamaged   EventType = "PlayerDamaged"   // Контактный урон игроку
	WaveCleared     EventType = "WaveCleared"     // Квота волны выполнена
	UpgradeChosen   EventType = "UpgradeChosen"   // Выбрано улучшение
	GameOver        EventType = "GameOver"        // Забег окончен
)

// EnemyData accompanies EnemySpawned and EnemyKilled.
type EnemyData struct {
	ID   types.EntityID
	Kind component.EnemyKind
	X, Y float64
}

// DamageData accompanies BaseDamaged and PlayerDamaged.
type DamageData struct {
	Amount    float64
	Remaining float64
}

// WaveData accompanies WaveCleared and UpgradeChosen.
type WaveData struct {
	Wave    int
	Upgrade component.UpgradeKind
}

// GameOverData accompanies GameOver.
type GameOverData struct {
	Score           int
	SurvivalSeconds int
	Kills           int
	BaseDestroyed   bool
}

// ShotData accompanies ShotFired.
type ShotData struct {
	ID    types.EntityID
	Angle float64 // final direction after spread, radians
}

// PickupData accompanies PickupCollected.
type PickupData struct {
	ID       types.EntityID
	Progress int
	Quota    int
}
