// internal/system/utils.go
package system

// ApplyDamage уменьшает значение здоровья и не даёт ему опуститься ниже нуля.
// Возвращает оставшееся здоровье.
func ApplyDamage(health *float64, damage float64) float64 {
	if damage < 0 {
		damage = 0
	}
	*health -= damage
	if *health < 0 {
		*health = 0
	}
	return *health
}
