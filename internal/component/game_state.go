package component

// Phase — фаза игрового цикла
type Phase int

const (
	MenuPhase Phase = iota
	PlayingPhase
	UpgradingPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case MenuPhase:
		return "menu"
	case PlayingPhase:
		return "playing"
	case UpgradingPhase:
		return "upgrading"
	case GameOverPhase:
		return "gameover"
	}
	return "unknown"
}
