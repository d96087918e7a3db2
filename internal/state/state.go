// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран хоста: меню, забег, выбор улучшения, итог
type State interface {
	Enter()
	Update(deltaTime float64) // deltaTime в секундах
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны. Пустое состояние означает выход из программы.
// Переход, запрошенный из Update, выполняется после возврата из него: экран
// не получает Exit, пока ещё работает его собственный Update.
type StateMachine struct {
	current  State
	next     State
	pending  bool
	updating bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState requests a switch to newState; nil quits. Outside Update the switch is
// immediate, inside it waits until Update returns and the last request wins.
func (sm *StateMachine) SetState(newState State) {
	if sm.updating {
		sm.next, sm.pending = newState, true
		return
	}
	sm.switchTo(newState)
}

func (sm *StateMachine) switchTo(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active screen, nil once the host should quit.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.updating = true
	sm.current.Update(deltaTime)
	sm.updating = false
	if sm.pending {
		next := sm.next
		sm.next, sm.pending = nil, false
		sm.switchTo(next)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
