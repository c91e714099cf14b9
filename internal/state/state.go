// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран приложения
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит стек экранов. Обновляется только верхний; оверлей
// (подсказка) кладётся поверх галереи и сам дорисовывает то, что под ним.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает все экраны стека и оставляет один next. nil допустим.
func (sm *StateMachine) SetState(next State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	if next != nil {
		sm.Push(next)
	}
}

// Push открывает next поверх текущего. Нижний экран не получает Exit:
// он только перестаёт обновляться.
func (sm *StateMachine) Push(next State) {
	sm.stack = append(sm.stack, next)
	next.Enter()
}

// Pop закрывает верхний экран и возвращает управление нижнему
func (sm *StateMachine) Pop() {
	n := len(sm.stack)
	if n == 0 {
		return
	}
	top := sm.stack[n-1]
	sm.stack = sm.stack[:n-1]
	top.Exit()
}

// Current — верхний экран или nil
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Below — экран под верхним, для оверлеев
func (sm *StateMachine) Below() State {
	if len(sm.stack) < 2 {
		return nil
	}
	return sm.stack[len(sm.stack)-2]
}

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}
