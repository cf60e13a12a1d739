// internal/system/state.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/event"
	"log"
)

// transitions — разрешённые переходы между фазами сессии.
// Из GameOver можно выйти только через рестарт (GameOver -> Idle).
var transitions = map[component.Phase][]component.Phase{
	component.Idle:     {component.Running},
	component.Running:  {component.Paused, component.GameOver},
	component.Paused:   {component.Running},
	component.GameOver: {component.Idle},
}

var transitionEvents = map[[2]component.Phase]event.EventType{
	{component.Idle, component.Running}:     event.SessionStarted,
	{component.Running, component.Paused}:   event.SessionPaused,
	{component.Paused, component.Running}:   event.SessionResumed,
	{component.Running, component.GameOver}: event.GameOver,
	{component.GameOver, component.Idle}:    event.SessionRestarted,
}

// StateSystem хранит фазу сессии и следит за допустимостью переходов.
type StateSystem struct {
	state           *component.GameState
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(state *component.GameState, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{state: state, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Current() component.Phase {
	return s.state.Phase
}

// CanTransition reports whether moving from the current phase to next is legal.
func (s *StateSystem) CanTransition(next component.Phase) bool {
	for _, p := range transitions[s.state.Phase] {
		if p == next {
			return true
		}
	}
	return false
}

// Transition switches to next if the move is legal and dispatches the
// matching session event. Illegal moves are ignored.
func (s *StateSystem) Transition(next component.Phase) bool {
	if !s.CanTransition(next) {
		return false
	}
	prev := s.state.Phase
	s.state.Phase = next
	if prev == component.Running && next == component.GameOver {
		log.Printf("Game over, final score %d", s.state.Score)
	}
	if t, ok := transitionEvents[[2]component.Phase{prev, next}]; ok {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: next})
	}
	return true
}
