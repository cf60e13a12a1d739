// internal/system/score.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/event"
)

// ScoreSystem начисляет очки за уничтоженных врагов.
type ScoreSystem struct {
	state *component.GameState
}

func NewScoreSystem(state *component.GameState) *ScoreSystem {
	return &ScoreSystem{state: state}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	data, ok := e.Data.(event.EnemyDestroyedData)
	if !ok || data.Award <= 0 {
		return
	}
	s.state.Score += data.Award
}
