package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
)

// WeaponSystem создаёт пули игрока. Кулдаун проверяет сессия.
type WeaponSystem struct {
	store           *entity.Store
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(store *entity.Store, tuning config.Tuning, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{store: store, tuning: tuning, eventDispatcher: eventDispatcher}
}

// Angles returns the launch angles for the given score: one straight shot,
// or a three-way spread once the score reaches SpreadScore.
func (s *WeaponSystem) Angles(score int) []float64 {
	if score < s.tuning.Bullet.SpreadScore {
		return []float64{0}
	}
	a := utils.DegToRad(s.tuning.Bullet.SpreadAngleDeg)
	return []float64{-a, 0, a}
}

// Fire выпускает пули из центра носа корабля и возвращает их количество.
func (s *WeaponSystem) Fire(score int) int {
	p := s.store.Player
	b := s.tuning.Bullet
	x := p.X + p.Width/2 - b.Width/2
	angles := s.Angles(score)
	for _, angle := range angles {
		s.store.Bullets.Append(component.Bullet{
			ID:       s.store.NewEntity(),
			Position: component.Position{X: x, Y: p.Y},
			Size:     component.Size{Width: b.Width, Height: b.Height},
			Speed:    b.Speed,
			Angle:    angle,
		})
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.FireWeapon, Data: len(angles)})
	return len(angles)
}
