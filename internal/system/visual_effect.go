package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// VisualEffectSystem управляет взрывами. Анимации общие для всех взрывов
// одного вида, каждый взрыв проигрывается один раз.
type VisualEffectSystem struct {
	store           *entity.Store
	tuning          config.Tuning
	EnemyAnimation  *component.Animation
	PlayerAnimation *component.Animation
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(store *entity.Store, tuning config.Tuning) *VisualEffectSystem {
	fx := tuning.Effects
	return &VisualEffectSystem{
		store:           store,
		tuning:          tuning,
		EnemyAnimation:  component.NewAnimation(fx.ExplosionFrames, fx.TicksPerFrame),
		PlayerAnimation: component.NewAnimation(fx.PlayerExplosionFrames, fx.TicksPerFrame),
	}
}

// OnEvent spawns explosions for destroyed enemies and the destroyed player.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		data, ok := e.Data.(event.EnemyDestroyedData)
		if !ok {
			return
		}
		s.SpawnExplosion(data.X, data.Y)
	case event.PlayerDestroyed:
		s.StartPlayerExplosion()
	}
}

// SpawnExplosion добавляет взрыв врага в точке (x, y).
func (s *VisualEffectSystem) SpawnExplosion(x, y float64) {
	s.store.Explosions.Append(component.Explosion{
		Position:  component.Position{X: x, Y: y},
		Size:      component.Size{Width: s.tuning.Enemy.Width, Height: s.tuning.Enemy.Height},
		Animation: s.EnemyAnimation,
	})
}

// StartPlayerExplosion запускает взрыв игрока, если он ещё не идёт.
func (s *VisualEffectSystem) StartPlayerExplosion() bool {
	if s.store.PlayerExplosion != nil {
		return false
	}
	p := s.store.Player
	s.store.PlayerExplosion = &component.Explosion{
		Position:  p.Position,
		Size:      p.Size,
		Animation: s.PlayerAnimation,
	}
	return true
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	s.store.Explosions.RemoveIf(func(x *component.Explosion) bool {
		advance(x)
		return x.Done()
	})
	if px := s.store.PlayerExplosion; px != nil {
		advance(px)
		if px.Done() {
			s.store.PlayerExplosion = nil
		}
	}
}

func advance(x *component.Explosion) {
	if x.Done() {
		return
	}
	x.Ticks++
	if x.Ticks >= x.Animation.TicksPerFrame {
		x.Ticks = 0
		x.Frame++
	}
}
