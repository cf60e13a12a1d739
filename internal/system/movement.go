// internal/system/movement.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
	"math"
)

// MovementSystem обновляет позиции сущностей. Все скорости заданы в
// пикселях за тик.
type MovementSystem struct {
	store  *entity.Store
	tuning config.Tuning
	rng    *utils.PRNGService
}

func NewMovementSystem(store *entity.Store, tuning config.Tuning, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{store: store, tuning: tuning, rng: rng}
}

// MovePlayer applies the held-key deltas and clamps x into [0, W-w].
func (s *MovementSystem) MovePlayer(left, right bool) {
	p := s.store.Player
	if left {
		p.X -= p.Speed
	}
	if right {
		p.X += p.Speed
	}
	p.X = utils.Clamp(p.X, 0, s.tuning.Field.Width-p.Width)
}

// SeedParticles заполняет фон звёздами в случайных точках поля.
func (s *MovementSystem) SeedParticles() {
	e := s.tuning.Effects
	s.store.Particles.Clear()
	for i := 0; i < e.Particles; i++ {
		s.store.Particles.Append(component.Particle{
			Position: component.Position{
				X: s.rng.Range(0, s.tuning.Field.Width),
				Y: s.rng.Range(0, s.tuning.Field.Height),
			},
			Speed: s.rng.Range(e.ParticleMinSpeed, e.ParticleMaxSpeed),
			Size:  s.rng.Range(1, e.ParticleMaxSize+1),
		})
	}
}

// UpdateParticles двигает звёзды вниз; ушедшая за нижний край звезда
// появляется сверху в новой случайной колонке.
func (s *MovementSystem) UpdateParticles() {
	items := s.store.Particles.Items()
	for i := range items {
		p := &items[i]
		p.Y += p.Speed
		if p.Y > s.tuning.Field.Height {
			p.Y -= s.tuning.Field.Height + p.Size
			p.X = s.rng.Range(0, s.tuning.Field.Width)
		}
	}
}

// UpdateBullets: the angle is measured from straight up, so a zero angle
// moves only along y.
func (s *MovementSystem) UpdateBullets() {
	items := s.store.Bullets.Items()
	for i := range items {
		b := &items[i]
		if b.Angle == 0 {
			b.Y -= b.Speed
			continue
		}
		b.X += b.Speed * math.Sin(b.Angle)
		b.Y -= b.Speed * math.Cos(b.Angle)
	}
}

func (s *MovementSystem) UpdateEnemyBullets() {
	items := s.store.EnemyBullets.Items()
	for i := range items {
		items[i].Y += items[i].Speed
	}
}

// UpdateEnemies: спуск со своей скоростью и зигзаг, направление
// меняется при касании любого края поля.
func (s *MovementSystem) UpdateEnemies() {
	width := s.tuning.Field.Width
	step := s.tuning.Enemy.Zigzag
	items := s.store.Enemies.Items()
	for i := range items {
		e := &items[i]
		e.Y += e.Speed
		e.X += step * e.Direction
		if e.X <= 0 {
			e.X = 0
			e.Direction = 1
		} else if e.X+e.Width >= width {
			e.X = width - e.Width
			e.Direction = -1
		}
	}
}

// Prune удаляет пули за верхним краем, вражеские пули и врагов за нижним.
// Возвращает число удалённых сущностей.
func (s *MovementSystem) Prune() int {
	top := -s.tuning.Bullet.PruneMargin
	bottom := s.tuning.Field.Height
	removed := s.store.Bullets.RemoveIf(func(b *component.Bullet) bool { return b.Y < top })
	removed += s.store.EnemyBullets.RemoveIf(func(b *component.EnemyBullet) bool { return b.Y > bottom })
	removed += s.store.Enemies.RemoveIf(func(e *component.Enemy) bool { return e.Y > bottom })
	return removed
}
