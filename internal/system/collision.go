package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// CollisionResult summarises one resolution pass.
type CollisionResult struct {
	EnemiesKilled  int // пулями игрока
	EnemiesCrashed int // таранили игрока
	PlayerHits     int
	PlayerDied     bool
}

// CollisionSystem разрешает столкновения за один проход на тик.
// Удаление немедленное: уже удалённая сущность больше не проверяется.
type CollisionSystem struct {
	store           *entity.Store
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(store *entity.Store, tuning config.Tuning, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{store: store, tuning: tuning, eventDispatcher: eventDispatcher}
}

// BulletHitsEnemy tests a player bullet against the enemy box shrunk by the
// enemy inset.
func (s *CollisionSystem) BulletHitsEnemy(b *component.Bullet, e *component.Enemy) bool {
	in := s.tuning.Hitbox.Enemy
	return b.Box().Overlaps(e.Box().Inset(in.X, in.Y))
}

// EnemyHitsPlayer проверяет таран: оба прямоугольника уменьшены.
func (s *CollisionSystem) EnemyHitsPlayer(e *component.Enemy) bool {
	crash, pl := s.tuning.Hitbox.Crash, s.tuning.Hitbox.Player
	return e.Box().Inset(crash.X, crash.Y).Overlaps(s.store.Player.Box().Inset(pl.X, pl.Y))
}

func (s *CollisionSystem) EnemyBulletHitsPlayer(b *component.EnemyBullet) bool {
	pl := s.tuning.Hitbox.Player
	return b.Box().Overlaps(s.store.Player.Box().Inset(pl.X, pl.Y))
}

// Resolve runs bullets x enemies, enemies x player and enemy bullets x
// player, in that order. Once the player is out of lives no further pair
// is resolved.
func (s *CollisionSystem) Resolve() CollisionResult {
	var res CollisionResult
	s.resolveBullets(&res)
	s.resolveCrashes(&res)
	s.resolveEnemyBullets(&res)
	return res
}

func (s *CollisionSystem) resolveBullets(res *CollisionResult) {
	award := s.tuning.Enemy.KillAward
	s.store.Enemies.ForEachReverse(func(_ int, e *component.Enemy) bool {
		hit := false
		s.store.Bullets.ForEachReverse(func(_ int, b *component.Bullet) bool {
			if hit || !s.BulletHitsEnemy(b, e) {
				return false
			}
			hit = true
			return true
		})
		if hit {
			res.EnemiesKilled++
			s.destroyEnemy(e, award)
		}
		return hit
	})
}

func (s *CollisionSystem) resolveCrashes(res *CollisionResult) {
	s.store.Enemies.ForEachReverse(func(_ int, e *component.Enemy) bool {
		if res.PlayerDied || !s.EnemyHitsPlayer(e) {
			return false
		}
		res.EnemiesCrashed++
		s.destroyEnemy(e, 0)
		s.hitPlayer(res)
		return true
	})
}

func (s *CollisionSystem) resolveEnemyBullets(res *CollisionResult) {
	s.store.EnemyBullets.ForEachReverse(func(_ int, b *component.EnemyBullet) bool {
		if res.PlayerDied || !s.EnemyBulletHitsPlayer(b) {
			return false
		}
		s.hitPlayer(res)
		return true
	})
}

// destroyEnemy объявляет о гибели врага. Взрыв и очки вешают подписчики.
func (s *CollisionSystem) destroyEnemy(e *component.Enemy, award int) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{ID: e.ID, X: e.X, Y: e.Y, Award: award},
	})
}

func (s *CollisionSystem) hitPlayer(res *CollisionResult) {
	res.PlayerHits++
	left := DamagePlayer(s.store.Player, 1)
	if left > 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{LivesLeft: left}})
		return
	}
	res.PlayerDied = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDestroyed, Data: event.PlayerHitData{LivesLeft: 0}})
}
