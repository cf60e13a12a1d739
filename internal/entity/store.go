package entity

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

// Store держит все изменяемые сущности сессии. Принадлежит ровно одной сессии.
type Store struct {
	NextID          types.EntityID
	Player          *component.Player
	Bullets         List[component.Bullet]
	EnemyBullets    List[component.EnemyBullet]
	Enemies         List[component.Enemy]
	Particles       List[component.Particle]
	Explosions      List[component.Explosion]
	PlayerExplosion *component.Explosion // не больше одного взрыва игрока
}

func NewStore() *Store {
	return &Store{
		NextID: 1,
		Player: &component.Player{},
	}
}

func (s *Store) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// Clear empties every collection. The player is kept for the caller to
// reset; ids continue from where they were so events from the previous
// session can never alias a new entity.
func (s *Store) Clear() {
	s.Bullets.Clear()
	s.EnemyBullets.Clear()
	s.Enemies.Clear()
	s.Explosions.Clear()
	s.PlayerExplosion = nil
}
