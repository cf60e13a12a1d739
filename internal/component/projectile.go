// internal/component/projectile.go
package component

import "go-space-shooter/internal/types"

// Bullet — снаряд игрока. Angle отсчитывается от направления "вверх",
// положительный угол отклоняет пулю вправо.
type Bullet struct {
	ID types.EntityID
	Position
	Size
	Speed float64
	Angle float64
}

func (b *Bullet) Box() Rect {
	return BoxOf(b.Position, b.Size)
}

// EnemyBullet летит строго вниз.
type EnemyBullet struct {
	ID types.EntityID
	Position
	Size
	Speed float64
}

func (b *EnemyBullet) Box() Rect {
	return BoxOf(b.Position, b.Size)
}
