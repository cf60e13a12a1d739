// component/render.go
package component

// Kind tells the shell how to draw an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemyBullet
	KindEnemy
	KindExplosion
	KindParticle
)

// Renderable — представление сущности для оболочки, только для чтения
type Renderable struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
	Sprite        int     // спрайт врага или кадр взрыва
	Angle         float64 // наклон пули
}
