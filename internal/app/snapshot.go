package app

import (
	"go-space-shooter/internal/component"
	"time"
)

// Snapshot — копия состояния сессии для отрисовки. Оболочка не может
// через неё изменить сессию.
type Snapshot struct {
	Width, Height float64
	Phase         component.Phase
	Score         int
	Lives         int
	MaxLives      int
	MusicOn       bool
	Clock         time.Duration
	Difficulty    component.Difficulty
	Run           uint64 // номер забега, растёт с каждым стартом

	Player       component.Renderable
	PlayerAlive  bool
	Particles    []component.Renderable
	Bullets      []component.Renderable
	EnemyBullets []component.Renderable
	Enemies      []component.Renderable
	Explosions   []component.Renderable // включая взрыв игрока
}

// Snapshot builds a read-only view of the current tick.
func (s *Session) Snapshot() Snapshot {
	p := s.Store.Player
	snap := Snapshot{
		Width:      s.Tuning.Field.Width,
		Height:     s.Tuning.Field.Height,
		Phase:      s.State.Phase,
		Score:      s.State.Score,
		Lives:      p.Lives,
		MaxLives:   p.MaxLives,
		MusicOn:    s.musicOn,
		Clock:      s.clock,
		Difficulty: s.Difficulty,
		Run:        s.scheduler.Generation(),
		Player: component.Renderable{
			Kind: component.KindPlayer, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
		},
		PlayerAlive: p.Lives > 0,
	}

	for _, pt := range s.Store.Particles.Items() {
		snap.Particles = append(snap.Particles, component.Renderable{
			Kind: component.KindParticle, X: pt.X, Y: pt.Y, Width: pt.Size, Height: pt.Size,
		})
	}
	for _, b := range s.Store.Bullets.Items() {
		snap.Bullets = append(snap.Bullets, component.Renderable{
			Kind: component.KindBullet, X: b.X, Y: b.Y, Width: b.Width, Height: b.Height, Angle: b.Angle,
		})
	}
	for _, b := range s.Store.EnemyBullets.Items() {
		snap.EnemyBullets = append(snap.EnemyBullets, component.Renderable{
			Kind: component.KindEnemyBullet, X: b.X, Y: b.Y, Width: b.Width, Height: b.Height,
		})
	}
	for _, e := range s.Store.Enemies.Items() {
		snap.Enemies = append(snap.Enemies, component.Renderable{
			Kind: component.KindEnemy, X: e.X, Y: e.Y, Width: e.Width, Height: e.Height, Sprite: e.Sprite,
		})
	}
	for i := range s.Store.Explosions.Items() {
		snap.Explosions = append(snap.Explosions, explosionRenderable(s.Store.Explosions.At(i)))
	}
	if px := s.Store.PlayerExplosion; px != nil {
		snap.Explosions = append(snap.Explosions, explosionRenderable(px))
	}
	return snap
}

func explosionRenderable(x *component.Explosion) component.Renderable {
	return component.Renderable{
		Kind:   component.KindExplosion,
		X:      x.X,
		Y:      x.Y,
		Width:  x.Width,
		Height: x.Height,
		Sprite: x.CurrentFrame(),
	}
}
