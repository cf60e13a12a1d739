package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/utils"
	"math"
	"testing"
)

func newMovementSystem(tuning config.Tuning) *MovementSystem {
	return NewMovementSystem(newTestStore(tuning), tuning, utils.NewPRNGService(3))
}

func TestEnemyEntersVisibleBand(t *testing.T) {
	tuning := config.DefaultTuning()
	s := newMovementSystem(tuning)
	s.store.Enemies.Append(component.Enemy{
		Position:  component.Position{X: 100, Y: -48},
		Size:      component.Size{Width: 48, Height: 48},
		Speed:     2,
		Direction: 1,
	})

	for i := 0; i < 23; i++ {
		s.UpdateEnemies()
	}
	e := s.store.Enemies.At(0)
	if e.Visible(tuning.Field.Height) {
		t.Fatalf("enemy visible after 23 ticks at y=%v", e.Y)
	}
	s.UpdateEnemies()
	if e.Y != 0 || !e.Visible(tuning.Field.Height) {
		t.Fatalf("after 24 ticks y = %v visible = %v, want 0 and true", e.Y, e.Visible(tuning.Field.Height))
	}
	if e.X != 124 {
		t.Fatalf("x = %v, want 124", e.X)
	}
}

func TestMovePlayerClamp(t *testing.T) {
	tuning := config.DefaultTuning()
	maxX := tuning.Field.Width - tuning.Player.Width
	cases := []struct {
		name        string
		x           float64
		left, right bool
		want        float64
	}{
		{"left edge", 0, true, false, 0},
		{"right edge", maxX - 2, false, true, maxX},
		{"both held", 300, true, true, 300},
		{"none", 300, false, false, 300},
		{"left", 300, true, false, 295},
		{"right", 300, false, true, 305},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMovementSystem(tuning)
			s.store.Player.X = tc.x
			s.MovePlayer(tc.left, tc.right)
			if s.store.Player.X != tc.want {
				t.Fatalf("x = %v, want %v", s.store.Player.X, tc.want)
			}
		})
	}
}

func TestEnemyZigzagBounces(t *testing.T) {
	tuning := config.DefaultTuning()
	s := newMovementSystem(tuning)
	size := component.Size{Width: 48, Height: 48}
	s.store.Enemies.Append(component.Enemy{Position: component.Position{X: 751.5, Y: 10}, Size: size, Speed: 2, Direction: 1})
	s.store.Enemies.Append(component.Enemy{Position: component.Position{X: 0.5, Y: 10}, Size: size, Speed: 2, Direction: -1})

	s.UpdateEnemies()

	right, left := s.store.Enemies.At(0), s.store.Enemies.At(1)
	if right.X != 752 || right.Direction != -1 {
		t.Fatalf("right enemy x = %v dir = %v, want 752 and -1", right.X, right.Direction)
	}
	if left.X != 0 || left.Direction != 1 {
		t.Fatalf("left enemy x = %v dir = %v, want 0 and 1", left.X, left.Direction)
	}
	if right.Y != 12 || left.Y != 12 {
		t.Fatalf("enemies did not descend: %v, %v", right.Y, left.Y)
	}
}

func TestUpdateBulletsAngled(t *testing.T) {
	tuning := config.DefaultTuning()
	s := newMovementSystem(tuning)
	a := utils.DegToRad(10)
	s.store.Bullets.Append(component.Bullet{Position: component.Position{X: 100, Y: 500}, Speed: 7})
	s.store.Bullets.Append(component.Bullet{Position: component.Position{X: 100, Y: 500}, Speed: 7, Angle: a})
	s.store.EnemyBullets.Append(component.EnemyBullet{Position: component.Position{X: 50, Y: 50}, Speed: 4})

	s.UpdateBullets()
	s.UpdateEnemyBullets()

	straight, angled := s.store.Bullets.At(0), s.store.Bullets.At(1)
	if straight.X != 100 || straight.Y != 493 {
		t.Fatalf("straight bullet at (%v, %v)", straight.X, straight.Y)
	}
	if math.Abs(angled.X-(100+7*math.Sin(a))) > 1e-9 || math.Abs(angled.Y-(500-7*math.Cos(a))) > 1e-9 {
		t.Fatalf("angled bullet at (%v, %v)", angled.X, angled.Y)
	}
	if eb := s.store.EnemyBullets.At(0); eb.Y != 54 || eb.X != 50 {
		t.Fatalf("enemy bullet at (%v, %v)", eb.X, eb.Y)
	}
}

func TestPrune(t *testing.T) {
	tuning := config.DefaultTuning()
	s := newMovementSystem(tuning)
	s.store.Bullets.Append(component.Bullet{Position: component.Position{Y: -10}})
	s.store.Bullets.Append(component.Bullet{Position: component.Position{Y: -10.5}})
	s.store.EnemyBullets.Append(component.EnemyBullet{Position: component.Position{Y: 600}})
	s.store.EnemyBullets.Append(component.EnemyBullet{Position: component.Position{Y: 600.1}})
	s.store.Enemies.Append(component.Enemy{Position: component.Position{Y: 601}})
	s.store.Enemies.Append(component.Enemy{Position: component.Position{Y: 300}})

	if removed := s.Prune(); removed != 3 {
		t.Fatalf("Prune removed %d, want 3", removed)
	}
	if s.store.Bullets.Len() != 1 || s.store.Bullets.At(0).Y != -10 {
		t.Fatalf("wrong bullets kept: %+v", s.store.Bullets.Items())
	}
	if s.store.EnemyBullets.Len() != 1 || s.store.Enemies.Len() != 1 {
		t.Fatalf("enemy bullets %d, enemies %d", s.store.EnemyBullets.Len(), s.store.Enemies.Len())
	}
}

func TestParticles(t *testing.T) {
	tuning := config.DefaultTuning()
	s := newMovementSystem(tuning)
	s.SeedParticles()
	if s.store.Particles.Len() != tuning.Effects.Particles {
		t.Fatalf("seeded %d particles, want %d", s.store.Particles.Len(), tuning.Effects.Particles)
	}
	for _, p := range s.store.Particles.Items() {
		if p.X < 0 || p.X >= tuning.Field.Width || p.Y < 0 || p.Y >= tuning.Field.Height {
			t.Fatalf("particle outside field: %+v", p)
		}
	}

	s.store.Particles.Clear()
	s.store.Particles.Append(component.Particle{Position: component.Position{X: 10, Y: 599.5}, Speed: 1, Size: 1})
	s.UpdateParticles()
	p := s.store.Particles.At(0)
	if p.Y != -0.5 {
		t.Fatalf("wrapped particle y = %v, want -0.5", p.Y)
	}
	if p.X < 0 || p.X >= tuning.Field.Width {
		t.Fatalf("wrapped particle x = %v", p.X)
	}
}
