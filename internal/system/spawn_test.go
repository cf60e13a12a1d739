package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"math"
	"testing"
	"time"
)

func newSpawnSystem(tuning config.Tuning) (*SpawnSystem, *recorder) {
	d, rec := newRecordingDispatcher()
	store := newTestStore(tuning)
	return NewSpawnSystem(store, tuning, utils.NewPRNGService(7), d), rec
}

func TestSpawnCycleShortensInterval(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Spawn.InitialIntervalMs = 5000
	tuning.Spawn.IntervalStepMs = 100
	s, _ := newSpawnSystem(tuning)

	d := s.InitialDifficulty()
	if d.SpawnInterval != 5*time.Second || d.BatchSize != 1 {
		t.Fatalf("initial difficulty = %+v", d)
	}

	if n := s.SpawnCycle(&d); n != 1 {
		t.Fatalf("SpawnCycle spawned %d enemies, want 1", n)
	}
	if s.store.Enemies.Len() != 1 {
		t.Fatalf("store has %d enemies, want 1", s.store.Enemies.Len())
	}
	if d.SpawnInterval != 4900*time.Millisecond {
		t.Fatalf("interval after one cycle = %v, want 4.9s", d.SpawnInterval)
	}
}

func TestSpawnedEnemyStartsAboveField(t *testing.T) {
	tuning := config.DefaultTuning()
	s, _ := newSpawnSystem(tuning)
	d := s.InitialDifficulty()
	d.BatchSize = 50
	s.SpawnCycle(&d)

	seen := map[float64]bool{}
	for _, e := range s.store.Enemies.Items() {
		if e.Y != -tuning.Enemy.Height {
			t.Fatalf("enemy y = %v, want %v", e.Y, -tuning.Enemy.Height)
		}
		if e.X < 0 || e.X > tuning.Field.Width-tuning.Enemy.Width {
			t.Fatalf("enemy x = %v out of [0, %v]", e.X, tuning.Field.Width-tuning.Enemy.Width)
		}
		if e.Speed < tuning.Enemy.MinSpeed || e.Speed >= tuning.Enemy.MaxSpeed {
			t.Fatalf("enemy speed = %v out of range", e.Speed)
		}
		if e.Direction != 1 && e.Direction != -1 {
			t.Fatalf("enemy direction = %v", e.Direction)
		}
		if e.Sprite < 0 || e.Sprite >= tuning.Enemy.Sprites {
			t.Fatalf("enemy sprite = %d", e.Sprite)
		}
		seen[e.Direction] = true
	}
	if len(seen) != 2 {
		t.Fatalf("50 enemies all moved the same way: %v", seen)
	}
}

func TestAdvanceDifficulty(t *testing.T) {
	tuning := config.DefaultTuning()
	s, _ := newSpawnSystem(tuning)

	t.Run("interval floor", func(t *testing.T) {
		d := component.Difficulty{SpawnInterval: 650 * time.Millisecond, BatchSize: 1}
		s.AdvanceDifficulty(&d)
		if d.SpawnInterval != tuning.MinSpawnInterval() {
			t.Fatalf("interval = %v, want floor %v", d.SpawnInterval, tuning.MinSpawnInterval())
		}
		s.AdvanceDifficulty(&d)
		if d.SpawnInterval != tuning.MinSpawnInterval() {
			t.Fatalf("interval went below floor: %v", d.SpawnInterval)
		}
	})

	t.Run("batch growth", func(t *testing.T) {
		d := s.InitialDifficulty()
		for i := 0; i < tuning.Spawn.BatchEvery-1; i++ {
			s.AdvanceDifficulty(&d)
		}
		if d.BatchSize != 1 {
			t.Fatalf("batch grew early: %d after %d cycles", d.BatchSize, d.Cycles)
		}
		s.AdvanceDifficulty(&d)
		if d.BatchSize != 2 {
			t.Fatalf("batch = %d after %d cycles, want 2", d.BatchSize, d.Cycles)
		}
		for i := 0; i < 10*tuning.Spawn.BatchEvery; i++ {
			s.AdvanceDifficulty(&d)
		}
		if d.BatchSize != tuning.Spawn.MaxBatch {
			t.Fatalf("batch = %d, want cap %d", d.BatchSize, tuning.Spawn.MaxBatch)
		}
	})
}

func TestFireChance(t *testing.T) {
	s, _ := newSpawnSystem(config.DefaultTuning())
	cases := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{199, 0.2},
		{200, 0.22},
		{399, 0.22},
		{1000, 0.3},
		{100000, 0.6},
	}
	for _, tc := range cases {
		if got := s.FireChance(tc.score); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("FireChance(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestEnemyFireOnlyVisibleEnemies(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Fire.BaseChance = 1
	tuning.Fire.MaxChance = 1
	s, rec := newSpawnSystem(tuning)

	size := component.Size{Width: 48, Height: 48}
	s.store.Enemies.Append(component.Enemy{ID: 1, Position: component.Position{X: 10, Y: -48}, Size: size})
	s.store.Enemies.Append(component.Enemy{ID: 2, Position: component.Position{X: 200, Y: 100}, Size: size})
	s.store.Enemies.Append(component.Enemy{ID: 3, Position: component.Position{X: 300, Y: 600}, Size: size})

	if shots := s.EnemyFire(0); shots != 1 {
		t.Fatalf("EnemyFire = %d shots, want 1", shots)
	}
	b := s.store.EnemyBullets.At(0)
	if b.X != 222 || b.Y != 148 {
		t.Fatalf("enemy bullet at (%v, %v), want (222, 148)", b.X, b.Y)
	}
	if b.Speed != tuning.Enemy.BulletSpeed {
		t.Fatalf("enemy bullet speed = %v", b.Speed)
	}
	if rec.count(event.EnemyFire) != 1 || rec.events[0].Data != s.store.Enemies.At(1).ID {
		t.Fatalf("events = %+v", rec.events)
	}
}

func TestEnemyFireZeroChance(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Fire.BaseChance = 0
	tuning.Fire.ChanceStep = 0
	tuning.Fire.MaxChance = 0
	s, _ := newSpawnSystem(tuning)
	s.store.Enemies.Append(component.Enemy{Position: component.Position{X: 200, Y: 100}, Size: component.Size{Width: 48, Height: 48}})

	if shots := s.EnemyFire(5000); shots != 0 {
		t.Fatalf("EnemyFire = %d with zero chance", shots)
	}
}
