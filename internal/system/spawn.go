package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"math"
)

// SpawnSystem создаёт врагов и вражеские пули по расписанию сессии.
type SpawnSystem struct {
	store           *entity.Store
	tuning          config.Tuning
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(store *entity.Store, tuning config.Tuning, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		store:           store,
		tuning:          tuning,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// InitialDifficulty returns the ramp a fresh session starts with.
func (s *SpawnSystem) InitialDifficulty() component.Difficulty {
	return component.NewDifficulty(s.tuning.SpawnInterval())
}

// SpawnCycle выпускает d.BatchSize врагов и продвигает рампу сложности.
func (s *SpawnSystem) SpawnCycle(d *component.Difficulty) int {
	for i := 0; i < d.BatchSize; i++ {
		s.spawnEnemy()
	}
	spawned := d.BatchSize
	s.AdvanceDifficulty(d)
	return spawned
}

// AdvanceDifficulty shortens the interval by one step down to the floor and
// grows the batch by one every BatchEvery cycles up to MaxBatch.
func (s *SpawnSystem) AdvanceDifficulty(d *component.Difficulty) {
	d.Cycles++

	next := d.SpawnInterval - s.tuning.SpawnIntervalStep()
	if floor := s.tuning.MinSpawnInterval(); next < floor {
		next = floor
	}
	d.SpawnInterval = next

	if d.Cycles%s.tuning.Spawn.BatchEvery == 0 && d.BatchSize < s.tuning.Spawn.MaxBatch {
		d.BatchSize++
	}
}

func (s *SpawnSystem) spawnEnemy() {
	t := s.tuning.Enemy
	x := s.rng.Range(0, s.tuning.Field.Width-t.Width)
	s.store.Enemies.Append(component.Enemy{
		ID:        s.store.NewEntity(),
		Position:  component.Position{X: x, Y: -t.Height},
		Size:      component.Size{Width: t.Width, Height: t.Height},
		Speed:     s.rng.Range(t.MinSpeed, t.MaxSpeed),
		Direction: s.rng.Sign(),
		Sprite:    s.rng.Intn(t.Sprites),
	})
}

// FireChance — вероятность выстрела одного врага при текущем счёте.
func (s *SpawnSystem) FireChance(score int) float64 {
	f := s.tuning.Fire
	steps := score / f.ScoreUnit
	return math.Min(f.BaseChance+float64(steps)*f.ChanceStep, f.MaxChance)
}

// EnemyFire draws once per visible enemy and appends an EnemyBullet at the
// muzzle of every enemy that fires. Returns the number of shots.
func (s *SpawnSystem) EnemyFire(score int) int {
	chance := s.FireChance(score)
	t := s.tuning.Enemy
	shots := 0
	for _, e := range s.store.Enemies.Items() {
		if !e.Visible(s.tuning.Field.Height) {
			continue
		}
		if !s.rng.Chance(chance) {
			continue
		}
		s.store.EnemyBullets.Append(component.EnemyBullet{
			ID:       s.store.NewEntity(),
			Position: component.Position{X: e.X + e.Width/2 - t.BulletWidth/2, Y: e.Y + e.Height},
			Size:     component.Size{Width: t.BulletWidth, Height: t.BulletHeight},
			Speed:    t.BulletSpeed,
		})
		shots++
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyFire, Data: e.ID})
	}
	return shots
}
