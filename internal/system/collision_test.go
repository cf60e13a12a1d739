package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"testing"
)

type collisionFixture struct {
	store *entity.Store
	state *component.GameState
	sys   *CollisionSystem
	rec   *recorder
}

func newCollisionFixture(tuning config.Tuning) *collisionFixture {
	d, rec := newRecordingDispatcher()
	store := newTestStore(tuning)
	state := &component.GameState{Phase: component.Running}
	d.Subscribe(event.EnemyDestroyed, NewScoreSystem(state))
	return &collisionFixture{store: store, state: state, sys: NewCollisionSystem(store, tuning, d), rec: rec}
}

func enemyAt(x, y float64) component.Enemy {
	return component.Enemy{Position: component.Position{X: x, Y: y}, Size: component.Size{Width: 48, Height: 48}, Speed: 2, Direction: 1}
}

func bulletAt(x, y float64) component.Bullet {
	return component.Bullet{Position: component.Position{X: x, Y: y}, Size: component.Size{Width: 4, Height: 10}, Speed: 7}
}

func enemyBulletAt(x, y float64) component.EnemyBullet {
	return component.EnemyBullet{Position: component.Position{X: x, Y: y}, Size: component.Size{Width: 4, Height: 10}, Speed: 4}
}

// Враг в (100, 480) с отступами 2/4 даёт хитбокс x [102, 146], y [484, 524].
func TestBulletHitsEnemyBoundaries(t *testing.T) {
	f := newCollisionFixture(config.DefaultTuning())
	e := enemyAt(100, 480)
	cases := []struct {
		x, y float64
		hit  bool
	}{
		{122, 500, true},
		{122, 524, false},
		{122, 523.9, true},
		{146, 500, false},
		{145.9, 500, true},
		{98, 500, false},
		{98.5, 500, true},
		{122, 474, false},
		{122, 474.1, true},
	}
	for _, tc := range cases {
		b := bulletAt(tc.x, tc.y)
		if got := f.sys.BulletHitsEnemy(&b, &e); got != tc.hit {
			t.Errorf("bullet at (%v, %v): hit = %v, want %v", tc.x, tc.y, got, tc.hit)
		}
	}
}

func TestResolveBulletKillsEnemy(t *testing.T) {
	f := newCollisionFixture(config.DefaultTuning())
	f.store.Enemies.Append(enemyAt(100, 480))
	f.store.Bullets.Append(bulletAt(122, 500))

	res := f.sys.Resolve()

	if res.EnemiesKilled != 1 || f.store.Enemies.Len() != 0 || f.store.Bullets.Len() != 0 {
		t.Fatalf("res = %+v, enemies %d, bullets %d", res, f.store.Enemies.Len(), f.store.Bullets.Len())
	}
	if f.state.Score != 100 {
		t.Fatalf("score = %d, want 100", f.state.Score)
	}
	if f.rec.count(event.EnemyDestroyed) != 1 {
		t.Fatalf("EnemyDestroyed dispatched %d times", f.rec.count(event.EnemyDestroyed))
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	f := newCollisionFixture(config.DefaultTuning())
	f.store.Enemies.Append(enemyAt(100, 480))
	f.store.Bullets.Append(bulletAt(110, 500))
	f.store.Bullets.Append(bulletAt(130, 500))

	res := f.sys.Resolve()

	if res.EnemiesKilled != 1 {
		t.Fatalf("killed %d enemies, want 1", res.EnemiesKilled)
	}
	if f.store.Bullets.Len() != 1 {
		t.Fatalf("%d bullets left, want 1", f.store.Bullets.Len())
	}
	// обход с конца: поглощается последняя пуля
	if f.store.Bullets.At(0).X != 110 {
		t.Fatalf("wrong bullet consumed, left at x=%v", f.store.Bullets.At(0).X)
	}
	if f.state.Score != 100 {
		t.Fatalf("score = %d, want 100", f.state.Score)
	}
}

func TestResolveMissLeavesEverything(t *testing.T) {
	f := newCollisionFixture(config.DefaultTuning())
	f.store.Enemies.Append(enemyAt(100, 100))
	f.store.Bullets.Append(bulletAt(400, 300))
	f.store.EnemyBullets.Append(enemyBulletAt(100, 100))

	res := f.sys.Resolve()

	if res != (CollisionResult{}) {
		t.Fatalf("res = %+v, want zero", res)
	}
	if f.store.Enemies.Len() != 1 || f.store.Bullets.Len() != 1 || f.store.EnemyBullets.Len() != 1 {
		t.Fatal("entities removed without a collision")
	}
	if f.store.Player.Lives != 3 {
		t.Fatalf("lives = %d", f.store.Player.Lives)
	}
}

func TestResolveCrash(t *testing.T) {
	f := newCollisionFixture(config.DefaultTuning())
	f.store.Enemies.Append(enemyAt(376, 520))

	res := f.sys.Resolve()

	if res.EnemiesCrashed != 1 || res.PlayerHits != 1 || res.PlayerDied {
		t.Fatalf("res = %+v", res)
	}
	if f.store.Enemies.Len() != 0 || f.store.Player.Lives != 2 {
		t.Fatalf("enemies %d, lives %d", f.store.Enemies.Len(), f.store.Player.Lives)
	}
	if f.state.Score != 0 {
		t.Fatalf("crash awarded %d points", f.state.Score)
	}
	if f.rec.count(event.EnemyDestroyed) != 1 || f.rec.count(event.PlayerHit) != 1 {
		t.Fatalf("events = %+v", f.rec.events)
	}
}

func TestResolveEnemyBulletHitsPlayer(t *testing.T) {
	f := newCollisionFixture(config.DefaultTuning())
	f.store.EnemyBullets.Append(enemyBulletAt(398, 540))
	// пуля у самого края корабля попадает в срезанную часть хитбокса
	f.store.EnemyBullets.Append(enemyBulletAt(378, 540))

	res := f.sys.Resolve()

	if res.PlayerHits != 1 || f.store.Player.Lives != 2 {
		t.Fatalf("res = %+v, lives %d", res, f.store.Player.Lives)
	}
	if f.store.EnemyBullets.Len() != 1 || f.store.EnemyBullets.At(0).X != 378 {
		t.Fatalf("enemy bullets left: %+v", f.store.EnemyBullets.Items())
	}
}

func TestResolveStopsAfterLastLife(t *testing.T) {
	f := newCollisionFixture(config.DefaultTuning())
	f.store.Player.Lives = 1
	f.store.Enemies.Append(enemyAt(376, 520))
	f.store.EnemyBullets.Append(enemyBulletAt(398, 540))
	f.store.EnemyBullets.Append(enemyBulletAt(400, 545))

	res := f.sys.Resolve()

	if !res.PlayerDied || res.PlayerHits != 1 {
		t.Fatalf("res = %+v", res)
	}
	if f.store.Player.Lives != 0 {
		t.Fatalf("lives = %d, want 0", f.store.Player.Lives)
	}
	if f.store.EnemyBullets.Len() != 2 {
		t.Fatalf("enemy bullets resolved after death: %d left", f.store.EnemyBullets.Len())
	}
	if f.rec.count(event.PlayerDestroyed) != 1 || f.rec.count(event.PlayerHit) != 0 {
		t.Fatalf("events = %+v", f.rec.events)
	}
}

func TestDamagePlayerFloor(t *testing.T) {
	p := &component.Player{Lives: 1}
	if left := DamagePlayer(p, 3); left != 0 || p.Lives != 0 {
		t.Fatalf("lives = %d, want 0", p.Lives)
	}
	if left := DamagePlayer(p, -1); left != 0 {
		t.Fatalf("negative damage healed the player: %d", left)
	}
}
