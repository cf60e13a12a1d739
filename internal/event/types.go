package event

import "go-space-shooter/internal/types"

// Звуковые сигналы для оболочки
const (
	FireWeapon      EventType = "FireWeapon"      // игрок выстрелил
	EnemyFire       EventType = "EnemyFire"       // враг выстрелил
	EnemyDestroyed  EventType = "EnemyDestroyed"  // враг уничтожен пулей или тараном
	PlayerHit       EventType = "PlayerHit"       // игрок потерял жизнь, но жив
	PlayerDestroyed EventType = "PlayerDestroyed" // последняя жизнь потеряна
	MusicStart      EventType = "MusicStart"
	MusicToggle     EventType = "MusicToggle"
)

// Переходы сессии
const (
	SessionStarted   EventType = "SessionStarted"
	SessionPaused    EventType = "SessionPaused"
	SessionResumed   EventType = "SessionResumed"
	SessionRestarted EventType = "SessionRestarted"
	GameOver         EventType = "GameOver"
)

// EnemyDestroyedData is the payload of EnemyDestroyed. Award is zero when
// the enemy crashed into the player.
type EnemyDestroyedData struct {
	ID    types.EntityID
	X, Y  float64
	Award int
}

// PlayerHitData is the payload of PlayerHit and PlayerDestroyed.
type PlayerHitData struct {
	LivesLeft int
}
