package component

// Phase — фаза игровой сессии
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState — компонент для хранения состояния сессии
type GameState struct {
	Phase        Phase
	Score        int
	MusicStarted bool // музыка запускается один раз за процесс, рестарт её не трогает
}
