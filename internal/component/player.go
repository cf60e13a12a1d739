// internal/component/player.go
package component

// Player — корабль игрока. В сессии ровно один экземпляр.
type Player struct {
	Position
	Size
	Speed    float64 // пикселей за тик
	Lives    int
	MaxLives int
}

func (p *Player) Box() Rect {
	return BoxOf(p.Position, p.Size)
}
