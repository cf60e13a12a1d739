package component

import "go-space-shooter/internal/types"

// Enemy представляет вражеский корабль.
type Enemy struct {
	ID types.EntityID
	Position
	Size
	Speed     float64 // вертикальная скорость за тик
	Direction float64 // +1 вправо, -1 влево
	Sprite    int     // индекс спрайта, выбирается при спавне
}

func (e *Enemy) Box() Rect {
	return BoxOf(e.Position, e.Size)
}

// Visible reports whether the enemy has fully entered the field and
// has not yet left it through the bottom edge.
func (e *Enemy) Visible(fieldHeight float64) bool {
	return e.Y >= 0 && e.Y < fieldHeight
}
