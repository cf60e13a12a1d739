// component/movement.go
package component

// Position — компонент позиции (левый верхний угол спрайта)
type Position struct {
	X, Y float64
}

// Size — габариты спрайта
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned box in field coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Inset shrinks the box by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
}

// Overlaps uses strict inequalities, so boxes that only touch do not collide.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

func BoxOf(p Position, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}
