// internal/component/visual.go
package component

// Animation is an ordered frame sequence shared by every explosion of a kind.
type Animation struct {
	Frames        []int // индексы кадров в атласе оболочки
	TicksPerFrame int
}

func NewAnimation(frames, ticksPerFrame int) *Animation {
	seq := make([]int, frames)
	for i := range seq {
		seq[i] = i
	}
	return &Animation{Frames: seq, TicksPerFrame: ticksPerFrame}
}

// Explosion проигрывает анимацию один раз и затем удаляется.
type Explosion struct {
	Position
	Size
	Frame     int // текущий индекс в Animation.Frames
	Ticks     int // сколько тиков показан текущий кадр
	Animation *Animation
}

// Done reports whether every frame has been shown once.
func (e *Explosion) Done() bool {
	return e.Animation == nil || e.Frame >= len(e.Animation.Frames)
}

// CurrentFrame возвращает индекс кадра для отрисовки или -1, если анимация закончилась.
func (e *Explosion) CurrentFrame() int {
	if e.Done() {
		return -1
	}
	return e.Animation.Frames[e.Frame]
}

// Particle — звезда фона, на игру не влияет.
type Particle struct {
	Position
	Speed float64
	Size  float64
}
