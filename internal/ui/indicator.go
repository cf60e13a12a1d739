// internal/ui/indicator.go
package ui

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — круг, цвет которого показывает фазу сессии.
// Клик по нему запускает или перезапускает игру.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 2, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(mx, my int) bool {
	dx, dy := float32(mx)-i.X, float32(my)-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

func PhaseColor(phase component.Phase) color.Color {
	switch phase {
	case component.Running:
		return config.RunningStateColor
	case component.Paused:
		return config.PausedStateColor
	case component.GameOver:
		return config.OverStateColor
	default:
		return config.IdleStateColor
	}
}
