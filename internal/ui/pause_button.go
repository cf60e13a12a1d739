// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует "паузу" во время игры и "play" на паузе.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	PauseColor    color.Color
	PlayColor     color.Color
	white         *ebiten.Image
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		white:      white,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if paused {
		var tri vector.Path
		tri.MoveTo(b.X-s, b.Y-s*1.2)
		tri.LineTo(b.X-s, b.Y+s*1.2)
		tri.LineTo(b.X+s, b.Y)
		tri.Close()
		vs, is := tri.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, bl, a := b.PlayColor.RGBA()
		for i := range vs {
			vs[i].ColorR = float32(r) / 0xffff
			vs[i].ColorG = float32(g) / 0xffff
			vs[i].ColorB = float32(bl) / 0xffff
			vs[i].ColorA = float32(a) / 0xffff
		}
		screen.DrawTriangles(vs, is, b.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}

	width, height, spacing := s*0.6, s*2.0, s*0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

func (b *PauseButton) IsClicked(mx, my int) bool {
	dx, dy := float32(mx)-b.X, float32(my)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

// HandleClick returns false while the click cooldown has not passed.
func (b *PauseButton) HandleClick(cooldown time.Duration) bool {
	if time.Since(b.LastClickTime) < cooldown {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}
