// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesBarHeight  = 10.0
	LivesBarSpacing = 3.0
	LivesTotalWidth = 90.0
)

var (
	livesFullColor     = color.RGBA{50, 205, 50, 230}
	livesWarningColor  = color.RGBA{255, 200, 0, 230}
	livesCriticalColor = color.RGBA{220, 40, 40, 230}
	livesEmptyColor    = color.RGBA{60, 60, 60, 200}
)

// LivesIndicator отображает жизни игрока сегментированным баром,
// по сегменту на жизнь.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует бар: живые сегменты слева, потерянные справа.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	if maxLives <= 0 {
		return
	}
	segW := (LivesTotalWidth - float32(maxLives-1)*LivesBarSpacing) / float32(maxLives)
	active := livesColor(lives, maxLives)

	x := i.X
	for j := 0; j < maxLives; j++ {
		fill := livesEmptyColor
		if j < lives {
			fill = active
		}
		vector.DrawFilledRect(screen, x, i.Y, segW, LivesBarHeight, fill, true)
		vector.StrokeRect(screen, x, i.Y, segW, LivesBarHeight, 1, color.White, true)
		x += segW + LivesBarSpacing
	}
}

// livesColor: зелёный, жёлтый с половины, красный на последней жизни.
func livesColor(lives, maxLives int) color.RGBA {
	switch {
	case lives <= 1:
		return livesCriticalColor
	case float64(lives)/float64(maxLives) <= 0.5:
		return livesWarningColor
	default:
		return livesFullColor
	}
}
