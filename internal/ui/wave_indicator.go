package ui

import (
	"go-space-shooter/internal/component"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator показывает уровень угрозы римскими цифрами: сколько
// врагов выходит за один цикл спавна.
type WaveIndicator struct {
	X, Y  float64
	Scale float64
	Color color.Color
}

func NewWaveIndicator(x, y, scale float64) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Scale: scale, Color: color.RGBA{120, 170, 255, 255}}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, d component.Difficulty, maxBatch int) {
	clr := i.Color
	if d.BatchSize >= maxBatch {
		clr = color.RGBA{255, 60, 60, 255}
	}
	DrawTextScaled(screen, toRoman(d.BatchSize), i.X, i.Y, i.Scale, clr)
}
