package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var face = basicfont.Face7x13

// textCache — отрендеренные надписи для крупного текста, ключ — строка.
var textCache = map[string]*ebiten.Image{}

// DrawText рисует строку шрифтом 7x13, (x, y) — левый верхний угол.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y+face.Ascent, clr)
}

// TextWidth возвращает ширину строки в пикселях при масштабе 1.
func TextWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawTextScaled draws s centred on cx with its top at y, scaled by scale.
func DrawTextScaled(screen *ebiten.Image, s string, cx, y float64, scale float64, clr color.Color) {
	img, ok := textCache[s]
	if !ok {
		img = ebiten.NewImage(TextWidth(s), face.Height)
		text.Draw(img, s, face, 0, face.Ascent, color.White)
		textCache[s] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(img.Bounds().Dx())*scale/2, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(img, op)
}
