// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color by factor (0..1).
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	factor = clamp01(factor)
	return color.RGBA{
		R: uint8(float64(c.R) * (1 - factor)),
		G: uint8(float64(c.G) * (1 - factor)),
		B: uint8(float64(c.B) * (1 - factor)),
		A: c.A,
	}
}

// Fade возвращает цвет с новой непремультиплицированной прозрачностью.
func Fade(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Lerp смешивает два цвета, t=0 даёт a, t=1 даёт b.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Pick returns palette[i] wrapped around the palette length.
func Pick(palette []color.RGBA, i int) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	i %= len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
