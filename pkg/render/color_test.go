package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := DarkenColor(c, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor(0.5) = %v", got)
	}
	if got := DarkenColor(c, 2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("factor above 1 should clamp, got %v", got)
	}
	if got := DarkenColor(c, 0); got != c {
		t.Errorf("DarkenColor(0) = %v, want unchanged", got)
	}
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{255, 255, 255, 255}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("t=0: %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("t=1: %v", got)
	}
	if got := Lerp(a, b, 0.5); got.R != 128 {
		t.Errorf("t=0.5: %v", got)
	}
}

func TestPick(t *testing.T) {
	palette := []color.RGBA{{R: 1}, {R: 2}, {R: 3}}
	cases := map[int]uint8{0: 1, 2: 3, 3: 1, 7: 2, -1: 3}
	for i, want := range cases {
		if got := Pick(palette, i).R; got != want {
			t.Errorf("Pick(%d).R = %d, want %d", i, got, want)
		}
	}
	if got := Pick(nil, 5); got != (color.RGBA{}) {
		t.Errorf("empty palette: %v", got)
	}
}

func TestFade(t *testing.T) {
	if got := Fade(color.RGBA{10, 20, 30, 255}, 40); got != (color.NRGBA{10, 20, 30, 40}) {
		t.Errorf("Fade = %v", got)
	}
}
