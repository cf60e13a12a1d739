package component

import (
	"testing"
	"time"
)

func TestRectOverlapsTouchingEdges(t *testing.T) {
	enemy := BoxOf(Position{X: 100, Y: 480}, Size{Width: 48, Height: 48}).Inset(2, 4)
	if enemy != (Rect{X: 102, Y: 484, Width: 44, Height: 40}) {
		t.Fatalf("Inset = %+v", enemy)
	}

	cases := []struct {
		name string
		box  Rect
		want bool
	}{
		{"inside", Rect{X: 110, Y: 490, Width: 4, Height: 10}, true},
		{"touches right edge", Rect{X: 146, Y: 490, Width: 4, Height: 10}, false},
		{"touches left edge", Rect{X: 98, Y: 490, Width: 4, Height: 10}, false},
		{"one unit inside the left edge", Rect{X: 99, Y: 490, Width: 4, Height: 10}, true},
		{"touches bottom edge", Rect{X: 110, Y: 524, Width: 4, Height: 10}, false},
	}
	for _, tc := range cases {
		if got := enemy.Overlaps(tc.box); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.box.Overlaps(enemy); got != tc.want {
			t.Errorf("%s: Overlaps is not symmetric", tc.name)
		}
	}
}

func TestExplosionFrames(t *testing.T) {
	x := &Explosion{Animation: NewAnimation(3, 2)}
	if x.Done() || x.CurrentFrame() != 0 {
		t.Fatalf("fresh explosion: done=%v frame=%d", x.Done(), x.CurrentFrame())
	}
	x.Frame = 2
	if x.CurrentFrame() != 2 {
		t.Fatalf("frame = %d, want 2", x.CurrentFrame())
	}
	x.Frame = 3
	if !x.Done() || x.CurrentFrame() != -1 {
		t.Fatalf("finished explosion: done=%v frame=%d", x.Done(), x.CurrentFrame())
	}
	if !(&Explosion{}).Done() {
		t.Fatal("explosion without animation should be done")
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficulty(2 * time.Second)
	d.SpawnInterval = 700 * time.Millisecond
	d.BatchSize = 4
	d.Cycles = 12

	d.Reset(2 * time.Second)
	if d != NewDifficulty(2*time.Second) {
		t.Fatalf("after Reset: %+v", d)
	}
}

func TestPhaseString(t *testing.T) {
	for _, p := range []Phase{Idle, Running, Paused, GameOver} {
		if p.String() == "" {
			t.Errorf("phase %d has no name", p)
		}
	}
}
