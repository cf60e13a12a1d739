package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator — синус с экспоненциальным спадом частоты и громкости,
// звук выстрела игрока.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	duration float64 // секунды
	pos      int
	phase    float64
}

// NewSweepGenerator creates a tone that slides from one frequency to another.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, duration: d.Seconds()}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t/g.duration, 1)
		freq := g.from * math.Pow(g.to/g.from, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.25 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator generates a decaying noise burst with a low rumble.
type NoiseGenerator struct {
	sr     beep.SampleRate
	decay  float64
	rumble float64
	pos    int
	seed   int64
}

// NewNoiseGenerator: decay — скорость затухания в 1/с, rumble — частота гула.
func NewNoiseGenerator(sr beep.SampleRate, decay, rumble float64, seed int64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, decay: decay, rumble: rumble, seed: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := envelope * (0.3*noise + 0.3*math.Sin(2*math.Pi*g.rumble*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// musicNotes — басовая линия фоновой музыки, по одной ноте на долю.
var musicNotes = []float64{55, 55, 82.41, 73.42, 55, 65.41, 73.42, 82.41}

// MusicGenerator plays a looping bass arpeggio with a kick on every beat.
type MusicGenerator struct {
	sr   beep.SampleRate
	beat int
	pos  int
}

func NewMusicGenerator(sr beep.SampleRate, beat time.Duration) *MusicGenerator {
	return &MusicGenerator{sr: sr, beat: sr.N(beat)}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.beat / 6
	for i := range samples {
		beatPos := g.pos % g.beat
		note := musicNotes[(g.pos/g.beat)%len(musicNotes)]
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		bass := 0.12 * math.Sin(2*math.Pi*note*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
