package audio

import (
	"fmt"
	"go-space-shooter/internal/event"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	musicBeat   = 400 * time.Millisecond
	musicVolume = 0.5
)

// SoundManager проигрывает звуковые сигналы сессии. Если звук недоступен,
// менеджер работает молча: ошибки аудио не доходят до симуляции.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	muted       bool
	plays       int

	musicWanted bool // выбор игрока, меняется только MusicToggle
	musicHeld   bool // сессия на паузе или закончена
}

// NewSoundManager creates a new sound manager
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer:       &beep.Mixer{},
		muted:       muted,
		musicWanted: true,
	}
}

// Initialize sets up the speaker. On failure the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		sm.music.Paused = true
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.FireWeapon:
		sm.play(beep.Take(sampleRate.N(120*time.Millisecond),
			NewSweepGenerator(sampleRate, 1400, 350, 120*time.Millisecond)))
	case event.EnemyFire:
		sm.playTone(520, 80*time.Millisecond, 0.15)
	case event.EnemyDestroyed:
		sm.play(beep.Take(sampleRate.N(350*time.Millisecond),
			NewNoiseGenerator(sampleRate, 9, 70, time.Now().UnixNano())))
	case event.PlayerHit:
		sm.playTone(140, 200*time.Millisecond, 0.4)
	case event.PlayerDestroyed:
		sm.play(beep.Take(sampleRate.N(900*time.Millisecond),
			NewNoiseGenerator(sampleRate, 3, 45, time.Now().UnixNano())))
	case event.MusicStart:
		sm.startMusic()
	case event.MusicToggle:
		on, _ := e.Data.(bool)
		sm.updateMusic(func() { sm.musicWanted = on })
	case event.SessionPaused, event.GameOver:
		sm.updateMusic(func() { sm.musicHeld = true })
	case event.SessionResumed, event.SessionStarted:
		sm.updateMusic(func() { sm.musicHeld = false })
	}
}

// Plays returns how many one-shot sounds were sent to the mixer.
func (sm *SoundManager) Plays() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.plays
}

func (sm *SoundManager) playTone(freq float64, d time.Duration, vol float64) {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("Audio: %v", err)
		return
	}
	sm.play(newVolume(beep.Take(sampleRate.N(d), tone), vol))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	defer sm.recoverSilent()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.plays++
}

func (sm *SoundManager) startMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music != nil {
		return
	}
	defer sm.recoverSilent()
	// генератор бесконечный, повтор не нужен
	sm.musicWanted = true
	sm.music = &beep.Ctrl{
		Streamer: newVolume(NewMusicGenerator(sampleRate, musicBeat), musicVolume),
		Paused:   sm.musicHeld,
	}
	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// updateMusic применяет change и ставит музыку на паузу, если игрок её
// выключил или сессия не идёт. Пауза сессии не трогает выбор игрока.
func (sm *SoundManager) updateMusic(change func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	change()
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = !sm.musicWanted || sm.musicHeld
	speaker.Unlock()
}

// MusicPlaying reports whether the music stream is present and unpaused.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}

// recoverSilent переводит менеджер в тихий режим, если проигрывание упало.
func (sm *SoundManager) recoverSilent() {
	if r := recover(); r != nil {
		log.Printf("Audio failed, switching to silent mode: %v", r)
		sm.initialized = false
	}
}

// newVolume wraps s in a linear volume; vol <= 0 is silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
