package ui

import (
	"fmt"
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD собирает верхнюю панель: счёт, жизни, уровень угрозы, индикатор
// фазы и кнопку паузы.
type HUD struct {
	Indicator *StateIndicator
	Pause     *PauseButton
	Lives     *LivesIndicator
	Wave      *WaveIndicator
	maxBatch  int
}

func NewHUD(width float64, maxBatch int) *HUD {
	w := float32(width)
	return &HUD{
		Indicator: NewStateIndicator(w-config.IndicatorOffsetX, 20, config.IndicatorRadius),
		Pause:     NewPauseButton(w-config.PauseButtonX, 20, config.PauseButtonSize, config.TextLightColor, config.RunningStateColor),
		Lives:     NewLivesIndicator(10, 30),
		Wave:      NewWaveIndicator(width/2, 8, 2),
		maxBatch:  maxBatch,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	DrawText(screen, fmt.Sprintf("SCORE %d", snap.Score), 10, 10, config.TextLightColor)
	h.Lives.Draw(screen, snap.Lives, snap.MaxLives)
	h.Wave.Draw(screen, snap.Difficulty, h.maxBatch)
	h.Indicator.Draw(screen, snap.Phase)
	h.Pause.Draw(screen, snap.Phase == component.Paused)

	music := "M: music on"
	if !snap.MusicOn {
		music = "M: music off"
	}
	DrawText(screen, music, 10, int(snap.Height)-20, config.IdleStateColor)
}
