package ui

import (
	"fmt"
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawOverlay затемняет поле и пишет подсказку для текущей фазы.
// В Running ничего не рисует.
func DrawOverlay(screen *ebiten.Image, snap app.Snapshot) {
	w, h := snap.Width, snap.Height
	cx, cy := w/2, h/2

	switch snap.Phase {
	case component.Idle:
		DrawTextScaled(screen, "SPACE SHOOTER", cx, cy-80, 4, config.TextLightColor)
		DrawTextScaled(screen, "press ENTER to start", cx, cy, 2, config.TextLightColor)
		DrawTextScaled(screen, "arrows move, space fires, P pauses, M music", cx, cy+40, 1, config.IdleStateColor)
	case component.Paused:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayShade, false)
		DrawTextScaled(screen, "PAUSED", cx, cy-20, 3, config.TextLightColor)
	case component.GameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.OverlayShade, false)
		DrawTextScaled(screen, "GAME OVER", cx, cy-60, 4, config.GameOverTextColor)
		DrawTextScaled(screen, fmt.Sprintf("score %d", snap.Score), cx, cy, 2, config.TextLightColor)
		DrawTextScaled(screen, "press R to restart", cx, cy+40, 2, config.TextLightColor)
	}
}
