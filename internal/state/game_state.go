// internal/state/game_state.go
package state

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — идущая игра и экран конца игры.
type GameState struct {
	sm    *StateMachine
	shell *Shell
}

var _ State = (*GameState)(nil)

func NewGameState(sm *StateMachine, shell *Shell) *GameState {
	return &GameState{sm: sm, shell: shell}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	s := g.shell.Session
	g.handleMouse()

	paused := interfaces.ApplyControls(s, interfaces.Controls{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Music:   inpututil.IsKeyJustPressed(ebiten.KeyM),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	})
	if paused {
		g.sm.SetState(NewPauseState(g.sm, g.shell, g))
		return
	}
	s.Update(deltaTime)
}

// handleMouse: клик по индикатору перезапускает игру после поражения,
// клик по кнопке ставит паузу.
func (g *GameState) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	hud := g.shell.HUD
	switch {
	case hud.Indicator.IsClicked(x, y):
		hud.Indicator.HandleClick()
		g.shell.Session.Restart()
	case hud.Pause.IsClicked(x, y):
		if hud.Pause.HandleClick(config.ClickCooldown * time.Millisecond) {
			g.shell.Session.TogglePause()
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.shell.Session.Snapshot()
	g.shell.Renderer.Draw(screen, snap)
	g.shell.HUD.Draw(screen, snap)
	ui.DrawOverlay(screen, snap)
}

func (g *GameState) Exit() {}
