// internal/state/menu_state.go
package state

import (
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — экран до первого старта. Звёзды летят, игра ждёт Enter.
type MenuState struct {
	sm    *StateMachine
	shell *Shell
}

func NewMenuState(sm *StateMachine, shell *Shell) *MenuState {
	return &MenuState{sm: sm, shell: shell}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.shell.Session.Update(deltaTime)

	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.shell.HUD.Indicator.IsClicked(x, y) {
			m.shell.HUD.Indicator.HandleClick()
			start = true
		}
	}
	if start && m.shell.Session.Start() {
		m.sm.SetState(NewGameState(m.sm, m.shell))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	snap := m.shell.Session.Snapshot()
	m.shell.Renderer.Draw(screen, snap)
	ui.DrawOverlay(screen, snap)
	m.shell.HUD.Indicator.Draw(screen, snap.Phase)
}

func (m *MenuState) Exit() {}
