// internal/state/pause_state.go
package state

import (
	"go-space-shooter/internal/config"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру с затемнением. Сессия в это время
// не обновляется.
type PauseState struct {
	sm            *StateMachine
	shell         *Shell
	previousState State
}

func NewPauseState(sm *StateMachine, shell *Shell, prevState State) *PauseState {
	return &PauseState{sm: sm, shell: shell, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.shell.HUD.Pause.IsClicked(x, y) && s.shell.HUD.Pause.HandleClick(config.ClickCooldown*time.Millisecond) {
			unpause = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.shell.Session.ToggleMusic()
	}

	if unpause && s.shell.Session.TogglePause() {
		s.sm.SetState(s.previousState)
	}
}

// Draw делегирует отрисовку игре: оверлей паузы рисует она сама по фазе.
func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
}

func (s *PauseState) Exit() {}
