// internal/interfaces/session.go
package interfaces

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
)

// SessionControl — то, что оболочки (окно, терминал) знают о сессии:
// интенты, шаг кадра и снимок для отрисовки.
type SessionControl interface {
	SetMovement(left, right bool) bool
	Fire() bool
	Start() bool
	TogglePause() bool
	Restart() bool
	ToggleMusic() bool
	Update(deltaTime float64)
	Phase() component.Phase
	Snapshot() app.Snapshot
}

var _ SessionControl = (*app.Session)(nil)
