package interfaces

import "go-space-shooter/internal/component"

// Controls — ввод игрока за один кадр. Left и Right описывают удержание,
// остальные поля означают нажатие в этом кадре.
type Controls struct {
	Left, Right bool
	Fire        bool
	Music       bool
	Restart     bool
	Pause       bool
}

// ApplyControls sends one frame of input to the session and reports whether
// the session ended up paused.
func ApplyControls(s SessionControl, c Controls) bool {
	s.SetMovement(c.Left, c.Right)
	if c.Fire {
		s.Fire()
	}
	if c.Music {
		s.ToggleMusic()
	}
	if c.Restart {
		s.Restart()
	}
	if c.Pause {
		s.TogglePause()
	}
	return s.Phase() == component.Paused
}
