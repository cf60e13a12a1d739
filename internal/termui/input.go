package termui

import "github.com/gdamore/tcell/v2"

// Intent — действие игрока, прочитанное из события терминала.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentFire
	IntentStart
	IntentPause
	IntentRestart
	IntentMusic
	IntentQuit
)

// Translate maps a terminal key event to an intent.
func Translate(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return IntentLeft
	case tcell.KeyRight:
		return IntentRight
	case tcell.KeyEnter:
		return IntentStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return IntentFire
		case 'a', 'h':
			return IntentLeft
		case 'd', 'l':
			return IntentRight
		case 'p':
			return IntentPause
		case 'r':
			return IntentRestart
		case 'm':
			return IntentMusic
		case 'q':
			return IntentQuit
		}
	}
	return IntentNone
}

// HeldKeys emulates held movement keys. A terminal reports only key
// repeats, so each press keeps the direction active for HoldTicks ticks.
type HeldKeys struct {
	HoldTicks   int
	left, right int
}

func NewHeldKeys(holdTicks int) *HeldKeys {
	return &HeldKeys{HoldTicks: holdTicks}
}

// Press отмечает нажатие; противоположное направление сбрасывается.
func (h *HeldKeys) Press(i Intent) {
	switch i {
	case IntentLeft:
		h.left, h.right = h.HoldTicks, 0
	case IntentRight:
		h.right, h.left = h.HoldTicks, 0
	}
}

// Tick returns the current held state and ages it by one tick.
func (h *HeldKeys) Tick() (left, right bool) {
	left, right = h.left > 0, h.right > 0
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return left, right
}

func (h *HeldKeys) Release() {
	h.left, h.right = 0, 0
}
