package termui

import (
	"fmt"
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const hudRows = 1 // верхняя строка под счёт и жизни

var (
	hudStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	starStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	bulletStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	enemyShotStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	boomStyle      = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	overStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	enemyStyles    = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed),
		tcell.StyleDefault.Foreground(tcell.ColorOrange),
		tcell.StyleDefault.Foreground(tcell.ColorPurple),
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
	boomFrames = []rune{'+', '*', 'x', '#', '*', '.', '.', ' '}
)

// Renderer рисует снимок сессии символами в терминале. Поле сжимается
// до размеров экрана под строкой HUD.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Project maps a field point to a terminal cell below the HUD row.
func Project(x, y, fieldW, fieldH float64, cols, rows int) (int, int) {
	playRows := rows - hudRows
	if playRows < 1 || cols < 1 || fieldW <= 0 || fieldH <= 0 {
		return -1, -1
	}
	cx := int(x / fieldW * float64(cols))
	cy := int(y/fieldH*float64(playRows)) + hudRows
	return cx, cy
}

func (r *Renderer) Draw(snap app.Snapshot) {
	r.screen.Clear()
	cols, rows := r.screen.Size()

	put := func(e component.Renderable, ch rune, style tcell.Style) {
		cx, cy := Project(e.X+e.Width/2, e.Y+e.Height/2, snap.Width, snap.Height, cols, rows)
		if cx < 0 || cx >= cols || cy < hudRows || cy >= rows {
			return
		}
		r.screen.SetContent(cx, cy, ch, nil, style)
	}

	for _, p := range snap.Particles {
		put(p, '.', starStyle)
	}
	for _, b := range snap.Bullets {
		ch := '|'
		switch {
		case b.Angle < 0:
			ch = '\\'
		case b.Angle > 0:
			ch = '/'
		}
		put(b, ch, bulletStyle)
	}
	for _, b := range snap.EnemyBullets {
		put(b, '!', enemyShotStyle)
	}
	for _, e := range snap.Enemies {
		put(e, 'V', enemyStyles[e.Sprite%len(enemyStyles)])
	}
	if snap.PlayerAlive {
		put(snap.Player, 'A', playerStyle)
	}
	for _, x := range snap.Explosions {
		if x.Sprite >= 0 {
			put(x, boomFrames[x.Sprite%len(boomFrames)], boomStyle)
		}
	}

	r.drawHUD(snap, cols)
	r.drawOverlay(snap, cols, rows)
	r.screen.Show()
}

func (r *Renderer) drawHUD(snap app.Snapshot, cols int) {
	lives := strings.Repeat("A", snap.Lives) + strings.Repeat("-", max(snap.MaxLives-snap.Lives, 0))
	line := fmt.Sprintf("SCORE %-7d LIVES %s  WAVE %d  RUN %d  [%s]", snap.Score, lives, snap.Difficulty.BatchSize, snap.Run, snap.Phase)
	r.text(0, 0, line, hudStyle, cols)
}

func (r *Renderer) drawOverlay(snap app.Snapshot, cols, rows int) {
	var lines []string
	style := hudStyle
	switch snap.Phase {
	case component.Idle:
		lines = []string{"SPACE SHOOTER", "enter: start  arrows: move  space: fire", "p: pause  m: music  q: quit"}
	case component.Paused:
		lines = []string{"PAUSED", "p to resume"}
	case component.GameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("score %d", snap.Score), "r to restart, q to quit"}
		style = overStyle
	}
	top := rows/2 - len(lines)/2
	for i, l := range lines {
		r.text((cols-len(l))/2, top+i, l, style, cols)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style, cols int) {
	for i, ch := range s {
		if x+i < 0 || x+i >= cols {
			continue
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
