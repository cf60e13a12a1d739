// cmd/termshooter/main.go
package main

import (
	"flag"
	"fmt"
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/audio"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/termui"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond
	holdTicks     = 6 // терминал не присылает отпускание клавиш
)

func main() {
	opts, err := config.LoadOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	configPath := flag.String("config", opts.ConfigPath, "TOML tuning file")
	presetsPath := flag.String("presets", "", "TOML file with extra difficulty presets")
	difficulty := flag.String("difficulty", opts.Difficulty, "difficulty preset (easy, normal, hard)")
	seed := flag.Int64("seed", opts.Seed, "random seed, 0 for time-based")
	mute := flag.Bool("mute", opts.Mute, "disable audio")
	logPath := flag.String("log", "", "write the log to this file")
	flag.Parse()

	// лог в терминал сломает экран
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	tuning, err := defs.ResolveTuning(*configPath, *presetsPath, *difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	session, err := app.NewSession(tuning, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(*mute)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer sound.Cleanup()
	session.Subscribe(sound)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	run(screen, session)
}

func run(screen tcell.Screen, session *app.Session) {
	renderer := termui.NewRenderer(screen)
	held := termui.NewHeldKeys(holdTicks)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(session, held, termui.Translate(ev)) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			left, right := held.Tick()
			session.SetMovement(left, right)
			session.Update(dt)
			renderer.Draw(session.Snapshot())
		}
	}
}

// handleKey applies one intent; it returns false when the player quits.
func handleKey(session *app.Session, held *termui.HeldKeys, intent termui.Intent) bool {
	switch intent {
	case termui.IntentQuit:
		return false
	case termui.IntentLeft, termui.IntentRight:
		held.Press(intent)
	case termui.IntentFire:
		session.Fire()
	case termui.IntentStart:
		if session.Phase() == component.GameOver {
			session.Restart()
		} else {
			session.Start()
		}
	case termui.IntentPause:
		session.TogglePause()
		held.Release()
	case termui.IntentRestart:
		if session.Restart() {
			held.Release()
		}
	case termui.IntentMusic:
		session.ToggleMusic()
	}
	return true
}
