// cmd/game/main.go
package main

import (
	"flag"
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/audio"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/state"
	"go-space-shooter/internal/ui"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	opts, err := config.LoadOptions()
	if err != nil {
		log.Fatal(err)
	}

	configPath := flag.String("config", opts.ConfigPath, "TOML tuning file")
	presetsPath := flag.String("presets", "", "TOML file with extra difficulty presets")
	difficulty := flag.String("difficulty", opts.Difficulty, "difficulty preset (easy, normal, hard)")
	seed := flag.Int64("seed", opts.Seed, "random seed, 0 for time-based")
	mute := flag.Bool("mute", opts.Mute, "disable audio")
	pprofAddr := flag.String("pprof", opts.PprofAddr, "address for the pprof server, empty to disable")
	dumpConfig := flag.String("dump-config", "", "write the effective tuning to this file and exit")
	flag.Parse()

	tuning, err := defs.ResolveTuning(*configPath, *presetsPath, *difficulty)
	if err != nil {
		log.Fatal(err)
	}
	if *dumpConfig != "" {
		if err := config.SaveTuning(*dumpConfig, tuning); err != nil {
			log.Fatal(err)
		}
		log.Printf("Tuning written to %s", *dumpConfig)
		return
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	session, err := app.NewSession(tuning, *seed)
	if err != nil {
		log.Fatal(err)
	}

	sound := audio.NewSoundManager(*mute)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer sound.Cleanup()
	session.Subscribe(sound)

	sprites := assets.NewSpriteManager(int(tuning.Enemy.Width), int(tuning.Enemy.Height))
	sprites.Load(tuning.Enemy.Sprites, tuning.Effects.ExplosionFrames)
	defer sprites.Cleanup()

	shell := &state.Shell{
		Session:  session,
		Renderer: ui.NewFieldRenderer(sprites),
		HUD:      ui.NewHUD(tuning.Field.Width, tuning.Spawn.MaxBatch),
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, shell))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          int(tuning.Field.Width),
		height:         int(tuning.Field.Height),
	}
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Space Shooter")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
