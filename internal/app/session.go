// internal/app/session.go
package app

import (
	"fmt"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"
	"log"
	"time"
)

// Input — удерживаемые клавиши движения. Выстрел приходит отдельным интентом.
type Input struct {
	Left, Right bool
}

// Session holds the whole state of one game and runs its simulation.
// It is not safe for concurrent use: every call must come from the loop
// that drives the ticks.
type Session struct {
	Store           *entity.Store
	State           *component.GameState
	Difficulty      component.Difficulty
	Tuning          config.Tuning
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	StateSystem        *system.StateSystem
	SpawnSystem        *system.SpawnSystem
	WeaponSystem       *system.WeaponSystem
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	ScoreSystem        *system.ScoreSystem
	VisualEffectSystem *system.VisualEffectSystem

	scheduler  *system.Scheduler
	spawnTimer *system.Timer
	fireTimer  *system.Timer

	clock    time.Duration // игровое время, идёт только в Running
	ticks    uint64
	input    Input
	lastFire time.Duration
	hasFired bool
	musicOn  bool
}

// NewSession validates the tuning and builds a session in the Idle phase.
// A seed of 0 picks a time-based seed.
func NewSession(tuning config.Tuning, seed int64) (*Session, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	store := entity.NewStore()
	state := &component.GameState{Phase: component.Idle}
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	s := &Session{
		Store:           store,
		State:           state,
		Tuning:          tuning,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		scheduler:       system.NewScheduler(),
	}
	s.StateSystem = system.NewStateSystem(state, eventDispatcher)
	s.SpawnSystem = system.NewSpawnSystem(store, tuning, rng, eventDispatcher)
	s.WeaponSystem = system.NewWeaponSystem(store, tuning, eventDispatcher)
	s.MovementSystem = system.NewMovementSystem(store, tuning, rng)
	s.CollisionSystem = system.NewCollisionSystem(store, tuning, eventDispatcher)
	s.ScoreSystem = system.NewScoreSystem(state)
	s.VisualEffectSystem = system.NewVisualEffectSystem(store, tuning)
	s.Difficulty = s.SpawnSystem.InitialDifficulty()

	s.spawnTimer = s.scheduler.Add("spawn", s.Difficulty.SpawnInterval, 0)
	s.fireTimer = s.scheduler.Add("enemy-fire", tuning.FireCheckInterval(), 0)

	eventDispatcher.Subscribe(event.EnemyDestroyed, s.ScoreSystem)
	eventDispatcher.Subscribe(event.EnemyDestroyed, s.VisualEffectSystem)
	eventDispatcher.Subscribe(event.PlayerDestroyed, s.VisualEffectSystem)
	eventDispatcher.Subscribe(event.PlayerDestroyed, &SessionEventListener{session: s})

	s.resetPlayer()
	s.MovementSystem.SeedParticles()
	log.Printf("Session created: field %vx%v, seed %d", tuning.Field.Width, tuning.Field.Height, rng.Seed())
	return s, nil
}

// SessionEventListener переводит сессию в GameOver, когда игрок уничтожен.
type SessionEventListener struct {
	session *Session
}

// OnEvent реализует интерфейс event.Listener.
func (l *SessionEventListener) OnEvent(e event.Event) {
	if e.Type == event.PlayerDestroyed {
		l.session.StateSystem.Transition(component.GameOver)
	}
}

func (s *Session) resetPlayer() {
	p := s.Tuning.Player
	*s.Store.Player = component.Player{
		Position: component.Position{
			X: (s.Tuning.Field.Width - p.Width) / 2,
			Y: s.Tuning.Field.Height - p.BottomOffset,
		},
		Size:     component.Size{Width: p.Width, Height: p.Height},
		Speed:    p.Speed,
		Lives:    p.Lives,
		MaxLives: p.Lives,
	}
}

// Update advances the session by one frame. deltaTime is in seconds and is
// clamped to config.MaxDeltaTime so a stalled frame does not skip the timers.
func (s *Session) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	s.Tick(time.Duration(deltaTime * float64(time.Second)))
}

// Tick runs one simulation step. Movement is integrated per tick; dt only
// advances the clock the spawn and fire timers are polled against.
func (s *Session) Tick(dt time.Duration) {
	switch s.State.Phase {
	case component.Paused:
		return
	case component.Running:
		s.clock += dt
		s.ticks++
		s.pollTimers()
		s.step()
	default:
		// косметика идёт и в Idle, и после конца игры
		s.MovementSystem.UpdateParticles()
	}
	s.VisualEffectSystem.Update()
}

// pollTimers runs the spawn and fire schedules whose deadlines have elapsed.
// Their output is visible to the step that follows in the same tick.
func (s *Session) pollTimers() {
	if s.spawnTimer.Poll(s.clock) {
		s.SpawnSystem.SpawnCycle(&s.Difficulty)
		s.spawnTimer.SetInterval(s.Difficulty.SpawnInterval)
		s.spawnTimer.Rearm(s.clock)
	}
	if s.fireTimer.Poll(s.clock) {
		s.SpawnSystem.EnemyFire(s.State.Score)
	}
}

func (s *Session) step() {
	s.MovementSystem.MovePlayer(s.input.Left, s.input.Right)
	s.MovementSystem.UpdateParticles()
	s.MovementSystem.UpdateBullets()
	s.MovementSystem.UpdateEnemyBullets()
	s.MovementSystem.UpdateEnemies()
	s.MovementSystem.Prune()
	s.CollisionSystem.Resolve()

	if s.Store.Player.Lives <= 0 {
		s.StateSystem.Transition(component.GameOver)
		s.VisualEffectSystem.StartPlayerExplosion()
	}
}

// SetMovement stores the held-key state. It is rejected after game over.
func (s *Session) SetMovement(left, right bool) bool {
	if s.State.Phase == component.GameOver {
		s.input = Input{}
		return false
	}
	s.input = Input{Left: left, Right: right}
	return true
}

// Fire выпускает пули игрока, если сессия идёт и кулдаун истёк.
func (s *Session) Fire() bool {
	if s.State.Phase != component.Running {
		return false
	}
	if s.hasFired && s.clock-s.lastFire < s.Tuning.FireCooldown() {
		return false
	}
	s.WeaponSystem.Fire(s.State.Score)
	s.lastFire = s.clock
	s.hasFired = true
	return true
}

// Start moves Idle to Running. Music is started once per process.
func (s *Session) Start() bool {
	if s.State.Phase != component.Idle || !s.StateSystem.Transition(component.Running) {
		return false
	}
	s.scheduler.Reset(s.clock)
	if !s.State.MusicStarted {
		s.State.MusicStarted = true
		s.musicOn = true
		s.EventDispatcher.Dispatch(event.Event{Type: event.MusicStart})
	}
	log.Printf("Session started, run %d, spawn interval %v", s.scheduler.Generation(), s.Difficulty.SpawnInterval)
	return true
}

// TogglePause switches between Running and Paused. Nothing moves while
// paused, so resuming continues exactly where the session stopped.
func (s *Session) TogglePause() bool {
	switch s.State.Phase {
	case component.Running:
		return s.StateSystem.Transition(component.Paused)
	case component.Paused:
		return s.StateSystem.Transition(component.Running)
	}
	return false
}

// Restart is legal only after game over. It resets the entities, score,
// lives, difficulty ramp and cooldown and starts a new run; Start cancels
// every pending timer deadline.
func (s *Session) Restart() bool {
	if !s.StateSystem.Transition(component.Idle) {
		return false
	}
	s.Store.Clear()
	s.resetPlayer()
	s.State.Score = 0
	s.Difficulty.Reset(s.Tuning.SpawnInterval())
	s.spawnTimer.SetInterval(s.Difficulty.SpawnInterval)
	s.input = Input{}
	s.hasFired = false
	s.lastFire = 0
	log.Printf("Session restarted")
	return s.Start()
}

// ToggleMusic включает и выключает музыку. После конца игры игнорируется.
func (s *Session) ToggleMusic() bool {
	if s.State.Phase == component.GameOver {
		return false
	}
	s.musicOn = !s.musicOn
	s.EventDispatcher.Dispatch(event.Event{Type: event.MusicToggle, Data: s.musicOn})
	return true
}

func (s *Session) Phase() component.Phase {
	return s.State.Phase
}

func (s *Session) MusicOn() bool {
	return s.musicOn
}

// Clock возвращает игровое время сессии.
func (s *Session) Clock() time.Duration {
	return s.clock
}

// Ticks returns how many gameplay steps have run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Subscribe attaches a shell listener (audio, logging) to session events.
func (s *Session) Subscribe(listener event.Listener, types ...event.EventType) {
	if len(types) == 0 {
		s.EventDispatcher.SubscribeAll(listener)
		return
	}
	for _, t := range types {
		s.EventDispatcher.Subscribe(t, listener)
	}
}
