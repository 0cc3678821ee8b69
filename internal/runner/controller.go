package runner

import (
	"github.com/vovakirdan/kingrun/internal/audio"
	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/core"
	"github.com/vovakirdan/kingrun/internal/quiz"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// EventKind identifies something that happened during a command or tick.
type EventKind int

const (
	EventStarted EventKind = iota
	EventJumped
	EventSpeedUp
	EventGameOver
	EventRestarted
	EventLifeGained
	EventPaused
	EventResumed
)

// Event is emitted by the controller for the platform layer (score saving,
// logging). Values are taken after the change was applied.
type Event struct {
	Kind  EventKind
	Score int
	Lives int
	Speed int
}

// Controller drives one game. Commands are plain method calls and report
// whether they had an effect; a command that is not valid in the current phase
// is a no-op.
//
// The controller is not safe for concurrent use. The host calls Tick from its
// timer and the commands from its input handler on the same goroutine.
type Controller struct {
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	recovery   *quiz.Recovery
	sound      audio.Player
	spawn      Obstacle

	phase  Phase
	paused bool
	player PlayerState
	field  Field
	run    RunState
	ticks  int

	events []Event
}

// NewController creates a controller in the Idle phase. A nil sound player is
// replaced with audio.Silent.
func NewController(cfg config.RunnerConfig, recovery *quiz.Recovery, sound audio.Player) *Controller {
	if sound == nil {
		sound = audio.Silent{}
	}
	return &Controller{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg),
		recovery:   recovery,
		sound:      sound,
		spawn:      Template(cfg),
		phase:      PhaseIdle,
		player:     Grounded(cfg.World.GroundY),
		field:      NewField(cfg.Obstacles.BaseSpeed, cfg.Obstacles.SpawnGap),
		run:        RunState{Lives: cfg.Run.Lives},
	}
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.RunnerConfig {
	return c.cfg
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Start begins ticking from the Idle phase and starts the background track.
func (c *Controller) Start() bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.phase = PhaseRunning
	c.run.Running = true
	c.sound.PlayLoop(audio.TrackBackground)
	c.emit(EventStarted)
	return true
}

// Jump launches the player. Valid only while running, unpaused and grounded.
func (c *Controller) Jump() bool {
	if c.phase != PhaseRunning || c.paused {
		return false
	}
	p, ok := Jump(c.player, c.cfg.Physics)
	if !ok {
		return false
	}
	c.player = p
	c.sound.PlayOnce(audio.TrackJump)
	c.emit(EventJumped)
	return true
}

// TogglePause freezes or resumes a running game.
func (c *Controller) TogglePause() bool {
	if c.phase != PhaseRunning {
		return false
	}
	c.paused = !c.paused
	if c.paused {
		c.sound.Stop(audio.TrackBackground)
		c.emit(EventPaused)
	} else {
		c.sound.PlayLoop(audio.TrackBackground)
		c.emit(EventResumed)
	}
	return true
}

// CanRestart reports whether Restart would succeed.
func (c *Controller) CanRestart() bool {
	return c.phase == PhaseGameOver && c.run.Lives > 0
}

// Restart spends one life to start over after a game over. The player,
// obstacles and score are reset; the scroll speed is kept.
func (c *Controller) Restart() bool {
	if !c.CanRestart() {
		return false
	}
	c.run.Lives--
	c.run.Score = 0
	c.run.Running = true
	c.player = Grounded(c.cfg.World.GroundY)
	c.field = c.field.Cleared()
	c.ticks = 0
	c.paused = false
	c.phase = PhaseRunning
	c.sound.PlayLoop(audio.TrackBackground)
	c.emit(EventRestarted)
	return true
}

// Tick advances a running game by one frame: gravity, obstacle movement,
// collision, then score. When the collision ends the game the losing tick
// still scores unless scoring.count_losing_tick is off.
func (c *Controller) Tick() {
	if c.phase != PhaseRunning || c.paused {
		return
	}
	c.ticks++

	c.player = ApplyGravity(c.player, c.cfg.Physics, c.cfg.World.GroundY)
	c.field = Advance(c.field, c.spawn)

	lost := c.field.Collides(PlayerRect(c.player, c.cfg.Player))
	if lost {
		c.phase = PhaseGameOver
		c.run.Running = false
		c.sound.Stop(audio.TrackBackground)
		if !c.cfg.Scoring.CountLosingTick {
			c.emit(EventGameOver)
			return
		}
	}

	var sped bool
	c.run, c.field, sped = Tick(c.run, c.field, c.difficulty)
	if sped {
		c.emit(EventSpeedUp)
	}
	if lost {
		c.emit(EventGameOver)
	}
}

// Step applies the commands in the frame and then advances one tick.
// ActionRecover and ActionQuit are left to the caller, which owns the quiz UI.
func (c *Controller) Step(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		c.Start()
	}
	if in.Has(core.ActionRestart) {
		c.Restart()
	}
	if in.Has(core.ActionPause) {
		c.TogglePause()
	}
	if in.Has(core.ActionJump) {
		c.Jump()
	}
	c.Tick()
}

// CanRecover reports whether the quiz may be offered: the game is over and no
// lives remain.
func (c *Controller) CanRecover() bool {
	return c.phase == PhaseGameOver && c.run.Lives == 0 && c.recovery != nil
}

// BeginRecovery draws a quiz question. It returns nil when recovery is not
// available or the catalog is empty.
func (c *Controller) BeginRecovery() *quiz.Attempt {
	if !c.CanRecover() {
		return nil
	}
	return c.recovery.Begin()
}

// CompleteRecovery grades the answer and grants a life when it is correct.
// A wrong answer changes nothing. The second return value is false when
// recovery was not available, in which case the outcome is empty.
func (c *Controller) CompleteRecovery(a *quiz.Attempt, choice int) (quiz.Outcome, bool) {
	if a == nil || !c.CanRecover() {
		return quiz.Outcome{}, false
	}
	out := a.Answer(choice)
	if out.Granted {
		c.run.Lives++
		c.emit(EventLifeGained)
	}
	return out, true
}

// Recover runs a whole attempt synchronously, asking choose for the option
// index (or quiz.NoAnswer).
func (c *Controller) Recover(choose func(*quiz.Attempt) int) (quiz.Outcome, bool) {
	a := c.BeginRecovery()
	if a == nil {
		return quiz.Outcome{}, false
	}
	return c.CompleteRecovery(a, choose(a))
}

// Events returns the events emitted since the previous call and clears them.
func (c *Controller) Events() []Event {
	ev := c.events
	c.events = nil
	return ev
}

func (c *Controller) emit(kind EventKind) {
	c.events = append(c.events, Event{
		Kind:  kind,
		Score: c.run.Score,
		Lives: c.run.Lives,
		Speed: c.field.Speed,
	})
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Phase      Phase
	Paused     bool
	Player     PlayerState
	PlayerRect core.Rect
	Obstacles  []Obstacle
	Score      int
	Lives      int
	Speed      int
	Ticks      int
	CanRestart bool
	CanRecover bool
}

// Snapshot returns the current state. The obstacle slice is a copy.
func (c *Controller) Snapshot() Snapshot {
	obs := make([]Obstacle, len(c.field.Obstacles))
	copy(obs, c.field.Obstacles)

	return Snapshot{
		Phase:      c.phase,
		Paused:     c.paused,
		Player:     c.player,
		PlayerRect: PlayerRect(c.player, c.cfg.Player),
		Obstacles:  obs,
		Score:      c.run.Score,
		Lives:      c.run.Lives,
		Speed:      c.field.Speed,
		Ticks:      c.ticks,
		CanRestart: c.CanRestart(),
		CanRecover: c.CanRecover(),
	}
}
