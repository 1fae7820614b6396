package game

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/plus3/creeps/ecs"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is owned by the Coordinator for the lifetime of the process.
type GameState struct {
	Phase Phase
	Score int
	// Session identifies the current game in logs; empty until the first NewGame.
	Session string
	// Games counts NewGame calls.
	Games int
}

// Coordinator is the game state machine: Idle → Playing → GameOver → Playing → …
// Events that have no transition in the current phase are ignored.
type Coordinator struct {
	state GameState

	player        *Player
	startPosition Vector2
	hud           *HudStateController
	spawner       *MobSpawner
	lifecycle     *MobLifecycle
	commands      *ecs.Commands
	log           *slog.Logger

	startTimer *ecs.Timer
	scoreTimer *ecs.Timer
	mobTimer   *ecs.Timer

	hitPending bool
}

// State returns a copy of the game state.
func (c *Coordinator) State() GameState {
	return c.state
}

// Phase returns the current phase.
func (c *Coordinator) Phase() Phase {
	return c.state.Phase
}

// Score returns the score of the current or last game.
func (c *Coordinator) Score() int {
	return c.state.Score
}

// NewGame resets the session and enters Playing. Valid in every phase.
func (c *Coordinator) NewGame() {
	c.lifecycle.Clear()
	c.scoreTimer.Stop()
	c.mobTimer.Stop()
	c.hitPending = false

	c.state.Score = 0
	c.state.Session = uuid.NewString()
	c.state.Games++

	c.player.Start(c.startPosition)
	c.startTimer.Start()

	c.hud.UpdateScore(c.state.Score)
	c.hud.ShowMessage(MessageGetReady)

	c.setPhase(PhasePlaying)
}

// StartTimerElapsed begins scoring and spawning once the start delay is over.
func (c *Coordinator) StartTimerElapsed() {
	if !c.expect(PhasePlaying, "start_timer") {
		return
	}
	c.scoreTimer.Start()
	c.mobTimer.Start()
}

// ScoreTimerElapsed adds one point.
func (c *Coordinator) ScoreTimerElapsed() {
	if !c.expect(PhasePlaying, "score_tick") {
		return
	}
	c.state.Score++
	c.hud.UpdateScore(c.state.Score)
}

// MobTimerElapsed spawns a mob.
func (c *Coordinator) MobTimerElapsed() {
	if !c.expect(PhasePlaying, "mob_tick") {
		return
	}
	c.spawner.Tick()
}

// PlayerAreaEntered is the collision notifier's callback. The player hides at
// once; disabling its monitoring and the hit itself run after the current step.
func (c *Coordinator) PlayerAreaEntered() {
	if !c.player.MonitoringEnabled || c.hitPending {
		return
	}
	c.hitPending = true
	c.player.Hide()
	c.log.Info("player hit", "session", c.state.Session, "score", c.state.Score)

	games := c.state.Games
	c.commands.Defer(func() {
		if games != c.state.Games {
			// a NewGame ran in between and already re-armed the player
			return
		}
		c.player.MonitoringEnabled = false
		c.hitPending = false
		c.playerHit()
	})
}

func (c *Coordinator) playerHit() {
	if !c.expect(PhasePlaying, "player_hit") {
		return
	}
	c.GameOver()
}

// GameOver stops scoring and spawning and shows the game over message. It can
// be forced from any phase.
func (c *Coordinator) GameOver() {
	c.startTimer.Stop()
	c.scoreTimer.Stop()
	c.mobTimer.Stop()

	c.hud.ShowGameOver()
	c.setPhase(PhaseGameOver)
}

// StartButtonPressed forwards the press to the HUD, which emits StartGame after the step.
func (c *Coordinator) StartButtonPressed() {
	c.hud.StartPressed()
}

func (c *Coordinator) setPhase(phase Phase) {
	from := c.state.Phase
	c.state.Phase = phase
	c.log.Info("phase changed",
		"from", from.String(),
		"to", phase.String(),
		"session", c.state.Session,
		"score", c.state.Score,
	)
}

func (c *Coordinator) expect(phase Phase, event string) bool {
	if c.state.Phase == phase {
		return true
	}
	c.log.Debug("event ignored", "event", event, "phase", c.state.Phase.String())
	return false
}
