package game

import "math"

const PlayerSpeed = 400.0

// Directional actions read from the InputSource every frame.
const (
	ActionRight = "ui_right"
	ActionLeft  = "ui_left"
	ActionDown  = "ui_down"
	ActionUp    = "ui_up"
)

// InputSource reports whether a named action is currently held.
type InputSource interface {
	IsActionPressed(action string) bool
}

// Player is the entity the user steers. BoundsMax is the viewport size; after
// every motion update Position lies inside [0, BoundsMax] on both axes.
type Player struct {
	Position  Vector2
	Velocity  Vector2
	BoundsMax Vector2
	Radius    float64

	// MonitoringEnabled gates collision reporting for the player's area.
	MonitoringEnabled bool
	Visible           bool
}

// Start places the player at pos, shows it and re-arms collision monitoring.
func (p *Player) Start(pos Vector2) {
	p.Position = pos.Clamp(Vector2{}, p.BoundsMax)
	p.Velocity = Vector2{}
	p.Visible = true
	p.MonitoringEnabled = true
}

func (p *Player) Hide() {
	p.Visible = false
}

// Facing is the animation the player shows while moving.
type Facing int

const (
	FacingNone Facing = iota
	FacingRight
	FacingUp
)

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingUp:
		return "up"
	default:
		return "none"
	}
}

// MotionEvent is what the presentation sink gets from each motion update.
// Signs are -1, 0 or +1 per axis.
type MotionEvent struct {
	IsMoving       bool
	HorizontalSign int
	VerticalSign   int
}

// Facing classifies the event; horizontal motion wins over vertical.
func (e MotionEvent) Facing() Facing {
	switch {
	case e.HorizontalSign != 0:
		return FacingRight
	case e.VerticalSign != 0:
		return FacingUp
	default:
		return FacingNone
	}
}

// FlipH mirrors the right-facing animation for leftward motion.
func (e MotionEvent) FlipH() bool {
	return e.HorizontalSign < 0
}

// FlipV mirrors the up-facing animation for downward motion.
func (e MotionEvent) FlipV() bool {
	return e.HorizontalSign == 0 && e.VerticalSign > 0
}

// PlayerMotionController turns directional intent into player movement.
type PlayerMotionController struct {
	player *Player
	input  InputSource
	sink   PresentationSink
	speed  float64
}

// NewPlayerMotionController binds player to input. A nil sink discards cues and a
// non-positive speed uses PlayerSpeed.
func NewPlayerMotionController(player *Player, input InputSource, sink PresentationSink, speed float64) *PlayerMotionController {
	if sink == nil {
		sink = NopSink{}
	}
	if speed <= 0 {
		speed = PlayerSpeed
	}
	return &PlayerMotionController{
		player: player,
		input:  input,
		sink:   sink,
		speed:  speed,
	}
}

// Update advances the player by delta seconds and reports the motion to the sink.
func (c *PlayerMotionController) Update(delta float64) MotionEvent {
	if !(delta > 0) || math.IsInf(delta, 0) {
		delta = 0
	}

	var direction Vector2
	if c.input.IsActionPressed(ActionRight) {
		direction.X += 1
	}
	if c.input.IsActionPressed(ActionLeft) {
		direction.X -= 1
	}
	if c.input.IsActionPressed(ActionDown) {
		direction.Y += 1
	}
	if c.input.IsActionPressed(ActionUp) {
		direction.Y -= 1
	}

	p := c.player
	p.Velocity = direction.Normalized().Scale(c.speed)
	p.Position = p.Position.Add(p.Velocity.Scale(delta)).Clamp(Vector2{}, p.BoundsMax)

	event := MotionEvent{
		IsMoving:       p.Velocity.Length() > 0,
		HorizontalSign: sign(p.Velocity.X),
		VerticalSign:   sign(p.Velocity.Y),
	}
	c.sink.PlayerMotion(event)
	return event
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
