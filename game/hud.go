package game

import (
	"log/slog"
	"strconv"

	"github.com/plus3/creeps/ecs"
)

const (
	MessageDefault  = "Dodge the Creeps!"
	MessageGetReady = "Get Ready"
	MessageGameOver = "Game Over"
)

// HudState is everything the HUD shows. Only HudStateController mutates it.
type HudState struct {
	Message               string
	MessageVisible        bool
	DefaultMessagePending bool
	ScoreText             string
	StartVisible          bool
}

// HudStateController drives the messages, score text and start button.
type HudStateController struct {
	state        HudState
	messageTimer *ecs.Timer
	commands     *ecs.Commands
	log          *slog.Logger

	onStartGame []func()
}

// NewHudStateController starts with the default prompt and the start button showing.
// The controller takes ownership of messageTimer: it is made one-shot and its
// OnTimeout is replaced with ResetMessage. Callers only register it with a TimerSystem.
func NewHudStateController(messageTimer *ecs.Timer, commands *ecs.Commands, log *slog.Logger) *HudStateController {
	h := &HudStateController{
		state: HudState{
			Message:        MessageDefault,
			MessageVisible: true,
			ScoreText:      "0",
			StartVisible:   true,
		},
		messageTimer: messageTimer,
		commands:     commands,
		log:          log,
	}
	messageTimer.OneShot = true
	messageTimer.OnTimeout = h.ResetMessage
	return h
}

// OnStartGame subscribes fn to the StartGame event.
func (h *HudStateController) OnStartGame(fn func()) {
	h.onStartGame = append(h.onStartGame, fn)
}

// State returns a copy of the current HUD state.
func (h *HudStateController) State() HudState {
	return h.state
}

// ShowMessage displays text and (re)starts the message timer.
func (h *HudStateController) ShowMessage(text string) {
	h.state.Message = text
	h.state.MessageVisible = true
	h.messageTimer.Start()
}

// ShowGameOver shows the game over message; its expiry brings back the prompt.
func (h *HudStateController) ShowGameOver() {
	h.ShowMessage(MessageGameOver)
	h.state.DefaultMessagePending = true
}

// ResetMessage runs when the message timer expires. After a game over it brings
// back the default prompt and the start button; otherwise it hides the message.
func (h *HudStateController) ResetMessage() {
	if h.state.DefaultMessagePending {
		h.state.Message = MessageDefault
		h.state.MessageVisible = true
		h.state.StartVisible = true
		h.state.DefaultMessagePending = false
		return
	}
	h.state.MessageVisible = false
}

// UpdateScore sets the score text.
func (h *HudStateController) UpdateScore(score int) {
	h.state.ScoreText = strconv.Itoa(score)
}

// StartPressed hides the start button and emits StartGame after the current step.
// Presses while the button is hidden are ignored.
func (h *HudStateController) StartPressed() {
	if !h.state.StartVisible {
		h.log.Debug("start pressed while hidden")
		return
	}
	h.state.StartVisible = false
	h.commands.Defer(func() {
		for _, fn := range h.onStartGame {
			fn()
		}
	})
}
