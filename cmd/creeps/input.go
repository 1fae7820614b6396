package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/creeps/ecs/debugui"
	"github.com/plus3/creeps/game"
)

var actionKeys = map[string][]ebiten.Key{
	game.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	game.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	game.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
}

// keyboard is the game's InputSource. Keys are ignored while an ImGui window
// has keyboard focus.
type keyboard struct {
	capture *debugui.ImguiInputState
}

func (k *keyboard) captured() bool {
	return k.capture != nil && k.capture.WantCaptureKeyboard
}

func (k *keyboard) IsActionPressed(action string) bool {
	if k.captured() {
		return false
	}
	for _, key := range actionKeys[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// StartPressed reports an Enter or Space press this tick.
func (k *keyboard) StartPressed() bool {
	if k.captured() {
		return false
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
