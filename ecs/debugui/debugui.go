// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Windows register render functions with an ImguiSystem, which queues them as
// deferred commands so they draw after every other system has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/creeps/ecs"
)

// ImguiItem holds a Dear ImGui render function drawn once per frame.
type ImguiItem struct {
	Name   string
	Render func()
	Hidden bool
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts read it to keep clicks and key presses on a debug window away from the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every visible item and refreshes
// the input capture state.
type ImguiSystem struct {
	Items      []*ImguiItem
	InputState ImguiInputState
}

// Add registers render under name and returns the item so it can be toggled.
func (i *ImguiSystem) Add(name string, render func()) *ImguiItem {
	item := &ImguiItem{Name: name, Render: render}
	i.Items = append(i.Items, item)
	return item
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		if item.Hidden || item.Render == nil {
			continue
		}
		frame.Commands.Defer(item.Render)
	}
}
