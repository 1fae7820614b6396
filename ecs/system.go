package ecs

// System represents a behavior that runs once per frame.
// Systems hold typed references to whatever they operate on, resolved when the
// system is constructed, plus any state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
