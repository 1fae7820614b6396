package game

import "github.com/plus3/creeps/ecs"

// PlayerMotionSystem runs the motion controller while a game is in progress.
type PlayerMotionSystem struct {
	Coordinator *Coordinator
	Motion      *PlayerMotionController
}

func (s *PlayerMotionSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Coordinator.Phase() != PhasePlaying {
		return
	}
	s.Motion.Update(frame.DeltaTime)
}
