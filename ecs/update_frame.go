package ecs

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
}

func newUpdateFrame(dt float64, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
	}
}
