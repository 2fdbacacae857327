package ecs

type UpdateFrame struct {
	DeltaTime float32
	Clock     *Clock
	Commands  *Commands
	Store     *Store
}

func newUpdateFrame(clock *Clock, store *Store, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: clock.DeltaTime,
		Clock:     clock,
		Commands:  commands,
		Store:     store,
	}
}
