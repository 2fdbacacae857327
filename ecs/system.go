package ecs

// System is a stateless-per-frame function over the store. Implementations are
// structs holding whatever collaborators they need (key tables, renderers).
// An error aborts the rest of the frame.
type System interface {
	Execute(frame *UpdateFrame) error
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame) error

func (f SystemFunc) Execute(frame *UpdateFrame) error {
	return f(frame)
}
