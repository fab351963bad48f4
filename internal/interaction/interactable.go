package interaction

import "interactq/internal/engine"

// Interactable is a ready-made Interactive component. Each hook is optional;
// a missing hook reports Invalid.
type Interactable struct {
	engine.BaseComponent
	Settings Descriptor
	// Disabled withholds the descriptor, which takes the entity out of every queue
	// on the next resort.
	Disabled bool

	StartFunc     func(interactor *engine.GameObject) Result
	FinishFunc    func(interactor *engine.GameObject) Result
	InterruptFunc func(interruptor, interactor *engine.GameObject) Result
	ForceFunc     func(interactor *engine.GameObject) Result
}

func NewInteractable(settings Descriptor) *Interactable {
	return &Interactable{Settings: settings}
}

func (i *Interactable) Descriptor() (Descriptor, bool) {
	if i.Disabled {
		return Descriptor{}, false
	}
	return i.Settings, true
}

func (i *Interactable) OnStart(interactor *engine.GameObject) Result {
	if i.StartFunc == nil {
		return Invalid
	}
	return i.StartFunc(interactor)
}

func (i *Interactable) OnFinish(interactor *engine.GameObject) Result {
	if i.FinishFunc == nil {
		return Invalid
	}
	return i.FinishFunc(interactor)
}

func (i *Interactable) OnInterrupt(interruptor, interactor *engine.GameObject) Result {
	if i.InterruptFunc == nil {
		return Invalid
	}
	return i.InterruptFunc(interruptor, interactor)
}

func (i *Interactable) OnForce(interactor *engine.GameObject) Result {
	if i.ForceFunc == nil {
		return Invalid
	}
	return i.ForceFunc(interactor)
}
