package interaction

import "interactq/internal/engine"

// Trigger sits next to a trigger collider on an interactive entity. Any
// interactor whose solid collider enters the volume gets the entity queued;
// leaving removes it again unless RemoveOnExit is off.
type Trigger struct {
	engine.BaseComponent
	RemoveOnExit bool
}

func NewTrigger() *Trigger {
	return &Trigger{RemoveOnExit: true}
}

func (t *Trigger) OnCollisionEnter(other *engine.GameObject) {
	AddToQueue(other, t.GetGameObject())
}

func (t *Trigger) OnCollisionExit(other *engine.GameObject) {
	if !t.RemoveOnExit {
		return
	}
	RemoveFromQueue(other, t.GetGameObject())
}
