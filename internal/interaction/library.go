package interaction

import "interactq/internal/engine"

// QueueOf returns the QueueComponent on interactor, or nil.
func QueueOf(interactor *engine.GameObject) *QueueComponent {
	if !engine.IsValid(interactor) {
		return nil
	}
	return engine.GetComponent[*QueueComponent](interactor)
}

// AddToQueue adds interactive to interactor's queue.
func AddToQueue(interactor, interactive *engine.GameObject) bool {
	q := QueueOf(interactor)
	if q == nil {
		return false
	}
	return q.Add(interactive)
}

// RemoveFromQueue removes interactive from interactor's queue.
func RemoveFromQueue(interactor, interactive *engine.GameObject) bool {
	q := QueueOf(interactor)
	if q == nil {
		return false
	}
	return q.Remove(interactive)
}

// IsInQueue reports whether interactive is queued on interactor.
func IsInQueue(interactor, interactive *engine.GameObject) bool {
	q := QueueOf(interactor)
	if q == nil {
		return false
	}
	return q.Contains(interactive)
}
