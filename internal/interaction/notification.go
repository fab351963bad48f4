package interaction

import (
	"interactq/internal/engine"

	"github.com/google/uuid"
)

type NotificationKind int

const (
	QueueAdded NotificationKind = iota
	QueueRemoved
	Started
	Finished
	Interrupted
	Forced
	TimerElapsed
	TimerCancelled
)

var notificationNames = [...]string{
	QueueAdded:     "QueueAdded",
	QueueRemoved:   "QueueRemoved",
	Started:        "Started",
	Finished:       "Finished",
	Interrupted:    "Interrupted",
	Forced:         "Forced",
	TimerElapsed:   "TimerElapsed",
	TimerCancelled: "TimerCancelled",
}

func (k NotificationKind) String() string {
	if k >= 0 && int(k) < len(notificationNames) {
		return notificationNames[k]
	}
	return "Unknown"
}

// Notification is sent to QueueComponent.Events listeners.
// AttemptID pairs a Started or Forced with the notifications that end it; it
// is uuid.Nil for queue membership changes and for operations outside an attempt.
type Notification struct {
	Kind       NotificationKind
	Entity     engine.Handle
	Interactor engine.Handle
	Descriptor Descriptor
	Result     Result
	AttemptID  uuid.UUID
}
