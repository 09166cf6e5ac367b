package notify

import "log/slog"

const defaultQueueSize = 64

// Queue is a buffered, non-blocking Notifier. Events overflowing the
// buffer are dropped with a warning; the mirror catches up on the next
// state change.
type Queue struct {
	events chan Event
}

// NewQueue creates a queue holding up to size pending events. A size of
// zero or less uses the default.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{events: make(chan Event, size)}
}

// EncounterUpdated implements Notifier.
func (q *Queue) EncounterUpdated(userID, encounterID string) {
	ev := Event{UserID: userID, EncounterID: encounterID}
	select {
	case q.events <- ev:
	default:
		slog.Warn("notification queue full, dropping event",
			"user_id", userID,
			"encounter_id", encounterID,
		)
	}
}

// Events exposes the consumer side of the queue.
func (q *Queue) Events() <-chan Event {
	return q.events
}
