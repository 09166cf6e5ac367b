// Package notify mirrors encounter state into each user's tracked chat
// channel. The request path enqueues an event after its transaction
// commits and moves on; a worker consumes the queue, renders the
// encounter, and upserts the chat message. Delivery is best-effort and
// at-most-once: a full queue drops the event, and sink failures are
// logged and dropped without touching the committed state.
package notify

import (
	"context"
	"errors"

	"github.com/gleasonw/lidnd/internal/entities"
)

//go:generate mockgen -destination=mock/mock_notify.go -package=notifymock github.com/gleasonw/lidnd/internal/notify Notifier,MessageSink,ViewLoader

// Event asks the worker to refresh one user's encounter mirror.
type Event struct {
	UserID      string
	EncounterID string
}

// Notifier is the producer side, consumed by the encounter orchestrator.
type Notifier interface {
	// EncounterUpdated signals that the encounter's committed state
	// changed. It never blocks and never fails.
	EncounterUpdated(userID, encounterID string)
}

// ViewLoader loads the full encounter view the renderer needs.
type ViewLoader interface {
	LoadEncounterView(ctx context.Context, userID, encounterID string) (*entities.EncounterView, error)
}

// ErrMessageNotFound reports that the message a sink was asked to edit
// no longer exists, so the caller should send a fresh one.
var ErrMessageNotFound = errors.New("message not found")

// MessageSink posts to the chat platform.
type MessageSink interface {
	// SendMessage posts a new message and returns its ID
	SendMessage(ctx context.Context, channelID, content string) (string, error)

	// EditMessage rewrites an existing message in place. Returns
	// ErrMessageNotFound when the message was deleted out from under us.
	EditMessage(ctx context.Context, channelID, messageID, content string) error
}
