package notify

import (
	"context"
	"log/slog"

	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/repositories/channels"
)

// Worker drains the notification queue and keeps chat mirrors current.
// Exactly one Run loop consumes a queue; failures never propagate
// anywhere, they are logged and the event is dropped.
type Worker struct {
	queue    *Queue
	views    ViewLoader
	channels channels.Repository
	sink     MessageSink
}

// WorkerConfig holds the dependencies for the notification worker.
type WorkerConfig struct {
	Queue    *Queue
	Views    ViewLoader
	Channels channels.Repository
	Sink     MessageSink
}

// Validate ensures all required dependencies are provided.
func (cfg *WorkerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Queue == nil {
		vb.RequiredField("Queue")
	}
	if cfg.Views == nil {
		vb.RequiredField("Views")
	}
	if cfg.Channels == nil {
		vb.RequiredField("Channels")
	}
	if cfg.Sink == nil {
		vb.RequiredField("Sink")
	}
	return vb.Build()
}

// NewWorker creates a notification worker with the provided dependencies.
func NewWorker(cfg *WorkerConfig) (*Worker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Worker{
		queue:    cfg.Queue,
		views:    cfg.Views,
		channels: cfg.Channels,
		sink:     cfg.Sink,
	}, nil
}

// Run consumes events until ctx is canceled.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-w.queue.Events():
			w.handle(ctx, ev)
		}
	}
}

// handle refreshes one user's mirror. Every failure path logs and
// returns; the state change that triggered the event is already
// committed and is never rolled back.
func (w *Worker) handle(ctx context.Context, ev Event) {
	channelOut, err := w.channels.Get(ctx, &channels.GetInput{UserID: ev.UserID})
	if err != nil {
		// Users without a tracked channel simply have no mirror.
		if !errors.IsNotFound(err) {
			slog.ErrorContext(ctx, "failed to load tracked channel",
				"user_id", ev.UserID, "error", err.Error())
		}
		return
	}
	channel := channelOut.Channel

	view, err := w.views.LoadEncounterView(ctx, ev.UserID, ev.EncounterID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load encounter view for mirror",
			"user_id", ev.UserID, "encounter_id", ev.EncounterID, "error", err.Error())
		return
	}

	content, err := Render(view)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render encounter mirror",
			"encounter_id", ev.EncounterID, "error", err.Error())
		return
	}

	if channel.MessageID != "" {
		err := w.sink.EditMessage(ctx, channel.ChannelID, channel.MessageID, content)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrMessageNotFound) {
			slog.ErrorContext(ctx, "failed to edit mirror message",
				"channel_id", channel.ChannelID, "message_id", channel.MessageID,
				"error", err.Error())
			return
		}
		// The tracked message was deleted; fall through and resend.
	}

	messageID, err := w.sink.SendMessage(ctx, channel.ChannelID, content)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send mirror message",
			"channel_id", channel.ChannelID, "error", err.Error())
		return
	}

	if _, err := w.channels.SetMessageID(ctx, &channels.SetMessageIDInput{
		UserID:    ev.UserID,
		MessageID: messageID,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to remember mirror message ID",
			"user_id", ev.UserID, "message_id", messageID, "error", err.Error())
	}
}
