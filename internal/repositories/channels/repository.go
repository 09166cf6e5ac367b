// Package channels stores each user's tracked chat channel: where the
// encounter mirror posts, and the ID of the last message it posted so
// updates edit in place instead of spamming the channel.
package channels

//go:generate mockgen -destination=mock/mock_repository.go -package=channelsmock github.com/gleasonw/lidnd/internal/repositories/channels Repository

import "context"

// TrackedChannel is one user's mirror target. MessageID is empty until
// the first encounter post lands in the channel.
type TrackedChannel struct {
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id,omitempty"`
}

// Repository stores tracked channels keyed by user.
type Repository interface {
	// SetTrackedChannel registers (or moves) the user's mirror channel,
	// resetting any remembered message ID
	SetTrackedChannel(ctx context.Context, input *SetTrackedChannelInput) (*SetTrackedChannelOutput, error)

	// Get retrieves the user's tracked channel; NotFound when the user
	// never ran channel setup
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// SetMessageID remembers the mirror message to edit on later updates
	SetMessageID(ctx context.Context, input *SetMessageIDInput) (*SetMessageIDOutput, error)
}

// SetTrackedChannelInput defines the request for registering a channel
type SetTrackedChannelInput struct {
	UserID    string
	ChannelID string
}

// SetTrackedChannelOutput defines the response for registering a channel
type SetTrackedChannelOutput struct {
	Channel *TrackedChannel
}

// GetInput defines the request for fetching a tracked channel
type GetInput struct {
	UserID string
}

// GetOutput defines the response for fetching a tracked channel
type GetOutput struct {
	Channel *TrackedChannel
}

// SetMessageIDInput defines the request for remembering a message ID
type SetMessageIDInput struct {
	UserID    string
	MessageID string
}

// SetMessageIDOutput defines the response for remembering a message ID
type SetMessageIDOutput struct{}
