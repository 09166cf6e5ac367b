package channels

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/gleasonw/lidnd/internal/errors"
	redisclient "github.com/gleasonw/lidnd/internal/redis"
)

const (
	channelKeyPrefix = "channel:user:"

	errUserIDEmpty    = "user ID cannot be empty"
	errChannelIDEmpty = "channel ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis channel repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed channel repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) SetTrackedChannel(ctx context.Context, input *SetTrackedChannelInput) (*SetTrackedChannelOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}

	channel := &TrackedChannel{
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
	}
	if err := r.store(ctx, channel); err != nil {
		return nil, err
	}

	return &SetTrackedChannelOutput{Channel: channel}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	result, err := r.client.Get(ctx, channelKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no tracked channel for user %s", input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to get tracked channel")
	}

	var channel TrackedChannel
	if err := json.Unmarshal([]byte(result), &channel); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal tracked channel")
	}

	return &GetOutput{Channel: &channel}, nil
}

func (r *redisRepository) SetMessageID(ctx context.Context, input *SetMessageIDInput) (*SetMessageIDOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	got, err := r.Get(ctx, &GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	got.Channel.MessageID = input.MessageID
	if err := r.store(ctx, got.Channel); err != nil {
		return nil, err
	}

	return &SetMessageIDOutput{}, nil
}

func (r *redisRepository) store(ctx context.Context, channel *TrackedChannel) error {
	data, err := json.Marshal(channel)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal tracked channel")
	}
	if err := r.client.Set(ctx, channelKeyPrefix+channel.UserID, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store tracked channel")
	}
	return nil
}
