package creatures

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/gleasonw/lidnd/internal/entities"
	"github.com/gleasonw/lidnd/internal/errors"
	redisclient "github.com/gleasonw/lidnd/internal/redis"
)

const (
	creatureKeyPrefix = "creature:"
	ownerIndexPrefix  = "creature:owner:"
	iconSuffix        = ":icon"
	statBlockSuffix   = ":statblock"

	errCreatureNil     = "creature cannot be nil"
	errCreatureIDEmpty = "creature ID cannot be empty"
	errOwnerIDEmpty    = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis creature repository.
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

// NewRedis creates a new Redis-backed creature repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument(errCreatureNil)
	}
	if input.Creature.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}
	if input.Creature.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := creatureKeyPrefix + input.Creature.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("creature with ID %s already exists", input.Creature.ID)
	}

	data, err := json.Marshal(input.Creature)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+input.Creature.OwnerID, input.Creature.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create creature")
	}

	return &CreateOutput{Creature: input.Creature}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	creature, err := r.load(ctx, input.CreatureID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Creature: creature}, nil
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read owner index %s", indexKey)
	}

	nameFilter := strings.ToLower(input.NameFilter)

	out := make([]*entities.Creature, 0, len(ids))
	for _, id := range ids {
		if _, excluded := input.ExcludeCreatureIDs[id]; excluded {
			continue
		}
		creature, err := r.load(ctx, id, input.OwnerID)
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(creature.Name), nameFilter) {
			continue
		}
		out = append(out, creature)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return &ListOutput{Creatures: out}, nil
}

func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	creature, err := r.load(ctx, input.CreatureID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	creature.Name = input.Name
	creature.MaxHP = input.MaxHP
	creature.ChallengeRating = input.ChallengeRating
	creature.IsPlayer = input.IsPlayer

	data, err := json.Marshal(creature)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}
	if err := r.client.Set(ctx, creatureKeyPrefix+creature.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update creature")
	}

	return &UpdateOutput{Creature: creature}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	creature, err := r.load(ctx, input.CreatureID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	key := creatureKeyPrefix + creature.ID
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key, key+iconSuffix, key+statBlockSuffix)
	pipe.SRem(ctx, ownerIndexPrefix+creature.OwnerID, creature.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete creature")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) SetImages(ctx context.Context, input *SetImagesInput) (*SetImagesOutput, error) {
	if _, err := r.load(ctx, input.CreatureID, input.OwnerID); err != nil {
		return nil, err
	}

	key := creatureKeyPrefix + input.CreatureID
	pipe := r.client.TxPipeline()
	if len(input.Icon) > 0 {
		pipe.Set(ctx, key+iconSuffix, input.Icon, 0)
	}
	if len(input.StatBlock) > 0 {
		pipe.Set(ctx, key+statBlockSuffix, input.StatBlock, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store creature images")
	}

	return &SetImagesOutput{}, nil
}

func (r *redisRepository) GetImages(ctx context.Context, input *GetImagesInput) (*GetImagesOutput, error) {
	if _, err := r.load(ctx, input.CreatureID, input.OwnerID); err != nil {
		return nil, err
	}

	key := creatureKeyPrefix + input.CreatureID
	out := &GetImagesOutput{}

	icon, err := r.client.Get(ctx, key+iconSuffix).Bytes()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get creature icon")
	}
	out.Icon = icon

	statBlock, err := r.client.Get(ctx, key+statBlockSuffix).Bytes()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get creature stat block")
	}
	out.StatBlock = statBlock

	return out, nil
}

func (r *redisRepository) load(ctx context.Context, creatureID, ownerID string) (*entities.Creature, error) {
	if creatureID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}
	if ownerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	result, err := r.client.Get(ctx, creatureKeyPrefix+creatureID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature with ID %s not found", creatureID)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	var creature entities.Creature
	if err := json.Unmarshal([]byte(result), &creature); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal creature")
	}
	if creature.OwnerID != ownerID {
		return nil, errors.NotFoundf("creature with ID %s not found", creatureID)
	}

	return &creature, nil
}
