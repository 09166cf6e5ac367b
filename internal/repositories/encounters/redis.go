package encounters

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/gleasonw/lidnd/internal/engine/turnorder"
	"github.com/gleasonw/lidnd/internal/entities"
	"github.com/gleasonw/lidnd/internal/errors"
	redisclient "github.com/gleasonw/lidnd/internal/redis"
)

const (
	encounterKeyPrefix = "encounter:"
	ownerIndexPrefix   = "encounter:owner:"

	// Error messages
	errEncounterNil       = "encounter cannot be nil"
	errEncounterIDEmpty   = "encounter ID cannot be empty"
	errOwnerIDEmpty       = "owner ID cannot be empty"
	errParticipantNil     = "participant cannot be nil"
	errParticipantIDEmpty = "participant ID cannot be empty"
)

// record is the stored shape of one encounter: the encounter row plus its
// roster keyed by participant ID. Keeping the roster inside the encounter
// key makes every roster mutation a single SET, which is what gives
// SetActive its exactly-one-flip guarantee.
type record struct {
	Encounter    entities.Encounter              `json:"encounter"`
	Participants map[string]entities.Participant `json:"participants"`
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis encounter repository.
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

// NewRedis creates a new Redis-backed encounter repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Encounter == nil {
		return nil, errors.InvalidArgument(errEncounterNil)
	}
	if input.Encounter.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}
	if input.Encounter.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := encounterKeyPrefix + input.Encounter.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("encounter with ID %s already exists", input.Encounter.ID)
	}

	rec := &record{
		Encounter:    *input.Encounter,
		Participants: make(map[string]entities.Participant),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal encounter")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+input.Encounter.OwnerID, input.Encounter.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create encounter")
	}

	return &CreateOutput{Encounter: input.Encounter}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	enc := rec.Encounter
	return &GetOutput{
		Encounter:    &enc,
		Participants: orderedParticipants(rec),
	}, nil
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

	out := make([]*entities.Encounter, 0, len(ids))
	for _, id := range ids {
		rec, err := r.load(ctx, id, input.OwnerID)
		if err != nil {
			// Index entries can outlive their encounter; drop them.
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		enc := rec.Encounter
		out = append(out, &enc)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return &ListOutput{Encounters: out}, nil
}

func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	rec.Encounter.Name = input.Name
	rec.Encounter.Description = input.Description

	if err := r.store(ctx, rec); err != nil {
		return nil, err
	}

	enc := rec.Encounter
	return &UpdateOutput{Encounter: &enc}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	// Participants live inside the encounter key, so the roster dies
	// with the encounter.
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, encounterKeyPrefix+rec.Encounter.ID)
	pipe.SRem(ctx, ownerIndexPrefix+rec.Encounter.OwnerID, rec.Encounter.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &ListParticipantsOutput{Participants: orderedParticipants(rec)}, nil
}

func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	if input == nil || input.Participant == nil {
		return nil, errors.InvalidArgument(errParticipantNil)
	}
	if input.Participant.ID == "" {
		return nil, errors.InvalidArgument(errParticipantIDEmpty)
	}

	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if _, ok := rec.Participants[input.Participant.ID]; ok {
		return nil, errors.AlreadyExistsf("participant %s already in encounter %s",
			input.Participant.ID, input.EncounterID)
	}

	p := *input.Participant
	p.EncounterID = rec.Encounter.ID
	rec.Participants[p.ID] = p

	if err := r.store(ctx, rec); err != nil {
		return nil, err
	}

	return &AddParticipantOutput{Participant: &p}, nil
}

func (r *redisRepository) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if _, ok := rec.Participants[input.ParticipantID]; !ok {
		return nil, errors.NotFoundf("participant %s not found in encounter %s",
			input.ParticipantID, input.EncounterID)
	}
	delete(rec.Participants, input.ParticipantID)

	if err := r.store(ctx, rec); err != nil {
		return nil, err
	}

	return &RemoveParticipantOutput{}, nil
}

func (r *redisRepository) UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p, ok := rec.Participants[input.ParticipantID]
	if !ok {
		return nil, errors.NotFoundf("participant %s not found in encounter %s",
			input.ParticipantID, input.EncounterID)
	}

	p.HP = input.HP
	p.Initiative = input.Initiative
	rec.Participants[p.ID] = p

	if err := r.store(ctx, rec); err != nil {
		return nil, err
	}

	return &UpdateParticipantOutput{Participant: &p}, nil
}

func (r *redisRepository) SetActive(ctx context.Context, input *SetActiveInput) (*SetActiveOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	next, ok := rec.Participants[input.NewActiveID]
	if !ok {
		return nil, errors.NotFoundf("participant %s not found in encounter %s",
			input.NewActiveID, input.EncounterID)
	}

	// Flip only the named pair. The previous holder may already have
	// lost the flag to a concurrent advance; the new flag still lands.
	if prev, ok := rec.Participants[input.PreviousActiveID]; ok && prev.ID != next.ID {
		prev.IsActive = false
		rec.Participants[prev.ID] = prev
	}
	next.IsActive = true
	rec.Participants[next.ID] = next

	if err := r.store(ctx, rec); err != nil {
		return nil, err
	}

	return &SetActiveOutput{Participants: orderedParticipants(rec)}, nil
}

func (r *redisRepository) SetStarted(ctx context.Context, input *SetStartedInput) (*SetStartedOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	startedAt := input.StartedAt
	rec.Encounter.StartedAt = &startedAt
	rec.Encounter.EndedAt = nil
	for id, p := range rec.Participants {
		p.IsActive = id == input.InitialActiveID
		rec.Participants[id] = p
	}

	if err := r.store(ctx, rec); err != nil {
		return nil, err
	}

	enc := rec.Encounter
	return &SetStartedOutput{Encounter: &enc}, nil
}

func (r *redisRepository) SetStopped(ctx context.Context, input *SetStoppedInput) (*SetStoppedOutput, error) {
	rec, err := r.load(ctx, input.EncounterID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	endedAt := input.EndedAt
	rec.Encounter.EndedAt = &endedAt
	for id, p := range rec.Participants {
		p.IsActive = false
		rec.Participants[id] = p
	}

	if err := r.store(ctx, rec); err != nil {
		return nil, err
	}

	enc := rec.Encounter
	return &SetStoppedOutput{Encounter: &enc}, nil
}

// load fetches and owner-checks one encounter record. Owner mismatches
// surface as NotFound so the API never reveals other users' encounters.
func (r *redisRepository) load(ctx context.Context, encounterID, ownerID string) (*record, error) {
	if encounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}
	if ownerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := encounterKeyPrefix + encounterID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("encounter with ID %s not found", encounterID)
		}
		return nil, errors.Wrapf(err, "failed to get encounter")
	}

	var rec record
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal encounter")
	}
	if rec.Encounter.OwnerID != ownerID {
		return nil, errors.NotFoundf("encounter with ID %s not found", encounterID)
	}
	if rec.Participants == nil {
		rec.Participants = make(map[string]entities.Participant)
	}

	return &rec, nil
}

func (r *redisRepository) store(ctx context.Context, rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal encounter")
	}
	if err := r.client.Set(ctx, encounterKeyPrefix+rec.Encounter.ID, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store encounter")
	}
	return nil
}

// orderedParticipants returns the roster in canonical turn order.
func orderedParticipants(rec *record) []entities.Participant {
	out := make([]entities.Participant, 0, len(rec.Participants))
	for _, p := range rec.Participants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return turnorder.Compare(out[i].Initiative, out[i].ID, out[j].Initiative, out[j].ID) < 0
	})
	return out
}
