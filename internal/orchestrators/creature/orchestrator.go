// Package creature implements the creature library orchestrator.
package creature

import (
	"context"
	"log/slog"

	"github.com/gleasonw/lidnd/internal/clients/srd"
	"github.com/gleasonw/lidnd/internal/entities"
	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/pkg/clock"
	"github.com/gleasonw/lidnd/internal/pkg/idgen"
	creaturerepo "github.com/gleasonw/lidnd/internal/repositories/creatures"
	encounterrepo "github.com/gleasonw/lidnd/internal/repositories/encounters"
	"github.com/gleasonw/lidnd/internal/services/creature"
)

// Config holds the dependencies for the creature orchestrator
type Config struct {
	CreatureRepo  creaturerepo.Repository
	EncounterRepo encounterrepo.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock

	// SRDClient is optional; without it ImportMonster returns
	// FailedPrecondition
	SRDClient srd.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the creature.Service interface
type Orchestrator struct {
	creatureRepo  creaturerepo.Repository
	encounterRepo encounterrepo.Repository
	idGenerator   idgen.Generator
	clock         clock.Clock
	srdClient     srd.Client
}

// New creates a new creature orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		creatureRepo:  cfg.CreatureRepo,
		encounterRepo: cfg.EncounterRepo,
		idGenerator:   cfg.IDGenerator,
		clock:         cfg.Clock,
		srdClient:     cfg.SRDClient,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ creature.Service = (*Orchestrator)(nil)

// CreateCreature adds a creature to the caller's library
func (o *Orchestrator) CreateCreature(ctx context.Context, input *creature.CreateCreatureInput) (*creature.CreateCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.OwnerID == "" {
		vb.RequiredField("OwnerID")
	}
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if input.MaxHP <= 0 {
		vb.InvalidField("MaxHP", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.creatureRepo.Create(ctx, &creaturerepo.CreateInput{
		Creature: &entities.Creature{
			ID:              o.idGenerator.Generate(),
			OwnerID:         input.OwnerID,
			Name:            input.Name,
			MaxHP:           input.MaxHP,
			ChallengeRating: input.ChallengeRating,
			IsPlayer:        input.IsPlayer,
			CreatedAt:       o.clock.Now(),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create creature")
	}

	if len(input.Icon) > 0 || len(input.StatBlock) > 0 {
		if _, err := o.creatureRepo.SetImages(ctx, &creaturerepo.SetImagesInput{
			CreatureID: out.Creature.ID,
			OwnerID:    input.OwnerID,
			Icon:       input.Icon,
			StatBlock:  input.StatBlock,
		}); err != nil {
			return nil, errors.Wrap(err, "failed to store creature images")
		}
	}

	return &creature.CreateCreatureOutput{Creature: out.Creature}, nil
}

// GetCreature fetches one creature from the caller's library
func (o *Orchestrator) GetCreature(ctx context.Context, input *creature.GetCreatureInput) (*creature.GetCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{
		CreatureID: input.CreatureID,
		OwnerID:    input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get creature")
	}

	return &creature.GetCreatureOutput{Creature: out.Creature}, nil
}

// ListCreatures lists the caller's library, optionally filtered by name
// substring and by absence from a given encounter.
func (o *Orchestrator) ListCreatures(ctx context.Context, input *creature.ListCreaturesInput) (*creature.ListCreaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var exclude map[string]struct{}
	if input.ExcludeEncounterID != "" {
		listOut, err := o.encounterRepo.ListParticipants(ctx, &encounterrepo.ListParticipantsInput{
			EncounterID: input.ExcludeEncounterID,
			OwnerID:     input.OwnerID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list encounter participants")
		}
		exclude = make(map[string]struct{}, len(listOut.Participants))
		for _, p := range listOut.Participants {
			exclude[p.CreatureID] = struct{}{}
		}
	}

	out, err := o.creatureRepo.List(ctx, &creaturerepo.ListInput{
		OwnerID:            input.OwnerID,
		NameFilter:         input.NameFilter,
		ExcludeCreatureIDs: exclude,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	return &creature.ListCreaturesOutput{Creatures: out.Creatures}, nil
}

// UpdateCreature rewrites a creature's mutable fields. Participants
// already attached to encounters keep their copied hit points.
func (o *Orchestrator) UpdateCreature(ctx context.Context, input *creature.UpdateCreatureInput) (*creature.UpdateCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if input.MaxHP <= 0 {
		vb.InvalidField("MaxHP", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.creatureRepo.Update(ctx, &creaturerepo.UpdateInput{
		CreatureID:      input.CreatureID,
		OwnerID:         input.OwnerID,
		Name:            input.Name,
		MaxHP:           input.MaxHP,
		ChallengeRating: input.ChallengeRating,
		IsPlayer:        input.IsPlayer,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update creature")
	}

	return &creature.UpdateCreatureOutput{Creature: out.Creature}, nil
}

// DeleteCreature removes a creature and its images from the library
func (o *Orchestrator) DeleteCreature(ctx context.Context, input *creature.DeleteCreatureInput) (*creature.DeleteCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.creatureRepo.Delete(ctx, &creaturerepo.DeleteInput{
		CreatureID: input.CreatureID,
		OwnerID:    input.OwnerID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to delete creature")
	}

	return &creature.DeleteCreatureOutput{}, nil
}

// GetCreatureImages fetches the stored icon and stat-block blobs
func (o *Orchestrator) GetCreatureImages(ctx context.Context, input *creature.GetCreatureImagesInput) (*creature.GetCreatureImagesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.creatureRepo.GetImages(ctx, &creaturerepo.GetImagesInput{
		CreatureID: input.CreatureID,
		OwnerID:    input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get creature images")
	}

	return &creature.GetCreatureImagesOutput{
		Icon:      out.Icon,
		StatBlock: out.StatBlock,
	}, nil
}

// ImportMonster fetches an SRD stat block and saves it as a creature in
// the caller's library.
func (o *Orchestrator) ImportMonster(ctx context.Context, input *creature.ImportMonsterInput) (*creature.ImportMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MonsterKey == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}
	if o.srdClient == nil {
		return nil, errors.FailedPrecondition("SRD import is not configured")
	}

	monster, err := o.srdClient.GetMonster(ctx, input.MonsterKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch monster")
	}
	slog.InfoContext(ctx, "imported SRD monster",
		"monster_key", input.MonsterKey,
		"owner_id", input.OwnerID,
	)

	created, err := o.CreateCreature(ctx, &creature.CreateCreatureInput{
		OwnerID:         input.OwnerID,
		Name:            monster.Name,
		MaxHP:           monster.HitPoints,
		ChallengeRating: monster.ChallengeRating,
		IsPlayer:        false,
	})
	if err != nil {
		return nil, err
	}

	return &creature.ImportMonsterOutput{Creature: created.Creature}, nil
}
