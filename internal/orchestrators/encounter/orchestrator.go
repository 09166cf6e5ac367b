// Package encounter implements the encounter orchestrator: lifecycle,
// roster management, and turn advancement.
package encounter

import (
	"context"
	"log/slog"

	"github.com/gleasonw/lidnd/internal/engine/turnorder"
	"github.com/gleasonw/lidnd/internal/entities"
	"github.com/gleasonw/lidnd/internal/errors"
	"github.com/gleasonw/lidnd/internal/notify"
	"github.com/gleasonw/lidnd/internal/pkg/clock"
	"github.com/gleasonw/lidnd/internal/pkg/idgen"
	creaturerepo "github.com/gleasonw/lidnd/internal/repositories/creatures"
	encounterrepo "github.com/gleasonw/lidnd/internal/repositories/encounters"
	"github.com/gleasonw/lidnd/internal/services/encounter"
)

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	EncounterRepo encounterrepo.Repository
	CreatureRepo  creaturerepo.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	Notifier      notify.Notifier

	// Roller defaults to ToolkitRoller
	Roller DiceRoller
	// Locker defaults to NoopLocker
	Locker Locker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}

	return vb.Build()
}

// Orchestrator implements the encounter.Service interface
type Orchestrator struct {
	encounterRepo encounterrepo.Repository
	creatureRepo  creaturerepo.Repository
	idGenerator   idgen.Generator
	clock         clock.Clock
	notifier      notify.Notifier
	roller        DiceRoller
	locker        Locker
}

// New creates a new encounter orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = ToolkitRoller{}
	}
	locker := cfg.Locker
	if locker == nil {
		locker = NoopLocker{}
	}

	return &Orchestrator{
		encounterRepo: cfg.EncounterRepo,
		creatureRepo:  cfg.CreatureRepo,
		idGenerator:   cfg.IDGenerator,
		clock:         cfg.Clock,
		notifier:      cfg.Notifier,
		roller:        roller,
		locker:        locker,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ encounter.Service = (*Orchestrator)(nil)

// Ensure Orchestrator can feed the notification worker
var _ notify.ViewLoader = (*Orchestrator)(nil)

// ClampHP normalizes a requested hit point value into [0, maxHP].
func ClampHP(requested, maxHP int) int {
	if requested < 0 {
		return 0
	}
	if requested > maxHP {
		return maxHP
	}
	return requested
}

// CreateEncounter creates a new encounter with an empty roster
func (o *Orchestrator) CreateEncounter(ctx context.Context, input *encounter.CreateEncounterInput) (*encounter.CreateEncounterOutput, error) {
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
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.encounterRepo.Create(ctx, &encounterrepo.CreateInput{
		Encounter: &entities.Encounter{
			ID:          o.idGenerator.Generate(),
			OwnerID:     input.OwnerID,
			Name:        input.Name,
			Description: input.Description,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create encounter")
	}

	return &encounter.CreateEncounterOutput{Encounter: out.Encounter}, nil
}

// GetEncounter fetches an encounter with its ordered roster
func (o *Orchestrator) GetEncounter(ctx context.Context, input *encounter.GetEncounterInput) (*encounter.GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	view, err := o.loadView(ctx, input.OwnerID, input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &encounter.GetEncounterOutput{View: view}, nil
}

// ListEncounters lists the caller's encounters
func (o *Orchestrator) ListEncounters(ctx context.Context, input *encounter.ListEncountersInput) (*encounter.ListEncountersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.encounterRepo.List(ctx, &encounterrepo.ListInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list encounters")
	}

	return &encounter.ListEncountersOutput{Encounters: out.Encounters}, nil
}

// UpdateEncounter rewrites an encounter's name and description
func (o *Orchestrator) UpdateEncounter(ctx context.Context, input *encounter.UpdateEncounterInput) (*encounter.UpdateEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	out, err := o.encounterRepo.Update(ctx, &encounterrepo.UpdateInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update encounter")
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	return &encounter.UpdateEncounterOutput{Encounter: out.Encounter}, nil
}

// DeleteEncounter removes an encounter and its roster
func (o *Orchestrator) DeleteEncounter(ctx context.Context, input *encounter.DeleteEncounterInput) (*encounter.DeleteEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.encounterRepo.Delete(ctx, &encounterrepo.DeleteInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to delete encounter")
	}

	return &encounter.DeleteEncounterOutput{}, nil
}

// StartEncounter begins combat: the highest-initiative participant takes
// the first turn.
func (o *Orchestrator) StartEncounter(ctx context.Context, input *encounter.StartEncounterInput) (*encounter.StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.locker.Lock(input.EncounterID)
	defer unlock()

	out, err := o.encounterRepo.Get(ctx, &encounterrepo.GetInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	if out.Encounter.Started() {
		return nil, errors.FailedPrecondition("encounter already started")
	}

	initialActiveID, err := turnorder.InitialActive(toEngine(out.Participants))
	if err != nil {
		if errors.Is(err, turnorder.ErrNoParticipants) {
			return nil, errors.FailedPrecondition("encounter has no participants")
		}
		return nil, errors.Wrap(err, "failed to pick first turn")
	}

	if _, err := o.encounterRepo.SetStarted(ctx, &encounterrepo.SetStartedInput{
		EncounterID:     input.EncounterID,
		OwnerID:         input.OwnerID,
		StartedAt:       o.clock.Now(),
		InitialActiveID: initialActiveID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to start encounter")
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	view, err := o.loadView(ctx, input.OwnerID, input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &encounter.StartEncounterOutput{View: view}, nil
}

// StopEncounter ends combat and clears every active flag
func (o *Orchestrator) StopEncounter(ctx context.Context, input *encounter.StopEncounterInput) (*encounter.StopEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.locker.Lock(input.EncounterID)
	defer unlock()

	out, err := o.encounterRepo.Get(ctx, &encounterrepo.GetInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	if !out.Encounter.Started() {
		return nil, errors.FailedPrecondition("encounter not started")
	}

	stopped, err := o.encounterRepo.SetStopped(ctx, &encounterrepo.SetStoppedInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
		EndedAt:     o.clock.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to stop encounter")
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	return &encounter.StopEncounterOutput{Encounter: stopped.Encounter}, nil
}

// AdvanceTurn moves the active flag to the next or previous living
// participant in turn order.
func (o *Orchestrator) AdvanceTurn(ctx context.Context, input *encounter.AdvanceTurnInput) (*encounter.AdvanceTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Direction.Valid() {
		return nil, errors.InvalidArgumentf("direction must be %q or %q", turnorder.Next, turnorder.Previous)
	}

	unlock := o.locker.Lock(input.EncounterID)
	defer unlock()

	out, err := o.encounterRepo.Get(ctx, &encounterrepo.GetInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	if !out.Encounter.Started() {
		return nil, errors.FailedPrecondition("encounter not started")
	}

	previousActiveID := activeID(out.Participants)

	nextActiveID, err := turnorder.Advance(toEngine(out.Participants), input.Direction)
	if err != nil {
		switch {
		case errors.Is(err, turnorder.ErrNoActiveParticipant):
			// Started encounters always seed an active participant, so a
			// missing flag means the holder was removed mid-combat.
			return nil, errors.WrapWithCode(turnorder.ErrActiveParticipantMissing,
				errors.CodeFailedPrecondition, "active participant was removed; stop and restart the encounter")
		case errors.Is(err, turnorder.ErrNoParticipants), errors.Is(err, turnorder.ErrNoEligibleParticipants):
			return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "no participant can take the turn")
		default:
			return nil, errors.Wrap(err, "failed to advance turn")
		}
	}

	setOut, err := o.encounterRepo.SetActive(ctx, &encounterrepo.SetActiveInput{
		EncounterID:      input.EncounterID,
		OwnerID:          input.OwnerID,
		NewActiveID:      nextActiveID,
		PreviousActiveID: previousActiveID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to commit turn change")
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	views, err := o.buildViews(ctx, input.OwnerID, setOut.Participants)
	if err != nil {
		return nil, err
	}

	return &encounter.AdvanceTurnOutput{
		ActiveParticipantID: nextActiveID,
		Participants:        views,
	}, nil
}

// ListParticipants returns the ordered roster with creature data joined
func (o *Orchestrator) ListParticipants(ctx context.Context, input *encounter.ListParticipantsInput) (*encounter.ListParticipantsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.encounterRepo.ListParticipants(ctx, &encounterrepo.ListParticipantsInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}

	views, err := o.buildViews(ctx, input.OwnerID, out.Participants)
	if err != nil {
		return nil, err
	}

	return &encounter.ListParticipantsOutput{Participants: views}, nil
}

// AddCreatureParticipant attaches an existing creature to the roster at
// full health with initiative 0.
func (o *Orchestrator) AddCreatureParticipant(ctx context.Context, input *encounter.AddCreatureParticipantInput) (*encounter.AddCreatureParticipantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	creatureOut, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{
		CreatureID: input.CreatureID,
		OwnerID:    input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get creature")
	}

	view, err := o.attach(ctx, input.OwnerID, input.EncounterID, creatureOut.Creature)
	if err != nil {
		return nil, err
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	return &encounter.AddCreatureParticipantOutput{Participant: view}, nil
}

// CreateCreatureAndAdd creates a creature in the caller's library and
// attaches it to the encounter in one step.
func (o *Orchestrator) CreateCreatureAndAdd(ctx context.Context, input *encounter.CreateCreatureAndAddInput) (*encounter.CreateCreatureAndAddOutput, error) {
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

	// Resolve the encounter before touching the library so a bad
	// encounter ID does not leave an orphan creature behind.
	if _, err := o.encounterRepo.Get(ctx, &encounterrepo.GetInput{
		EncounterID: input.EncounterID,
		OwnerID:     input.OwnerID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	createOut, err := o.creatureRepo.Create(ctx, &creaturerepo.CreateInput{
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
	created := createOut.Creature

	if len(input.Icon) > 0 || len(input.StatBlock) > 0 {
		if _, err := o.creatureRepo.SetImages(ctx, &creaturerepo.SetImagesInput{
			CreatureID: created.ID,
			OwnerID:    input.OwnerID,
			Icon:       input.Icon,
			StatBlock:  input.StatBlock,
		}); err != nil {
			return nil, errors.Wrap(err, "failed to store creature images")
		}
	}

	view, err := o.attach(ctx, input.OwnerID, input.EncounterID, created)
	if err != nil {
		return nil, err
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	return &encounter.CreateCreatureAndAddOutput{
		Creature:    created,
		Participant: view,
	}, nil
}

// RemoveParticipant detaches a participant from the roster
func (o *Orchestrator) RemoveParticipant(ctx context.Context, input *encounter.RemoveParticipantInput) (*encounter.RemoveParticipantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.encounterRepo.RemoveParticipant(ctx, &encounterrepo.RemoveParticipantInput{
		EncounterID:   input.EncounterID,
		OwnerID:       input.OwnerID,
		ParticipantID: input.ParticipantID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to remove participant")
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	return &encounter.RemoveParticipantOutput{}, nil
}

// UpdateParticipant rewrites a participant's hit points and initiative.
// HP is clamped to [0, creature max HP]; initiative is stored verbatim.
func (o *Orchestrator) UpdateParticipant(ctx context.Context, input *encounter.UpdateParticipantInput) (*encounter.UpdateParticipantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	participant, err := o.findParticipant(ctx, input.OwnerID, input.EncounterID, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	creatureOut, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{
		CreatureID: participant.CreatureID,
		OwnerID:    input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get creature")
	}
	maxHP := creatureOut.Creature.MaxHP

	updateOut, err := o.encounterRepo.UpdateParticipant(ctx, &encounterrepo.UpdateParticipantInput{
		EncounterID:   input.EncounterID,
		OwnerID:       input.OwnerID,
		ParticipantID: input.ParticipantID,
		HP:            ClampHP(input.HP, maxHP),
		Initiative:    input.Initiative,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update participant")
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	return &encounter.UpdateParticipantOutput{
		Participant: &entities.ParticipantView{
			Participant:  *updateOut.Participant,
			CreatureName: creatureOut.Creature.Name,
			MaxHP:        maxHP,
		},
	}, nil
}

// RollInitiative rolls 1d20 and stores the result as the participant's
// initiative.
func (o *Orchestrator) RollInitiative(ctx context.Context, input *encounter.RollInitiativeInput) (*encounter.RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	participant, err := o.findParticipant(ctx, input.OwnerID, input.EncounterID, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	total, description, err := o.roller.Roll(1, 20)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll initiative")
	}
	slog.InfoContext(ctx, "rolled initiative",
		"encounter_id", input.EncounterID,
		"participant_id", input.ParticipantID,
		"roll", description,
	)

	creatureOut, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{
		CreatureID: participant.CreatureID,
		OwnerID:    input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get creature")
	}

	updateOut, err := o.encounterRepo.UpdateParticipant(ctx, &encounterrepo.UpdateParticipantInput{
		EncounterID:   input.EncounterID,
		OwnerID:       input.OwnerID,
		ParticipantID: input.ParticipantID,
		HP:            participant.HP,
		Initiative:    total,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store initiative")
	}

	o.notifier.EncounterUpdated(input.OwnerID, input.EncounterID)

	return &encounter.RollInitiativeOutput{
		Participant: &entities.ParticipantView{
			Participant:  *updateOut.Participant,
			CreatureName: creatureOut.Creature.Name,
			MaxHP:        creatureOut.Creature.MaxHP,
		},
		Roll:        total,
		Description: description,
	}, nil
}

// LoadEncounterView implements notify.ViewLoader.
func (o *Orchestrator) LoadEncounterView(ctx context.Context, userID, encounterID string) (*entities.EncounterView, error) {
	return o.loadView(ctx, userID, encounterID)
}

func (o *Orchestrator) loadView(ctx context.Context, ownerID, encounterID string) (*entities.EncounterView, error) {
	out, err := o.encounterRepo.Get(ctx, &encounterrepo.GetInput{
		EncounterID: encounterID,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	views, err := o.buildViews(ctx, ownerID, out.Participants)
	if err != nil {
		return nil, err
	}

	return &entities.EncounterView{
		Encounter:    *out.Encounter,
		Participants: views,
	}, nil
}

// buildViews joins participants with their creature templates,
// preserving the roster's order. Rosters repeat creatures, so each
// distinct template is fetched once; a deleted creature leaves the
// participant's view blank rather than failing the read.
func (o *Orchestrator) buildViews(ctx context.Context, ownerID string, participants []entities.Participant) ([]entities.ParticipantView, error) {
	if len(participants) == 0 {
		return nil, nil
	}

	byID := make(map[string]*entities.Creature, len(participants))
	for _, p := range participants {
		if _, ok := byID[p.CreatureID]; ok {
			continue
		}
		out, err := o.creatureRepo.Get(ctx, &creaturerepo.GetInput{
			CreatureID: p.CreatureID,
			OwnerID:    ownerID,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				byID[p.CreatureID] = nil
				continue
			}
			return nil, errors.Wrap(err, "failed to get creature")
		}
		byID[p.CreatureID] = out.Creature
	}

	views := make([]entities.ParticipantView, 0, len(participants))
	for _, p := range participants {
		view := entities.ParticipantView{Participant: p}
		if c := byID[p.CreatureID]; c != nil {
			view.CreatureName = c.Name
			view.MaxHP = c.MaxHP
		}
		views = append(views, view)
	}
	return views, nil
}

func (o *Orchestrator) attach(ctx context.Context, ownerID, encounterID string, creature *entities.Creature) (*entities.ParticipantView, error) {
	addOut, err := o.encounterRepo.AddParticipant(ctx, &encounterrepo.AddParticipantInput{
		EncounterID: encounterID,
		OwnerID:     ownerID,
		Participant: &entities.Participant{
			ID:          o.idGenerator.Generate(),
			CreatureID:  creature.ID,
			EncounterID: encounterID,
			HP:          creature.MaxHP,
			Initiative:  0,
			IsActive:    false,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add participant")
	}

	return &entities.ParticipantView{
		Participant:  *addOut.Participant,
		CreatureName: creature.Name,
		MaxHP:        creature.MaxHP,
	}, nil
}

func (o *Orchestrator) findParticipant(ctx context.Context, ownerID, encounterID, participantID string) (*entities.Participant, error) {
	out, err := o.encounterRepo.ListParticipants(ctx, &encounterrepo.ListParticipantsInput{
		EncounterID: encounterID,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}

	for i := range out.Participants {
		if out.Participants[i].ID == participantID {
			return &out.Participants[i], nil
		}
	}
	return nil, errors.NotFoundf("participant %s not found in encounter %s", participantID, encounterID)
}

func toEngine(ps []entities.Participant) []turnorder.Participant {
	out := make([]turnorder.Participant, 0, len(ps))
	for _, p := range ps {
		out = append(out, turnorder.Participant{
			ID:         p.ID,
			Initiative: p.Initiative,
			HP:         p.HP,
			IsActive:   p.IsActive,
		})
	}
	return out
}

func activeID(ps []entities.Participant) string {
	for _, p := range ps {
		if p.IsActive {
			return p.ID
		}
	}
	return ""
}
