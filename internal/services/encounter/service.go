// Package encounter defines the interface for encounter operations
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/gleasonw/lidnd/internal/services/encounter Service

import (
	"context"

	"github.com/gleasonw/lidnd/internal/engine/turnorder"
	"github.com/gleasonw/lidnd/internal/entities"
)

// Service defines the interface for encounter operations. Every input
// carries the OwnerID of the authenticated caller; operations on
// encounters the caller does not own fail with NotFound.
type Service interface {
	// Encounter CRUD
	CreateEncounter(ctx context.Context, input *CreateEncounterInput) (*CreateEncounterOutput, error)
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)
	ListEncounters(ctx context.Context, input *ListEncountersInput) (*ListEncountersOutput, error)
	UpdateEncounter(ctx context.Context, input *UpdateEncounterInput) (*UpdateEncounterOutput, error)
	DeleteEncounter(ctx context.Context, input *DeleteEncounterInput) (*DeleteEncounterOutput, error)

	// Lifecycle
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)
	StopEncounter(ctx context.Context, input *StopEncounterInput) (*StopEncounterOutput, error)
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// Roster management
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)
	AddCreatureParticipant(ctx context.Context, input *AddCreatureParticipantInput) (*AddCreatureParticipantOutput, error)
	CreateCreatureAndAdd(ctx context.Context, input *CreateCreatureAndAddInput) (*CreateCreatureAndAddOutput, error)
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)
	UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error)
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)
}

// CreateEncounterInput defines the request for creating an encounter
type CreateEncounterInput struct {
	OwnerID     string
	Name        string
	Description string
}

// CreateEncounterOutput defines the response for creating an encounter
type CreateEncounterOutput struct {
	Encounter *entities.Encounter
}

// GetEncounterInput defines the request for fetching an encounter
type GetEncounterInput struct {
	OwnerID     string
	EncounterID string
}

// GetEncounterOutput defines the response for fetching an encounter
type GetEncounterOutput struct {
	View *entities.EncounterView
}

// ListEncountersInput defines the request for listing encounters
type ListEncountersInput struct {
	OwnerID string
}

// ListEncountersOutput defines the response for listing encounters
type ListEncountersOutput struct {
	Encounters []*entities.Encounter
}

// UpdateEncounterInput defines the request for updating an encounter
type UpdateEncounterInput struct {
	OwnerID     string
	EncounterID string
	Name        string
	Description string
}

// UpdateEncounterOutput defines the response for updating an encounter
type UpdateEncounterOutput struct {
	Encounter *entities.Encounter
}

// DeleteEncounterInput defines the request for deleting an encounter
type DeleteEncounterInput struct {
	OwnerID     string
	EncounterID string
}

// DeleteEncounterOutput defines the response for deleting an encounter
type DeleteEncounterOutput struct{}

// StartEncounterInput defines the request for starting an encounter
type StartEncounterInput struct {
	OwnerID     string
	EncounterID string
}

// StartEncounterOutput defines the response for starting an encounter
type StartEncounterOutput struct {
	View *entities.EncounterView
}

// StopEncounterInput defines the request for stopping an encounter
type StopEncounterInput struct {
	OwnerID     string
	EncounterID string
}

// StopEncounterOutput defines the response for stopping an encounter
type StopEncounterOutput struct {
	Encounter *entities.Encounter
}

// AdvanceTurnInput defines the request for advancing the turn
type AdvanceTurnInput struct {
	OwnerID     string
	EncounterID string
	Direction   turnorder.Direction
}

// AdvanceTurnOutput defines the response for advancing the turn
type AdvanceTurnOutput struct {
	ActiveParticipantID string
	Participants        []entities.ParticipantView
}

// ListParticipantsInput defines the request for listing a roster
type ListParticipantsInput struct {
	OwnerID     string
	EncounterID string
}

// ListParticipantsOutput defines the response for listing a roster
type ListParticipantsOutput struct {
	Participants []entities.ParticipantView
}

// AddCreatureParticipantInput defines the request for attaching an
// existing creature to an encounter
type AddCreatureParticipantInput struct {
	OwnerID     string
	EncounterID string
	CreatureID  string
}

// AddCreatureParticipantOutput defines the response for attaching a creature
type AddCreatureParticipantOutput struct {
	Participant *entities.ParticipantView
}

// CreateCreatureAndAddInput defines the request for creating a creature
// and attaching it in one step
type CreateCreatureAndAddInput struct {
	OwnerID         string
	EncounterID     string
	Name            string
	MaxHP           int
	ChallengeRating float64
	IsPlayer        bool
	Icon            []byte
	StatBlock       []byte
}

// CreateCreatureAndAddOutput defines the response for create-and-attach
type CreateCreatureAndAddOutput struct {
	Creature    *entities.Creature
	Participant *entities.ParticipantView
}

// RemoveParticipantInput defines the request for detaching a participant
type RemoveParticipantInput struct {
	OwnerID       string
	EncounterID   string
	ParticipantID string
}

// RemoveParticipantOutput defines the response for detaching a participant
type RemoveParticipantOutput struct{}

// UpdateParticipantInput defines the request for rewriting a
// participant's hit points and initiative
type UpdateParticipantInput struct {
	OwnerID       string
	EncounterID   string
	ParticipantID string
	HP            int
	Initiative    int
}

// UpdateParticipantOutput defines the response for updating a participant
type UpdateParticipantOutput struct {
	Participant *entities.ParticipantView
}

// RollInitiativeInput defines the request for rolling a participant's
// initiative
type RollInitiativeInput struct {
	OwnerID       string
	EncounterID   string
	ParticipantID string
}

// RollInitiativeOutput defines the response for rolling initiative
type RollInitiativeOutput struct {
	Participant *entities.ParticipantView
	Roll        int
	Description string
}
