// Package encounters defines the storage interface for encounters and
// their participant rosters.
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountersmock github.com/gleasonw/lidnd/internal/repositories/encounters Repository

import (
	"context"
	"time"

	"github.com/gleasonw/lidnd/internal/entities"
)

// Repository is the participant store. An encounter exclusively owns its
// participants: deleting the encounter deletes the roster with it. Every
// operation scopes by owner, so a caller can never read or mutate another
// user's encounter; mismatches surface as NotFound.
//
// Roster-returning operations order participants by the canonical turn
// order (initiative ascending, participant ID ascending).
type Repository interface {
	// Create stores a new encounter with an empty roster
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves an encounter by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List retrieves all encounters belonging to an owner
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Update rewrites an encounter's name and description
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes an encounter and its participants
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// ListParticipants returns the ordered roster
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// AddParticipant attaches a participant to the roster
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// RemoveParticipant detaches a participant from the roster
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// UpdateParticipant rewrites a participant's hp and initiative. The
	// caller clamps hp before the write.
	UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error)

	// SetActive flips NewActiveID to active and PreviousActiveID to
	// inactive in a single write. The write applies even when
	// PreviousActiveID no longer holds the flag: last writer wins, no
	// optimistic check. Concurrent advances race by design; callers that
	// need strict ordering serialize per encounter.
	SetActive(ctx context.Context, input *SetActiveInput) (*SetActiveOutput, error)

	// SetStarted records the start timestamp and seeds the initial
	// active participant in one write
	SetStarted(ctx context.Context, input *SetStartedInput) (*SetStartedOutput, error)

	// SetStopped records the end timestamp and clears every active flag
	SetStopped(ctx context.Context, input *SetStoppedInput) (*SetStoppedOutput, error)
}

// CreateInput defines the request for creating an encounter
type CreateInput struct {
	Encounter *entities.Encounter
}

// CreateOutput defines the response for creating an encounter
type CreateOutput struct {
	Encounter *entities.Encounter
}

// GetInput defines the request for retrieving an encounter
type GetInput struct {
	EncounterID string
	OwnerID     string
}

// GetOutput defines the response for retrieving an encounter
type GetOutput struct {
	Encounter    *entities.Encounter
	Participants []entities.Participant
}

// ListInput defines the request for listing an owner's encounters
type ListInput struct {
	OwnerID string
}

// ListOutput defines the response for listing an owner's encounters
type ListOutput struct {
	Encounters []*entities.Encounter
}

// UpdateInput defines the request for updating an encounter
type UpdateInput struct {
	EncounterID string
	OwnerID     string
	Name        string
	Description string
}

// UpdateOutput defines the response for updating an encounter
type UpdateOutput struct {
	Encounter *entities.Encounter
}

// DeleteInput defines the request for deleting an encounter
type DeleteInput struct {
	EncounterID string
	OwnerID     string
}

// DeleteOutput defines the response for deleting an encounter
type DeleteOutput struct{}

// ListParticipantsInput defines the request for listing a roster
type ListParticipantsInput struct {
	EncounterID string
	OwnerID     string
}

// ListParticipantsOutput defines the response for listing a roster
type ListParticipantsOutput struct {
	Participants []entities.Participant
}

// AddParticipantInput defines the request for attaching a participant
type AddParticipantInput struct {
	EncounterID string
	OwnerID     string
	Participant *entities.Participant
}

// AddParticipantOutput defines the response for attaching a participant
type AddParticipantOutput struct {
	Participant *entities.Participant
}

// RemoveParticipantInput defines the request for detaching a participant
type RemoveParticipantInput struct {
	EncounterID   string
	OwnerID       string
	ParticipantID string
}

// RemoveParticipantOutput defines the response for detaching a participant
type RemoveParticipantOutput struct{}

// UpdateParticipantInput defines the request for rewriting hp/initiative
type UpdateParticipantInput struct {
	EncounterID   string
	OwnerID       string
	ParticipantID string
	HP            int
	Initiative    int
}

// UpdateParticipantOutput defines the response for rewriting hp/initiative
type UpdateParticipantOutput struct {
	Participant *entities.Participant
}

// SetActiveInput defines the request for moving the active flag
type SetActiveInput struct {
	EncounterID      string
	OwnerID          string
	NewActiveID      string
	PreviousActiveID string
}

// SetActiveOutput defines the response for moving the active flag
type SetActiveOutput struct {
	Participants []entities.Participant
}

// SetStartedInput defines the request for starting an encounter
type SetStartedInput struct {
	EncounterID     string
	OwnerID         string
	StartedAt       time.Time
	InitialActiveID string
}

// SetStartedOutput defines the response for starting an encounter
type SetStartedOutput struct {
	Encounter *entities.Encounter
}

// SetStoppedInput defines the request for stopping an encounter
type SetStoppedInput struct {
	EncounterID string
	OwnerID     string
	EndedAt     time.Time
}

// SetStoppedOutput defines the response for stopping an encounter
type SetStoppedOutput struct {
	Encounter *entities.Encounter
}
