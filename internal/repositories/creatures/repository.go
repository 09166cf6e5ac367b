// Package creatures defines the storage interface for the per-user
// creature library.
package creatures

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturesmock github.com/gleasonw/lidnd/internal/repositories/creatures Repository

import (
	"context"

	"github.com/gleasonw/lidnd/internal/entities"
)

// Repository stores creature templates and their image blobs. Owner
// scoping mirrors the encounter store: operations on creatures the
// caller does not own surface as NotFound.
type Repository interface {
	// Create stores a new creature
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a creature by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List retrieves an owner's creatures, optionally filtered
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Update rewrites a creature's mutable fields
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a creature and its image blobs
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// SetImages stores the icon and stat-block PNGs for a creature
	SetImages(ctx context.Context, input *SetImagesInput) (*SetImagesOutput, error)

	// GetImages fetches the stored image blobs for a creature
	GetImages(ctx context.Context, input *GetImagesInput) (*GetImagesOutput, error)
}

// CreateInput defines the request for creating a creature
type CreateInput struct {
	Creature *entities.Creature
}

// CreateOutput defines the response for creating a creature
type CreateOutput struct {
	Creature *entities.Creature
}

// GetInput defines the request for retrieving a creature
type GetInput struct {
	CreatureID string
	OwnerID    string
}

// GetOutput defines the response for retrieving a creature
type GetOutput struct {
	Creature *entities.Creature
}

// ListInput defines the request for listing creatures. NameFilter keeps
// creatures whose name contains the filter (case-insensitive);
// ExcludeEncounterParticipants drops creatures whose IDs appear in the
// given set, which callers use to offer only creatures not already in an
// encounter.
type ListInput struct {
	OwnerID            string
	NameFilter         string
	ExcludeCreatureIDs map[string]struct{}
}

// ListOutput defines the response for listing creatures
type ListOutput struct {
	Creatures []*entities.Creature
}

// UpdateInput defines the request for updating a creature
type UpdateInput struct {
	CreatureID      string
	OwnerID         string
	Name            string
	MaxHP           int
	ChallengeRating float64
	IsPlayer        bool
}

// UpdateOutput defines the response for updating a creature
type UpdateOutput struct {
	Creature *entities.Creature
}

// DeleteInput defines the request for deleting a creature
type DeleteInput struct {
	CreatureID string
	OwnerID    string
}

// DeleteOutput defines the response for deleting a creature
type DeleteOutput struct{}

// SetImagesInput defines the request for storing creature images
type SetImagesInput struct {
	CreatureID string
	OwnerID    string
	Icon       []byte
	StatBlock  []byte
}

// SetImagesOutput defines the response for storing creature images
type SetImagesOutput struct{}

// GetImagesInput defines the request for fetching creature images
type GetImagesInput struct {
	CreatureID string
	OwnerID    string
}

// GetImagesOutput defines the response for fetching creature images
type GetImagesOutput struct {
	Icon      []byte
	StatBlock []byte
}
