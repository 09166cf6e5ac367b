// Package creature defines the interface for creature library operations
package creature

//go:generate mockgen -destination=mock/mock_service.go -package=creaturemock github.com/gleasonw/lidnd/internal/services/creature Service

import (
	"context"

	"github.com/gleasonw/lidnd/internal/entities"
)

// Service defines the interface for the per-user creature library.
type Service interface {
	CreateCreature(ctx context.Context, input *CreateCreatureInput) (*CreateCreatureOutput, error)
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)
	UpdateCreature(ctx context.Context, input *UpdateCreatureInput) (*UpdateCreatureOutput, error)
	DeleteCreature(ctx context.Context, input *DeleteCreatureInput) (*DeleteCreatureOutput, error)
	GetCreatureImages(ctx context.Context, input *GetCreatureImagesInput) (*GetCreatureImagesOutput, error)

	// ImportMonster creates a creature from an SRD monster stat block
	ImportMonster(ctx context.Context, input *ImportMonsterInput) (*ImportMonsterOutput, error)
}

// CreateCreatureInput defines the request for creating a creature
type CreateCreatureInput struct {
	OwnerID         string
	Name            string
	MaxHP           int
	ChallengeRating float64
	IsPlayer        bool
	Icon            []byte
	StatBlock       []byte
}

// CreateCreatureOutput defines the response for creating a creature
type CreateCreatureOutput struct {
	Creature *entities.Creature
}

// GetCreatureInput defines the request for fetching a creature
type GetCreatureInput struct {
	OwnerID    string
	CreatureID string
}

// GetCreatureOutput defines the response for fetching a creature
type GetCreatureOutput struct {
	Creature *entities.Creature
}

// ListCreaturesInput defines the request for listing creatures.
// NameFilter keeps creatures whose name contains the filter;
// ExcludeEncounterID drops creatures already in that encounter.
type ListCreaturesInput struct {
	OwnerID            string
	NameFilter         string
	ExcludeEncounterID string
}

// ListCreaturesOutput defines the response for listing creatures
type ListCreaturesOutput struct {
	Creatures []*entities.Creature
}

// UpdateCreatureInput defines the request for updating a creature
type UpdateCreatureInput struct {
	OwnerID         string
	CreatureID      string
	Name            string
	MaxHP           int
	ChallengeRating float64
	IsPlayer        bool
}

// UpdateCreatureOutput defines the response for updating a creature
type UpdateCreatureOutput struct {
	Creature *entities.Creature
}

// DeleteCreatureInput defines the request for deleting a creature
type DeleteCreatureInput struct {
	OwnerID    string
	CreatureID string
}

// DeleteCreatureOutput defines the response for deleting a creature
type DeleteCreatureOutput struct{}

// GetCreatureImagesInput defines the request for fetching image blobs
type GetCreatureImagesInput struct {
	OwnerID    string
	CreatureID string
}

// GetCreatureImagesOutput defines the response for fetching image blobs
type GetCreatureImagesOutput struct {
	Icon      []byte
	StatBlock []byte
}

// ImportMonsterInput defines the request for importing an SRD monster
type ImportMonsterInput struct {
	OwnerID    string
	MonsterKey string
}

// ImportMonsterOutput defines the response for importing an SRD monster
type ImportMonsterOutput struct {
	Creature *entities.Creature
}
