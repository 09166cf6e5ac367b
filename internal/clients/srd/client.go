// Package srd imports monster stat blocks from the D&D 5e SRD API so a
// GM can stock a creature library without typing stat blocks by hand.
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/gleasonw/lidnd/internal/clients/srd Client

import (
	"context"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/gleasonw/lidnd/internal/errors"
)

// MonsterData is the subset of an SRD stat block the creature library
// keeps.
type MonsterData struct {
	Key             string
	Name            string
	HitPoints       int
	ChallengeRating float64
}

// MonsterRef is a name/key pair for browsing the SRD catalog.
type MonsterRef struct {
	Key  string
	Name string
}

// Client fetches monster data from the SRD.
type Client interface {
	// GetMonster fetches one monster's stat block by its SRD key
	GetMonster(ctx context.Context, key string) (*MonsterData, error)

	// ListMonsters returns the SRD monster catalog
	ListMonsters(ctx context.Context) ([]*MonsterRef, error)
}

// monsterAPI is the slice of the upstream client this package uses.
type monsterAPI interface {
	GetMonster(key string) (*entities.Monster, error)
	ListMonsters() ([]*entities.ReferenceItem, error)
}

// Config contains configuration options for the SRD client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type client struct {
	api monsterAPI
}

// New creates an SRD client with the given configuration. SRD content
// is static, so responses are cached for CacheTTL.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create D&D 5e API client")
	}

	return &client{
		api: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetMonster(_ context.Context, key string) (*MonsterData, error) {
	if key == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}

	monster, err := c.api.GetMonster(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			"failed to fetch monster "+key)
	}

	return &MonsterData{
		Key:             key,
		Name:            monster.Name,
		HitPoints:       monster.HitPoints,
		ChallengeRating: float64(monster.ChallengeRating),
	}, nil
}

func (c *client) ListMonsters(_ context.Context) ([]*MonsterRef, error) {
	refs, err := c.api.ListMonsters()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list monsters")
	}

	out := make([]*MonsterRef, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		out = append(out, &MonsterRef{Key: ref.Key, Name: ref.Name})
	}
	return out, nil
}
