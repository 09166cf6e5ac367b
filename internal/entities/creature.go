// Package entities defines the core domain types for the lidnd encounter
// tracker: creatures, encounters, and encounter participants.
package entities

import "time"

// Creature is a reusable template a participant instantiates: a monster
// from the user's library or a player character. Edits to a creature do
// not rewrite participants already attached to encounters; a participant
// copies max HP at attach time and clamps against the current value on
// every HP write.
type Creature struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	MaxHP           int       `json:"max_hp"`
	ChallengeRating float64   `json:"challenge_rating"`
	IsPlayer        bool      `json:"is_player"`
	CreatedAt       time.Time `json:"created_at"`
}
