package entities

import "time"

// Encounter is a combat session owned by a single user. StartedAt is nil
// until the encounter starts; while combat runs, exactly one participant
// holds the active flag at a time.
type Encounter struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// Started reports whether combat is currently running. A stopped
// encounter can be started again.
func (e *Encounter) Started() bool {
	return e.StartedAt != nil && e.EndedAt == nil
}

// Participant is a creature's instance inside one encounter. HP is always
// clamped to [0, creature max HP] on write. Initiative may repeat across
// participants; turn order breaks ties by participant ID.
type Participant struct {
	ID          string `json:"id"`
	CreatureID  string `json:"creature_id"`
	EncounterID string `json:"encounter_id"`
	HP          int    `json:"hp"`
	Initiative  int    `json:"initiative"`
	IsActive    bool   `json:"is_active"`
}

// ParticipantView is a participant joined with its creature template,
// the shape every roster read returns.
type ParticipantView struct {
	Participant
	CreatureName string `json:"name"`
	MaxHP        int    `json:"max_hp"`
}

// EncounterView is an encounter with its full ordered roster, used by
// roster read endpoints and the chat mirror.
type EncounterView struct {
	Encounter
	Participants []ParticipantView `json:"participants"`
}
