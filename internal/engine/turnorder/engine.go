// Package turnorder decides which encounter participant acts next. It is
// pure: callers load the roster, ask for a decision, and persist the
// result themselves.
//
// Turn order is the total order (initiative ascending, participant ID
// ascending). Ascending initiative matches the roster ordering the
// original tracker returned to clients; the ID tie-break makes rotation
// deterministic when initiatives repeat.
package turnorder

import (
	"errors"
	"sort"
	"strings"
)

// Direction selects which neighbor of the active participant receives
// the turn.
type Direction string

// Directions accepted by Advance.
const (
	Next     Direction = "next"
	Previous Direction = "previous"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Next || d == Previous
}

// Decision errors. Callers map these onto their own error taxonomy.
var (
	// ErrNoParticipants: the roster is empty.
	ErrNoParticipants = errors.New("encounter has no participants")

	// ErrNoActiveParticipant: no participant holds the active flag, so
	// there is no position to advance from. Start the encounter first.
	ErrNoActiveParticipant = errors.New("no active participant")

	// ErrActiveParticipantMissing: the recorded active participant is no
	// longer in the roster (deleted mid-turn).
	ErrActiveParticipantMissing = errors.New("active participant no longer in encounter")

	// ErrNoEligibleParticipants: nobody can receive the turn.
	ErrNoEligibleParticipants = errors.New("no eligible participants")

	// ErrInvalidDirection: the direction is not "next" or "previous".
	ErrInvalidDirection = errors.New("invalid turn direction")
)

// Participant is the minimal view of a roster entry the engine needs.
type Participant struct {
	ID         string
	Initiative int
	HP         int
	IsActive   bool
}

// Compare orders two roster entries by the canonical total order:
// initiative ascending, then participant ID ascending. It returns a
// negative number, zero, or a positive number as a sorts before, equal
// to, or after b. Every roster read uses this same order.
func Compare(aInitiative int, aID string, bInitiative int, bID string) int {
	if aInitiative != bInitiative {
		return aInitiative - bInitiative
	}
	return strings.Compare(aID, bID)
}

// Sorted returns a copy of ps in the canonical total order.
func Sorted(ps []Participant) []Participant {
	out := make([]Participant, len(ps))
	copy(out, ps)
	sort.Slice(out, func(i, j int) bool {
		return Compare(out[i].Initiative, out[i].ID, out[j].Initiative, out[j].ID) < 0
	})
	return out
}

// eligible filters to participants that may hold the turn: anyone with
// hp > 0, plus the currently active participant even at 0 hp, so a dying
// participant still cedes its turn explicitly.
func eligible(ps []Participant) []Participant {
	out := make([]Participant, 0, len(ps))
	for _, p := range ps {
		if p.HP > 0 || p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// Advance returns the ID of the participant that holds the turn after
// moving one step in the given direction, wrapping around the roster.
// It does not mutate ps.
func Advance(ps []Participant, dir Direction) (string, error) {
	if !dir.Valid() {
		return "", ErrInvalidDirection
	}
	if len(ps) == 0 {
		return "", ErrNoParticipants
	}

	ring := eligible(Sorted(ps))
	if len(ring) == 0 {
		return "", ErrNoEligibleParticipants
	}

	activeIdx := -1
	for i, p := range ring {
		if p.IsActive {
			activeIdx = i
			break
		}
	}
	if activeIdx == -1 {
		return "", ErrNoActiveParticipant
	}

	// A single eligible participant keeps the turn, including the case
	// where everyone else is at 0 hp.
	switch dir {
	case Next:
		return ring[(activeIdx+1)%len(ring)].ID, nil
	case Previous:
		return ring[(activeIdx-1+len(ring))%len(ring)].ID, nil
	default:
		return "", ErrInvalidDirection
	}
}

// InitialActive picks the participant that opens a freshly started
// encounter: highest initiative, ties broken by lowest participant ID.
func InitialActive(ps []Participant) (string, error) {
	if len(ps) == 0 {
		return "", ErrNoParticipants
	}

	best := ps[0]
	for _, p := range ps[1:] {
		if p.Initiative > best.Initiative ||
			(p.Initiative == best.Initiative && p.ID < best.ID) {
			best = p
		}
	}
	return best.ID, nil
}
