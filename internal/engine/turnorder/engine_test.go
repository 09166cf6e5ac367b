package turnorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleasonw/lidnd/internal/engine/turnorder"
)

func participant(id string, initiative, hp int, active bool) turnorder.Participant {
	return turnorder.Participant{ID: id, Initiative: initiative, HP: hp, IsActive: active}
}

func TestSortedOrdersByInitiativeThenID(t *testing.T) {
	ps := []turnorder.Participant{
		participant("b", 10, 5, false),
		participant("c", 5, 5, false),
		participant("a", 10, 5, false),
	}

	sorted := turnorder.Sorted(ps)

	ids := make([]string, 0, len(sorted))
	for _, p := range sorted {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)

	// Input untouched.
	assert.Equal(t, "b", ps[0].ID)
}

func TestAdvanceNextWrapsAround(t *testing.T) {
	ps := []turnorder.Participant{
		participant("goblin", 5, 7, false),
		participant("fighter", 18, 20, true),
	}

	// fighter sorts last; next wraps to goblin.
	id, err := turnorder.Advance(ps, turnorder.Next)
	require.NoError(t, err)
	assert.Equal(t, "goblin", id)
}

func TestAdvancePreviousWrapsAround(t *testing.T) {
	ps := []turnorder.Participant{
		participant("goblin", 5, 7, true),
		participant("fighter", 18, 20, false),
	}

	id, err := turnorder.Advance(ps, turnorder.Previous)
	require.NoError(t, err)
	assert.Equal(t, "fighter", id)
}

func TestAdvanceTieBreaksByID(t *testing.T) {
	// Initiatives [10, 10, 5] with A active: next must be B, not C.
	ps := []turnorder.Participant{
		participant("A", 10, 8, true),
		participant("B", 10, 8, false),
		participant("C", 5, 8, false),
	}

	id, err := turnorder.Advance(ps, turnorder.Next)
	require.NoError(t, err)
	assert.Equal(t, "B", id)
}

func TestAdvanceSkipsDownedParticipants(t *testing.T) {
	// Spec scenario: (1, init 20, hp 10) active, (2, init 15, hp 0),
	// (3, init 15, hp 8). Next must skip 2 and land on 3.
	ps := []turnorder.Participant{
		participant("1", 20, 10, true),
		participant("2", 15, 0, false),
		participant("3", 15, 8, false),
	}

	id, err := turnorder.Advance(ps, turnorder.Next)
	require.NoError(t, err)
	assert.Equal(t, "3", id)
}

func TestAdvanceKeepsDyingActiveInRotation(t *testing.T) {
	// The active participant stays eligible at 0 hp so it can cede its
	// turn explicitly.
	ps := []turnorder.Participant{
		participant("dying", 12, 0, true),
		participant("cleric", 8, 9, false),
	}

	id, err := turnorder.Advance(ps, turnorder.Next)
	require.NoError(t, err)
	assert.Equal(t, "cleric", id)
}

func TestAdvanceAllDownedExceptActiveIsNoop(t *testing.T) {
	ps := []turnorder.Participant{
		participant("last", 10, 0, true),
		participant("down1", 15, 0, false),
		participant("down2", 5, 0, false),
	}

	next, err := turnorder.Advance(ps, turnorder.Next)
	require.NoError(t, err)
	assert.Equal(t, "last", next)

	prev, err := turnorder.Advance(ps, turnorder.Previous)
	require.NoError(t, err)
	assert.Equal(t, "last", prev)
}

func TestAdvanceSingleEligibleSelfLoop(t *testing.T) {
	ps := []turnorder.Participant{participant("solo", 14, 3, true)}

	next, err := turnorder.Advance(ps, turnorder.Next)
	require.NoError(t, err)
	assert.Equal(t, "solo", next)

	prev, err := turnorder.Advance(ps, turnorder.Previous)
	require.NoError(t, err)
	assert.Equal(t, "solo", prev)
}

func TestAdvanceRoundTrip(t *testing.T) {
	// next then previous from the resulting state lands back on the
	// original active participant, for several rosters.
	rosters := [][]turnorder.Participant{
		{
			participant("a", 3, 5, true),
			participant("b", 7, 5, false),
			participant("c", 12, 5, false),
		},
		{
			participant("a", 10, 5, false),
			participant("b", 10, 5, true),
			participant("c", 10, 5, false),
			participant("d", 2, 0, false),
		},
		{
			participant("x", 1, 1, true),
			participant("y", 1, 1, false),
		},
	}

	for _, ps := range rosters {
		var activeID string
		for _, p := range ps {
			if p.IsActive {
				activeID = p.ID
			}
		}

		nextID, err := turnorder.Advance(ps, turnorder.Next)
		require.NoError(t, err)

		// Re-point the active flag at the decision, as the caller's
		// persist step would.
		moved := make([]turnorder.Participant, len(ps))
		for i, p := range ps {
			p.IsActive = p.ID == nextID
			moved[i] = p
		}

		backID, err := turnorder.Advance(moved, turnorder.Previous)
		require.NoError(t, err)
		assert.Equal(t, activeID, backID)
	}
}

func TestAdvanceErrors(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		_, err := turnorder.Advance(nil, turnorder.Next)
		assert.ErrorIs(t, err, turnorder.ErrNoParticipants)
	})

	t.Run("no active participant", func(t *testing.T) {
		ps := []turnorder.Participant{
			participant("a", 10, 5, false),
			participant("b", 5, 5, false),
		}
		_, err := turnorder.Advance(ps, turnorder.Next)
		assert.ErrorIs(t, err, turnorder.ErrNoActiveParticipant)
	})

	t.Run("everyone downed and nobody active", func(t *testing.T) {
		ps := []turnorder.Participant{
			participant("a", 10, 0, false),
			participant("b", 5, 0, false),
		}
		_, err := turnorder.Advance(ps, turnorder.Next)
		assert.ErrorIs(t, err, turnorder.ErrNoEligibleParticipants)
	})

	t.Run("invalid direction", func(t *testing.T) {
		ps := []turnorder.Participant{participant("a", 10, 5, true)}
		_, err := turnorder.Advance(ps, turnorder.Direction("sideways"))
		assert.ErrorIs(t, err, turnorder.ErrInvalidDirection)
	})
}

func TestInitialActive(t *testing.T) {
	t.Run("highest initiative wins", func(t *testing.T) {
		ps := []turnorder.Participant{
			participant("goblin", 5, 7, false),
			participant("rogue", 21, 14, false),
			participant("fighter", 18, 20, false),
		}
		id, err := turnorder.InitialActive(ps)
		require.NoError(t, err)
		assert.Equal(t, "rogue", id)
	})

	t.Run("ties broken by lowest ID", func(t *testing.T) {
		ps := []turnorder.Participant{
			participant("b", 15, 7, false),
			participant("a", 15, 7, false),
		}
		id, err := turnorder.InitialActive(ps)
		require.NoError(t, err)
		assert.Equal(t, "a", id)
	})

	t.Run("empty roster", func(t *testing.T) {
		_, err := turnorder.InitialActive(nil)
		assert.ErrorIs(t, err, turnorder.ErrNoParticipants)
	})
}

func TestCompareIsTotal(t *testing.T) {
	assert.Negative(t, turnorder.Compare(5, "z", 10, "a"))
	assert.Positive(t, turnorder.Compare(10, "a", 5, "z"))
	assert.Negative(t, turnorder.Compare(10, "a", 10, "b"))
	assert.Zero(t, turnorder.Compare(10, "a", 10, "a"))
}
