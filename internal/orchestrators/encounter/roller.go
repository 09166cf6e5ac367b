package encounter

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/gleasonw/lidnd/internal/errors"
)

// DiceRoller rolls dice for initiative. Tests inject a deterministic
// implementation.
type DiceRoller interface {
	// Roll rolls count dice of the given size and returns the total
	// plus a human-readable description like "+1d20[14]=14"
	Roll(count, size int) (total int, description string, err error)
}

// ToolkitRoller rolls with rpg-toolkit's cryptographic roller.
type ToolkitRoller struct{}

// Roll implements DiceRoller.
func (ToolkitRoller) Roll(count, size int) (int, string, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, "", errors.Wrapf(err, "failed to roll %dd%d", count, size)
	}
	return roll.GetValue(), roll.GetDescription(), nil
}
