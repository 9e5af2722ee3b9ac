package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
)

// Run Away rules: roll one die, escape on EscapeThreshold or better
const (
	EscapeDieSize   = 6
	EscapeThreshold = 5
)

// EscapeResult is the outcome of a Run Away roll
type EscapeResult struct {
	Roll    int  `json:"roll"`
	Escaped bool `json:"escaped"`
}

// RollEscape rolls 1d6 for a Run Away attempt
func RollEscape(roller dice.Roller) (*EscapeResult, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	roll, err := roller.Roll(EscapeDieSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll escape die")
	}

	return &EscapeResult{
		Roll:    roll,
		Escaped: roll >= EscapeThreshold,
	}, nil
}
