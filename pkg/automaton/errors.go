package automaton

import "errors"

var (
	// ErrInvalidDimension reports a non-positive or mismatched grid size.
	ErrInvalidDimension = errors.New("automaton: invalid dimension")
	// ErrOutOfBounds reports a cell address outside [0, n).
	ErrOutOfBounds = errors.New("automaton: cell out of bounds")
	// ErrInvalidRuleSet reports a birth or survival count outside [0, |mask|].
	ErrInvalidRuleSet = errors.New("automaton: invalid rule set")
	// ErrInvalidMask reports an empty neighbourhood or one containing the origin.
	ErrInvalidMask = errors.New("automaton: invalid neighbourhood mask")
	// ErrInvalidDensity reports a randomize density outside [0, 1].
	ErrInvalidDensity = errors.New("automaton: invalid density")
)
