package policy

import (
	"strings"

	"number-caster/diagnostic"
	"number-caster/internal/common"
)

// RoundModeEnum is one of the eight standard decimal rounding rules.
// RoundUnnecessary means no rounding is permitted: a rescale that would lose
// digits fails instead.
type RoundModeEnum int

const (
	_ RoundModeEnum = iota // skip zero value, use it as a default (invalid) value for RoundModeEnum

	RoundUp          // away from zero
	RoundDown        // toward zero
	RoundCeiling     // toward positive infinity
	RoundFloor       // toward negative infinity
	RoundHalfUp      // nearest neighbor, ties away from zero
	RoundHalfDown    // nearest neighbor, ties toward zero
	RoundHalfEven    // nearest neighbor, ties to even
	RoundUnnecessary // forbid inexact rescaling

	// RoundModeTotal is a constant that represents the total number of modes defined
	RoundModeTotal = int(iota)
)

// String returns the configuration-facing mode name.
func (m RoundModeEnum) String() string {
	switch m {
	case RoundUp:
		return "UP"
	case RoundDown:
		return "DOWN"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfDown:
		return "HALF_DOWN"
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundUnnecessary:
		return "UNNECESSARY"
	default:
		return common.UnknownStr
	}
}

// ParseRoundMode parses a configuration-facing mode name, case-insensitively.
func ParseRoundMode(name string) (RoundModeEnum, error) {
	switch strings.ToUpper(name) {
	case "UP":
		return RoundUp, nil
	case "DOWN":
		return RoundDown, nil
	case "CEILING":
		return RoundCeiling, nil
	case "FLOOR":
		return RoundFloor, nil
	case "HALF_UP":
		return RoundHalfUp, nil
	case "HALF_DOWN":
		return RoundHalfDown, nil
	case "HALF_EVEN":
		return RoundHalfEven, nil
	case "UNNECESSARY":
		return RoundUnnecessary, nil
	default:
		return 0, diagnostic.ConfigInvalid(
			"%q is not a valid round mode; allowed values: CEILING, DOWN, FLOOR, HALF_DOWN, HALF_EVEN, HALF_UP, UNNECESSARY, UP", name)
	}
}
