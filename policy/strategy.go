package policy

import (
	"strings"

	"number-caster/diagnostic"
	"number-caster/internal/common"
)

// StrategyEnum identifies how a type that does not fit the target system is
// handled. The same enumeration backs two distinct settings: the overflow
// strategy (exceeds-limits) and the unsupported-type strategy, with ROUND
// legal only for the former.
type StrategyEnum int

const (
	StrategyUnknown StrategyEnum = iota

	// StrategyRound keeps the decimal mapping and rounds values at read time.
	StrategyRound
	// StrategyVarchar maps the offending type to unbounded text instead.
	StrategyVarchar
	// StrategyIgnore omits the column from the result schema.
	StrategyIgnore
	// StrategyFail aborts resolution with a classified error.
	StrategyFail

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// String returns the configuration-facing strategy name.
func (s StrategyEnum) String() string {
	switch s {
	case StrategyRound:
		return "ROUND"
	case StrategyVarchar:
		return "VARCHAR"
	case StrategyIgnore:
		return "IGNORE"
	case StrategyFail:
		return "FAIL"
	default:
		return common.UnknownStr
	}
}

// ParseStrategy parses a configuration-facing strategy name, case-insensitively.
func ParseStrategy(name string) (StrategyEnum, error) {
	switch strings.ToUpper(name) {
	case "ROUND":
		return StrategyRound, nil
	case "VARCHAR":
		return StrategyVarchar, nil
	case "IGNORE":
		return StrategyIgnore, nil
	case "FAIL":
		return StrategyFail, nil
	default:
		return StrategyUnknown, diagnostic.ConfigInvalid(
			"%q is not a valid handling strategy; allowed values: ROUND, VARCHAR, IGNORE, FAIL", name)
	}
}
