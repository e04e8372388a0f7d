package policy

import (
	"strings"

	"number-caster/diagnostic"
	"number-caster/internal/common"
)

// TargetEnum identifies the target representation a source type resolves to.
type TargetEnum int

const (
	// TargetUndefined is the "no override" value for the per-condition
	// override settings.
	TargetUndefined TargetEnum = iota

	TargetDecimal
	TargetDouble
	TargetInteger
	TargetVarchar

	// TargetTotal is a constant that represents the total number of targets defined
	TargetTotal = int(iota)
)

// allowedTargets is the closed set of target kinds accepted by the
// default-type and override settings.
var allowedTargets = []TargetEnum{TargetDecimal, TargetDouble, TargetInteger, TargetVarchar}

// String returns the configuration-facing target name.
func (t TargetEnum) String() string {
	switch t {
	case TargetUndefined:
		return "UNDEFINED"
	case TargetDecimal:
		return "DECIMAL"
	case TargetDouble:
		return "DOUBLE"
	case TargetInteger:
		return "INTEGER"
	case TargetVarchar:
		return "VARCHAR"
	default:
		return common.UnknownStr
	}
}

// ParseTarget parses a configuration-facing target name. Only the closed set
// {DECIMAL, DOUBLE, INTEGER, VARCHAR} is accepted; anything else fails with
// the allowed values enumerated in the error.
func ParseTarget(name string) (TargetEnum, error) {
	upper := strings.ToUpper(name)
	for _, t := range allowedTargets {
		if upper == t.String() {
			return t, nil
		}
	}

	var allowed []string
	for _, t := range allowedTargets {
		allowed = append(allowed, t.String())
	}

	return TargetUndefined, diagnostic.ConfigInvalid(
		"%q is not a valid target type; allowed values: %s", name, strings.Join(allowed, ", "))
}
