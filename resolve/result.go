package resolve

import (
	"fmt"

	"number-caster/convert"
	"number-caster/internal/common"
	"number-caster/policy"
)

// OutcomeEnum tags the result of resolving one column.
type OutcomeEnum int

const (
	OutcomeUnknown OutcomeEnum = iota

	// OutcomeMapped means a target type and conversion function were bound.
	OutcomeMapped
	// OutcomeSkipped means the column is deliberately omitted from the
	// result schema. A skip is not a failure.
	OutcomeSkipped
	// OutcomeFailed means resolution hit a classified error.
	OutcomeFailed

	// OutcomeTotal is a constant that represents the total number of outcomes defined
	OutcomeTotal = int(iota)
)

// String returns a human-readable outcome name.
func (o OutcomeEnum) String() string {
	switch o {
	case OutcomeMapped:
		return "mapped"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return common.UnknownStr
	}
}

// TargetType is the resolved target representation: the kind plus the
// decimal precision and scale when the kind carries them.
type TargetType struct {
	Kind      policy.TargetEnum
	Precision int
	Scale     int
}

// String renders the target, e.g. "DECIMAL(38, 19)" or "DOUBLE".
func (t TargetType) String() string {
	if t.Kind == policy.TargetDecimal {
		return fmt.Sprintf("%s(%d, %d)", t.Kind, t.Precision, t.Scale)
	}

	return t.Kind.String()
}

// Mapping pairs a resolved target type with the conversion function applied
// to each fetched row value. Mappings are cheap to construct and created
// fresh per column.
//
// Mapping is comparable: two mappings are equal only when both the target
// type and the bound conversion strategy (with its parameters) agree.
type Mapping struct {
	Target TargetType
	Conv   convert.Converter
}

// Result is the tagged outcome of resolving one column:
// {Mapped(Mapping), Skipped, Failed(err)}.
type Result struct {
	Outcome OutcomeEnum
	Mapping Mapping
	Err     error
}

func mapped(m Mapping) Result {
	return Result{Outcome: OutcomeMapped, Mapping: m}
}

func skipped() Result {
	return Result{Outcome: OutcomeSkipped}
}

func failed(err error) Result {
	return Result{Outcome: OutcomeFailed, Err: err}
}
