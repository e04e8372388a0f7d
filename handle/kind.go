package handle

import (
	"fmt"
	"strings"

	"number-caster/internal/common"
)

// KindEnum identifies the source-reported column type tag.
type KindEnum int

const (
	KindUnknown KindEnum = iota

	KindNumeric
	KindDecimal
	KindFloat
	KindDouble
	KindReal
	KindInteger
	KindVarchar

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns the source-facing kind name.
func (k KindEnum) String() string {
	switch k {
	case KindNumeric:
		return "NUMERIC"
	case KindDecimal:
		return "DECIMAL"
	case KindFloat:
		return "FLOAT"
	case KindDouble:
		return "DOUBLE"
	case KindReal:
		return "REAL"
	case KindInteger:
		return "INTEGER"
	case KindVarchar:
		return "VARCHAR"
	default:
		return common.UnknownStr
	}
}

// IsNumber reports whether the kind takes the variadic NUMBER resolution
// path. Fixed floating-point kinds (FLOAT, DOUBLE, REAL) do not; their
// representation is not policy-driven.
func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindNumeric, KindDecimal:
		return true
	}
}

// hasPrecisionScale reports whether descriptions of this kind render as
// kind(precision, scale) rather than kind(columnSize).
func (k KindEnum) hasPrecisionScale() bool {
	switch k {
	default:
		return false
	case KindNumeric, KindDecimal, KindFloat, KindDouble, KindReal:
		return true
	}
}

// ParseKind parses a source-facing kind name, case-insensitively.
func ParseKind(name string) (KindEnum, error) {
	switch strings.ToUpper(name) {
	case "NUMERIC":
		return KindNumeric, nil
	case "DECIMAL":
		return KindDecimal, nil
	case "FLOAT":
		return KindFloat, nil
	case "DOUBLE":
		return KindDouble, nil
	case "REAL":
		return KindReal, nil
	case "INTEGER":
		return KindInteger, nil
	case "VARCHAR":
		return KindVarchar, nil
	default:
		return KindUnknown, fmt.Errorf("unknown source kind %q", name)
	}
}
