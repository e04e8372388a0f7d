package convert

import (
	"math"

	"github.com/shopspring/decimal"

	"number-caster/diagnostic"
	"number-caster/internal/common"
	"number-caster/policy"
)

// StrategyEnum identifies the conversion strategy a converter is bound to.
// Two converters with coinciding output types but different strategies are
// distinct: a rounding decimal conversion is never interchangeable with the
// pass-through one.
type StrategyEnum int

const (
	StrategyUnknown StrategyEnum = iota

	StrategyRoundDecimal
	StrategyDecimal
	StrategyRoundDouble
	StrategyDouble
	StrategyInteger
	StrategyVarchar

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// String returns a human-readable strategy name.
func (s StrategyEnum) String() string {
	switch s {
	case StrategyRoundDecimal:
		return "round decimal"
	case StrategyDecimal:
		return "decimal"
	case StrategyRoundDouble:
		return "round double"
	case StrategyDouble:
		return "double"
	case StrategyInteger:
		return "integer"
	case StrategyVarchar:
		return "varchar"
	default:
		return common.UnknownStr
	}
}

// Converter is a conversion function handle: a strategy plus its bound
// parameters. It is a comparable value type; == compares by strategy and
// parameters, never by resulting output type alone.
type Converter struct {
	Strategy StrategyEnum
	Scale    int
	Mode     policy.RoundModeEnum
}

// RoundDecimal returns the rounding decimal conversion: rescale to exactly
// scale fractional digits under mode, then encode the unscaled integer.
func RoundDecimal(scale int, mode policy.RoundModeEnum) Converter {
	return Converter{Strategy: StrategyRoundDecimal, Scale: scale, Mode: mode}
}

// Decimal returns the pass-through decimal conversion: encode the unscaled
// integer directly, assuming the value already fits the declared
// precision and scale.
func Decimal(scale int) Converter {
	return Converter{Strategy: StrategyDecimal, Scale: scale}
}

// RoundDouble returns the rounding double conversion: rescale at decimal
// precision first, then narrow. Naive narrowing of deep-precision decimals
// is numerically unstable; rescaling first keeps the result deterministic.
func RoundDouble(scale int, mode policy.RoundModeEnum) Converter {
	return Converter{Strategy: StrategyRoundDouble, Scale: scale, Mode: mode}
}

// Double returns the pass-through double conversion.
func Double() Converter {
	return Converter{Strategy: StrategyDouble}
}

// Integer returns the fixed-width integer conversion.
func Integer() Converter {
	return Converter{Strategy: StrategyInteger}
}

// Varchar returns the textual rendering conversion.
func Varchar() Converter {
	return Converter{Strategy: StrategyVarchar}
}

// Apply converts a fetched decimal value to the row-ready representation:
// *big.Int (unscaled) for decimal strategies, float64 for double strategies,
// int32 for integer, string for varchar.
func (c Converter) Apply(d decimal.Decimal) (any, error) {
	switch c.Strategy {
	case StrategyRoundDecimal:
		rescaled, err := Rescale(d, c.Scale, c.Mode)
		if err != nil {
			return nil, err
		}

		return Unscaled(rescaled, c.Scale), nil

	case StrategyDecimal:
		return Unscaled(d, c.Scale), nil

	case StrategyRoundDouble:
		rescaled, err := Rescale(d, c.Scale, c.Mode)
		if err != nil {
			return nil, err
		}

		return rescaled.InexactFloat64(), nil

	case StrategyDouble:
		return d.InexactFloat64(), nil

	case StrategyInteger:
		unscaled := d.BigInt() // integer part; integer-mapped columns carry no fraction
		if !unscaled.IsInt64() || unscaled.Int64() > math.MaxInt32 || unscaled.Int64() < math.MinInt32 {
			return nil, diagnostic.Unsupported(d.String(), "value does not fit a 32-bit integer")
		}

		return int32(unscaled.Int64()), nil

	case StrategyVarchar:
		// Canonical fixed-point form, never exponent notation.
		return d.String(), nil

	default:
		return nil, diagnostic.Unsupported("", "no conversion bound for strategy %d", int(c.Strategy))
	}
}
