package convert

import (
	"math/big"

	"github.com/shopspring/decimal"

	"number-caster/diagnostic"
	"number-caster/policy"
)

// Rescale conforms d to exactly scale fractional digits using the given
// rounding mode. With RoundUnnecessary the rescale fails if any digit would
// be lost.
func Rescale(d decimal.Decimal, scale int, mode policy.RoundModeEnum) (decimal.Decimal, error) {
	places := int32(scale)

	switch mode {
	case policy.RoundCeiling:
		return d.RoundCeil(places), nil
	case policy.RoundFloor:
		return d.RoundFloor(places), nil
	case policy.RoundDown:
		return d.RoundDown(places), nil
	case policy.RoundUp:
		return d.RoundUp(places), nil
	case policy.RoundHalfUp:
		return d.Round(places), nil
	case policy.RoundHalfEven:
		return d.RoundBank(places), nil
	case policy.RoundHalfDown:
		return roundHalfDown(d, places), nil
	case policy.RoundUnnecessary:
		truncated := d.Truncate(places)
		if !truncated.Equal(d) {
			return decimal.Decimal{}, diagnostic.RescaleLoss(
				"", "value %s does not fit scale %d and the round mode is UNNECESSARY", d, scale)
		}

		return truncated, nil
	default:
		return decimal.Decimal{}, diagnostic.ConfigInvalid("round mode %d is not valid", int(mode))
	}
}

// roundHalfDown rounds to the nearest neighbor with ties toward zero.
// shopspring/decimal ships the other seven modes but not this one.
func roundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	truncated := d.Truncate(places)
	remainder := d.Sub(truncated).Abs()
	half := decimal.New(5, -places-1)

	if remainder.GreaterThan(half) {
		// More than half a step away from the truncation: round away from
		// zero, which is what half-up does past the tie point.
		return d.Round(places)
	}

	return truncated
}

// Unscaled returns the unscaled integer of d at the given scale, i.e.
// d * 10^scale. The caller must have rescaled d to at most scale fractional
// digits first; remaining fraction would be truncated.
func Unscaled(d decimal.Decimal, scale int) *big.Int {
	return d.Shift(int32(scale)).BigInt()
}
