package resolve

import (
	"number-caster/convert"
	"number-caster/diagnostic"
	"number-caster/handle"
	"number-caster/policy"
)

// Number resolves the target representation for a variadic NUMBER-like
// source type. Decision sequence:
//
//  1. Start from the policy's default target kind.
//  2. An undefined source scale takes the null-scale override when one is
//     configured; otherwise a defined scale of exactly zero takes the
//     zero-scale override.
//  3. A decimal-bound descriptor that exceeds the target limits goes through
//     the overflow strategy: keep rounding, convert to varchar, skip, or fail.
//  4. The surviving target kind picks its parameters and conversion function.
//
// Number never silently drops precision: every lossy path is the result of
// the configured strategy, and the bound conversion function carries the
// rounding mode that will conform values at read time.
func Number(desc handle.Descriptor, cfg *policy.Config) Result {
	target := cfg.DefaultType()

	if desc.ScaleUndefined && cfg.NullScaleType() != policy.TargetUndefined {
		target = cfg.NullScaleType()
	} else if desc.Scale == 0 && cfg.ZeroScaleType() != policy.TargetUndefined {
		target = cfg.ZeroScaleType()
	}

	if target == policy.TargetDecimal && desc.LimitExceeded() {
		switch cfg.ExceedsLimits() {
		case policy.StrategyRound:
			// Keep the decimal mapping; rounding happens at read time.
		case policy.StrategyVarchar:
			target = policy.TargetVarchar
		case policy.StrategyIgnore:
			return skipped()
		case policy.StrategyFail:
			return failed(diagnostic.Unsupported(desc.Description(),
				"type exceeds limits, you can configure %q to change behavior", policy.KeyExceedsLimits))
		}
	}

	switch target {
	case policy.TargetDecimal:
		return resolveDecimal(desc, cfg)

	case policy.TargetInteger:
		return mapped(Mapping{
			Target: TargetType{Kind: policy.TargetInteger},
			Conv:   convert.Integer(),
		})

	case policy.TargetDouble:
		return resolveDouble(cfg)

	case policy.TargetVarchar:
		return mapped(Mapping{
			Target: TargetType{Kind: policy.TargetVarchar},
			Conv:   convert.Varchar(),
		})

	default:
		return failed(diagnostic.Unsupported(desc.Description(),
			"unsupported target %s for number handling", target))
	}
}

// resolveDecimal picks the effective precision and scale for a
// decimal-mapped descriptor and binds the matching conversion function.
func resolveDecimal(desc handle.Descriptor, cfg *policy.Config) Result {
	eff := desc

	// A scale at or above the precision, an undefined precision, or an
	// exceeded limit all widen the precision to the maximum.
	if eff.Scale >= eff.Precision || eff.PrecisionUndefined || eff.LimitExceeded() {
		eff = eff.WithPrecision(handle.MaxPrecision)
	}

	if desc.ScaleUndefined || desc.ScaleExceeded {
		switch {
		case cfg.DecimalDefaultScale() != handle.UndefinedScale:
			eff = eff.WithScale(cfg.DecimalDefaultScale())

		case cfg.RatioDefaultScale() != float32(handle.UndefinedScale):
			// Single-precision multiply then integer truncation, matching
			// the documented ratio examples bit for bit.
			ratio := cfg.RatioDefaultScale()
			eff = eff.WithScale(int(ratio * float32(min(eff.Precision, handle.MaxPrecision))))

		default:
			return failed(diagnostic.ConfigInvalid(
				"type has no scale: %s, and no default scale is set via %q or %q",
				desc.Description(), policy.KeyDecimalDefaultScale, policy.KeyRatioDefaultScale))
		}

		// A scale default can itself force the precision to widen.
		if eff.Precision <= eff.Scale {
			eff = eff.WithPrecision(handle.MaxPrecision)
		}
	}

	target := TargetType{Kind: policy.TargetDecimal, Precision: eff.Precision, Scale: eff.Scale}

	if desc.LimitExceeded() || desc.PrecisionUndefined || desc.ScaleUndefined {
		// The original descriptor was exceeded or underspecified, so values
		// may need conforming: bind the rounding conversion.
		mode, err := cfg.RoundMode()
		if err != nil {
			return failed(err)
		}

		return mapped(Mapping{Target: target, Conv: convert.RoundDecimal(eff.Scale, mode)})
	}

	return mapped(Mapping{Target: target, Conv: convert.Decimal(eff.Scale)})
}

// resolveDouble binds the double conversion, rounding to the configured
// double default scale when both a scale and a usable round mode exist.
func resolveDouble(cfg *policy.Config) Result {
	mode, err := cfg.RoundMode()
	if err != nil {
		return failed(err)
	}

	scale := cfg.DoubleDefaultScale()
	if mode == policy.RoundUnnecessary || scale == handle.UndefinedScale {
		return mapped(Mapping{
			Target: TargetType{Kind: policy.TargetDouble},
			Conv:   convert.Double(),
		})
	}

	return mapped(Mapping{
		Target: TargetType{Kind: policy.TargetDouble},
		Conv:   convert.RoundDouble(scale, mode),
	})
}
