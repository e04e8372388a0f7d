package policy

import (
	"number-caster/diagnostic"
	"number-caster/handle"
)

// MaxDoubleScale is the largest default scale accepted for double targets;
// beyond 15 significant fractional digits a float64 cannot hold the rescaled
// value exactly anyway.
const MaxDoubleScale = 15

// Config holds the validated resolution policy.
//
// The zero value is not usable; construct with NewConfig, which applies the
// documented defaults, then apply settings through the validating setters.
type Config struct {
	defaultType   TargetEnum
	zeroScaleType TargetEnum
	nullScaleType TargetEnum

	exceedsLimits   StrategyEnum
	unsupportedType StrategyEnum

	roundMode RoundModeEnum

	decimalDefaultScale int
	ratioDefaultScale   float32
	ratioSet            bool
	doubleDefaultScale  int
}

// NewConfig returns a Config with the default policy: map NUMBER to DECIMAL,
// round on overflow with HALF_EVEN, resolve undefined scales with a ratio of
// 1.0, and ignore unsupported types.
func NewConfig() *Config {
	return &Config{
		defaultType:         TargetDecimal,
		zeroScaleType:       TargetUndefined,
		nullScaleType:       TargetUndefined,
		exceedsLimits:       StrategyRound,
		unsupportedType:     StrategyIgnore,
		roundMode:           RoundHalfEven,
		decimalDefaultScale: handle.UndefinedScale,
		ratioDefaultScale:   1.0,
		doubleDefaultScale:  handle.UndefinedScale,
	}
}

// DefaultType returns the target kind a NUMBER maps to absent any override.
func (c *Config) DefaultType() TargetEnum {
	return c.defaultType
}

// SetDefaultType sets the default target kind for NUMBER sources.
func (c *Config) SetDefaultType(typeName string) error {
	target, err := ParseTarget(typeName)
	if err != nil {
		return err
	}

	c.defaultType = target

	return nil
}

// ZeroScaleType returns the override target for sources whose scale is
// exactly zero, or TargetUndefined when no override is set.
func (c *Config) ZeroScaleType() TargetEnum {
	return c.zeroScaleType
}

// SetZeroScaleType sets the override target for zero-scale sources. An empty
// name clears the override.
func (c *Config) SetZeroScaleType(typeName string) error {
	if typeName == "" {
		c.zeroScaleType = TargetUndefined
		return nil
	}

	target, err := ParseTarget(typeName)
	if err != nil {
		return err
	}

	c.zeroScaleType = target

	return nil
}

// NullScaleType returns the override target for sources whose scale is
// undefined, or TargetUndefined when no override is set.
func (c *Config) NullScaleType() TargetEnum {
	return c.nullScaleType
}

// SetNullScaleType sets the override target for undefined-scale sources. An
// empty name clears the override.
func (c *Config) SetNullScaleType(typeName string) error {
	if typeName == "" {
		c.nullScaleType = TargetUndefined
		return nil
	}

	target, err := ParseTarget(typeName)
	if err != nil {
		return err
	}

	c.nullScaleType = target

	return nil
}

// ExceedsLimits returns the overflow strategy applied when a decimal-mapped
// source exceeds the precision or scale limit.
func (c *Config) ExceedsLimits() StrategyEnum {
	return c.exceedsLimits
}

// SetExceedsLimits sets the overflow strategy. All four strategies are legal
// here, including ROUND.
func (c *Config) SetExceedsLimits(mode string) error {
	strategy, err := ParseStrategy(mode)
	if err != nil {
		return err
	}

	c.exceedsLimits = strategy

	return nil
}

// UnsupportedType returns the strategy applied when a source type cannot be
// resolved through the numeric path at all.
func (c *Config) UnsupportedType() StrategyEnum {
	return c.unsupportedType
}

// SetUnsupportedType sets the unsupported-type strategy. ROUND is only
// meaningful for the overflow setting and is rejected here.
func (c *Config) SetUnsupportedType(mode string) error {
	strategy, err := ParseStrategy(mode)
	if err != nil {
		return err
	}

	if strategy == StrategyRound {
		return diagnostic.ConfigInvalid("ROUND is not a valid option for %q", KeyUnsupportedType)
	}

	c.unsupportedType = strategy

	return nil
}

// RoundMode returns the configured rounding mode.
//
// The overflow-strategy cross check happens here rather than in the setters
// because the two fields may be set in either order: ROUND overflow handling
// with an UNNECESSARY rounding mode has no way to conform values to the
// target limits.
func (c *Config) RoundMode() (RoundModeEnum, error) {
	if c.exceedsLimits == StrategyRound && c.roundMode == RoundUnnecessary {
		return 0, diagnostic.ConfigInvalid(
			"%q must be set if %q is set to ROUND", KeyRoundMode, KeyExceedsLimits)
	}

	return c.roundMode, nil
}

// SetRoundMode sets the rounding mode used by lossy conversions.
func (c *Config) SetRoundMode(mode string) error {
	parsed, err := ParseRoundMode(mode)
	if err != nil {
		return err
	}

	c.roundMode = parsed

	return nil
}

// DecimalDefaultScale returns the fixed default scale for decimal targets,
// or handle.UndefinedScale when none is configured.
func (c *Config) DecimalDefaultScale() int {
	return c.decimalDefaultScale
}

// SetDecimalDefaultScale sets a fixed scale applied when a decimal-mapped
// source has no usable scale of its own. Passing handle.UndefinedScale
// clears the setting. Mutually exclusive with the ratio default scale.
func (c *Config) SetDecimalDefaultScale(scale int) error {
	if scale == handle.UndefinedScale {
		c.decimalDefaultScale = handle.UndefinedScale
		return nil
	}

	if c.ratioSet {
		return diagnostic.ConfigInvalid("%q is set, and conflicts with %q", KeyRatioDefaultScale, KeyDecimalDefaultScale)
	}

	if scale > handle.MaxPrecision {
		return diagnostic.ConfigInvalid("%s (%d) exceeds the max precision: %d", KeyDecimalDefaultScale, scale, handle.MaxPrecision)
	}

	c.decimalDefaultScale = scale

	return nil
}

// RatioDefaultScale returns the ratio default scale for decimal targets, or
// float32(handle.UndefinedScale) when cleared. The documented default is 1.0.
func (c *Config) RatioDefaultScale() float32 {
	return c.ratioDefaultScale
}

// SetRatioDefaultScale sets a scale computed as a fraction of the resolved
// precision, applied when a decimal-mapped source has no usable scale of its
// own. Passing handle.UndefinedScale clears the setting. Mutually exclusive
// with the fixed decimal default scale.
func (c *Config) SetRatioDefaultScale(ratio float32) error {
	if ratio == float32(handle.UndefinedScale) {
		c.ratioDefaultScale = float32(handle.UndefinedScale)
		c.ratioSet = false

		return nil
	}

	if c.decimalDefaultScale != handle.UndefinedScale {
		return diagnostic.ConfigInvalid("%q is set, and conflicts with %q", KeyDecimalDefaultScale, KeyRatioDefaultScale)
	}

	if ratio > 1.0 {
		return diagnostic.ConfigInvalid("%s (%f) exceeds 1.0", KeyRatioDefaultScale, ratio)
	}

	c.ratioDefaultScale = ratio
	c.ratioSet = true

	return nil
}

// DoubleDefaultScale returns the fixed default scale for double targets, or
// handle.UndefinedScale when none is configured.
func (c *Config) DoubleDefaultScale() int {
	return c.doubleDefaultScale
}

// SetDoubleDefaultScale sets the scale double-mapped values are rounded to
// before narrowing. Passing handle.UndefinedScale clears the setting.
func (c *Config) SetDoubleDefaultScale(scale int) error {
	if scale == handle.UndefinedScale {
		c.doubleDefaultScale = handle.UndefinedScale
		return nil
	}

	if scale > MaxDoubleScale {
		return diagnostic.ConfigInvalid("%s (%d) exceeds the double type max: %d", KeyDoubleDefaultScale, scale, MaxDoubleScale)
	}

	c.doubleDefaultScale = scale

	return nil
}
