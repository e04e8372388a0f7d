package policy

import (
	"github.com/spf13/viper"
)

// Configuration keys recognized by Load. These names are the externally
// observable configuration surface of the resolution core.
const (
	KeyDefaultType   = "number.default-type"
	KeyZeroScaleType = "number.zero-scale-type"
	KeyNullScaleType = "number.null-scale-type"
	KeyExceedsLimits = "number.exceeds-limits"
	KeyRoundMode     = "number.round-mode"

	KeyDecimalDefaultScale = "number.default-scale.decimal"
	KeyRatioDefaultScale   = "number.default-scale.ratio"
	KeyDoubleDefaultScale  = "number.default-scale.double"

	KeyUnsupportedType = "unsupported-type.handling-strategy"
)

// Load builds a Config from the named keys present in v. Keys that are not
// set keep their defaults; every present key goes through the corresponding
// validating setter, so the first semantic error aborts the load.
//
// The scale keys accept the handle.UndefinedScale sentinel to explicitly
// clear a default; that is a documentation/testing affordance, not a
// runtime policy of its own.
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewConfig()

	if v.IsSet(KeyDefaultType) {
		if err := cfg.SetDefaultType(v.GetString(KeyDefaultType)); err != nil {
			return nil, err
		}
	}

	if v.IsSet(KeyZeroScaleType) {
		if err := cfg.SetZeroScaleType(v.GetString(KeyZeroScaleType)); err != nil {
			return nil, err
		}
	}

	if v.IsSet(KeyNullScaleType) {
		if err := cfg.SetNullScaleType(v.GetString(KeyNullScaleType)); err != nil {
			return nil, err
		}
	}

	if v.IsSet(KeyExceedsLimits) {
		if err := cfg.SetExceedsLimits(v.GetString(KeyExceedsLimits)); err != nil {
			return nil, err
		}
	}

	if v.IsSet(KeyRoundMode) {
		if err := cfg.SetRoundMode(v.GetString(KeyRoundMode)); err != nil {
			return nil, err
		}
	}

	if v.IsSet(KeyUnsupportedType) {
		if err := cfg.SetUnsupportedType(v.GetString(KeyUnsupportedType)); err != nil {
			return nil, err
		}
	}

	// The decimal scale keys are mutually exclusive; applying fixed before
	// ratio keeps the conflict detection in the setters symmetric.
	if v.IsSet(KeyDecimalDefaultScale) {
		if err := cfg.SetDecimalDefaultScale(v.GetInt(KeyDecimalDefaultScale)); err != nil {
			return nil, err
		}
	}

	if v.IsSet(KeyRatioDefaultScale) {
		ratio := float32(v.GetFloat64(KeyRatioDefaultScale))
		if err := cfg.SetRatioDefaultScale(ratio); err != nil {
			return nil, err
		}
	}

	if v.IsSet(KeyDoubleDefaultScale) {
		if err := cfg.SetDoubleDefaultScale(v.GetInt(KeyDoubleDefaultScale)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
