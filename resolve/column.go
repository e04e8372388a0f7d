package resolve

import (
	"number-caster/convert"
	"number-caster/diagnostic"
	"number-caster/handle"
	"number-caster/policy"
)

// Column resolves any source column descriptor.
//
// NUMBER-like kinds go through the numeric decision sequence. A skip from
// that path is final: the column was deliberately omitted by the overflow
// policy and no second guess is taken. When the numeric path fails, or the
// kind is not numeric at all, the separate unsupported-type strategy decides
// the second tier: convert to varchar, skip, or fail.
func Column(desc handle.Descriptor, cfg *policy.Config) Result {
	var numericErr error

	if desc.Raw.Kind.IsNumber() {
		res := Number(desc, cfg)
		if res.Outcome != OutcomeFailed {
			return res
		}

		numericErr = res.Err
	}

	switch cfg.UnsupportedType() {
	case policy.StrategyVarchar:
		return mapped(Mapping{
			Target: TargetType{Kind: policy.TargetVarchar},
			Conv:   convert.Varchar(),
		})

	case policy.StrategyFail:
		if numericErr != nil {
			return failed(diagnostic.Unsupported(desc.Description(),
				"unsupported type, %q = FAIL: %v", policy.KeyUnsupportedType, numericErr))
		}

		return failed(diagnostic.Unsupported(desc.Description(),
			"unsupported type, %q = FAIL", policy.KeyUnsupportedType))

	default: // StrategyIgnore
		return skipped()
	}
}
