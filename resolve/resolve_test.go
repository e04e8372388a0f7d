package resolve

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"number-caster/convert"
	"number-caster/diagnostic"
	"number-caster/handle"
	"number-caster/policy"
)

func numberDesc(columnSize, decimalDigits int) handle.Descriptor {
	return handle.New(handle.KindNumeric, columnSize, decimalDigits)
}

func requireMapped(t *testing.T, res Result) Mapping {
	t.Helper()
	require.Equal(t, OutcomeMapped, res.Outcome, "resolution did not map: %v\n%s", res.Err, spew.Sdump(res))

	return res.Mapping
}

func decimalTarget(precision, scale int) TargetType {
	return TargetType{Kind: policy.TargetDecimal, Precision: precision, Scale: scale}
}

func TestNumberFixedDefaultScale(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetDecimalDefaultScale(10))
	require.NoError(t, cfg.SetRoundMode("HALF_UP"))

	tests := []struct {
		name          string
		columnSize    int
		decimalDigits int
		want          Mapping
	}{
		{
			name: "defined precision and scale within limits", columnSize: 18, decimalDigits: 2,
			want: Mapping{Target: decimalTarget(18, 2), Conv: convert.Decimal(2)},
		},
		{
			name: "defined precision undefined scale", columnSize: 18, decimalDigits: handle.UndefinedScale,
			want: Mapping{Target: decimalTarget(18, 10), Conv: convert.RoundDecimal(10, policy.RoundHalfUp)},
		},
		{
			name: "undefined precision defined scale", columnSize: 0, decimalDigits: 2,
			want: Mapping{Target: decimalTarget(handle.MaxPrecision, 2), Conv: convert.RoundDecimal(2, policy.RoundHalfUp)},
		},
		{
			name: "undefined precision and scale", columnSize: 0, decimalDigits: handle.UndefinedScale,
			want: Mapping{Target: decimalTarget(handle.MaxPrecision, 10), Conv: convert.RoundDecimal(10, policy.RoundHalfUp)},
		},
		{
			name: "scale at least precision widens precision", columnSize: 10, decimalDigits: 20,
			want: Mapping{Target: decimalTarget(handle.MaxPrecision, 20), Conv: convert.Decimal(20)},
		},
		{
			name: "scale exceeds limit takes default scale", columnSize: 10, decimalDigits: 45,
			want: Mapping{Target: decimalTarget(handle.MaxPrecision, 10), Conv: convert.RoundDecimal(10, policy.RoundHalfUp)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requireMapped(t, Number(numberDesc(tt.columnSize, tt.decimalDigits), cfg))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberRatioDefaultScale(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetRatioDefaultScale(0.4))
	require.NoError(t, cfg.SetRoundMode("HALF_UP"))

	tests := []struct {
		name          string
		columnSize    int
		decimalDigits int
		want          Mapping
	}{
		{
			// Scale is set; the ratio never applies.
			name: "defined scale ignores ratio", columnSize: 18, decimalDigits: 2,
			want: Mapping{Target: decimalTarget(18, 2), Conv: convert.Decimal(2)},
		},
		{
			// floor(0.4 * 16) = 6
			name: "ratio of defined precision", columnSize: 16, decimalDigits: handle.UndefinedScale,
			want: Mapping{Target: decimalTarget(16, 6), Conv: convert.RoundDecimal(6, policy.RoundHalfUp)},
		},
		{
			// floor(0.4 * 38) = 15
			name: "ratio of capped precision", columnSize: 0, decimalDigits: handle.UndefinedScale,
			want: Mapping{Target: decimalTarget(handle.MaxPrecision, 15), Conv: convert.RoundDecimal(15, policy.RoundHalfUp)},
		},
		{
			name: "precision exceeded ratio of cap", columnSize: 40, decimalDigits: handle.UndefinedScale,
			want: Mapping{Target: decimalTarget(handle.MaxPrecision, 15), Conv: convert.RoundDecimal(15, policy.RoundHalfUp)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requireMapped(t, Number(numberDesc(tt.columnSize, tt.decimalDigits), cfg))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberRatioEndToEnd(t *testing.T) {
	// precision 40, undefined scale, ratio 0.5: precision caps to 38 and
	// the scale becomes floor(0.5 * 38) = 19.
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetRatioDefaultScale(0.5))
	require.NoError(t, cfg.SetRoundMode("UP"))

	m := requireMapped(t, Number(numberDesc(40, handle.UndefinedScale), cfg))
	assert.Equal(t, decimalTarget(38, 19), m.Target)
	assert.Equal(t, convert.RoundDecimal(19, policy.RoundUp), m.Conv)

	value, err := decimal.NewFromString("1.123456789")
	require.NoError(t, err)

	got, err := m.Conv.Apply(value)
	require.NoError(t, err)

	want, ok := new(big.Int).SetString("11234567890000000000", 10)
	require.True(t, ok)
	assert.Zero(t, got.(*big.Int).Cmp(want))
}

func TestNumberZeroScaleOverride(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetZeroScaleType("INTEGER"))

	m := requireMapped(t, Number(numberDesc(16, 0), cfg))
	assert.Equal(t, policy.TargetInteger, m.Target.Kind)
	assert.Equal(t, convert.Integer(), m.Conv)

	// A negative source scale normalizes to zero, so it takes the override too.
	m = requireMapped(t, Number(numberDesc(10, -3), cfg))
	assert.Equal(t, policy.TargetInteger, m.Target.Kind)

	// The override applies only when the scale is defined and exactly zero.
	m = requireMapped(t, Number(numberDesc(16, 2), cfg))
	assert.Equal(t, policy.TargetDecimal, m.Target.Kind)
}

func TestNumberNullScaleOverride(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetNullScaleType("DOUBLE"))
	require.NoError(t, cfg.SetZeroScaleType("INTEGER"))

	// An undefined scale takes the null-scale override, never the
	// zero-scale one.
	m := requireMapped(t, Number(numberDesc(16, handle.UndefinedScale), cfg))
	assert.Equal(t, policy.TargetDouble, m.Target.Kind)
	assert.Equal(t, convert.Double(), m.Conv)
}

func TestNumberExceedsLimits(t *testing.T) {
	desc := numberDesc(40, 2)

	t.Run("round", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetExceedsLimits("ROUND"))
		require.NoError(t, cfg.SetRoundMode("HALF_EVEN"))

		m := requireMapped(t, Number(desc, cfg))
		assert.Equal(t, decimalTarget(handle.MaxPrecision, 2), m.Target)
		assert.Equal(t, convert.RoundDecimal(2, policy.RoundHalfEven), m.Conv)
	})

	t.Run("varchar", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetExceedsLimits("VARCHAR"))

		m := requireMapped(t, Number(desc, cfg))
		assert.Equal(t, policy.TargetVarchar, m.Target.Kind)
		assert.Equal(t, convert.Varchar(), m.Conv)
	})

	t.Run("ignore", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetExceedsLimits("IGNORE"))

		res := Number(desc, cfg)
		assert.Equal(t, OutcomeSkipped, res.Outcome)
		assert.NoError(t, res.Err)
	})

	t.Run("fail", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetExceedsLimits("FAIL"))

		res := Number(desc, cfg)
		require.Equal(t, OutcomeFailed, res.Outcome)
		assert.Equal(t, diagnostic.KindUnsupported, diagnostic.KindOf(res.Err))
		assert.Contains(t, res.Err.Error(), desc.Description())
	})
}

func TestNumberNoScaleStrategyFails(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetRatioDefaultScale(float32(handle.UndefinedScale)))

	res := Number(numberDesc(10, handle.UndefinedScale), cfg)
	require.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, diagnostic.KindConfigInvalid, diagnostic.KindOf(res.Err))
}

func TestNumberRoundModeConflictSurfaces(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetExceedsLimits("ROUND"))
	require.NoError(t, cfg.SetRoundMode("UNNECESSARY"))

	// The descriptor needs the rounding conversion, so the lazy
	// round-mode check fires during resolution.
	res := Number(numberDesc(40, 2), cfg)
	require.Equal(t, OutcomeFailed, res.Outcome)
	assert.Equal(t, diagnostic.KindConfigInvalid, diagnostic.KindOf(res.Err))
}

func TestNumberDouble(t *testing.T) {
	t.Run("no default scale narrows directly", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetDefaultType("DOUBLE"))

		m := requireMapped(t, Number(numberDesc(10, 2), cfg))
		assert.Equal(t, TargetType{Kind: policy.TargetDouble}, m.Target)
		assert.Equal(t, convert.Double(), m.Conv)
	})

	t.Run("default scale binds rounding conversion", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetDefaultType("DOUBLE"))
		require.NoError(t, cfg.SetDoubleDefaultScale(4))
		require.NoError(t, cfg.SetRoundMode("HALF_UP"))

		m := requireMapped(t, Number(numberDesc(10, 2), cfg))
		assert.Equal(t, convert.RoundDouble(4, policy.RoundHalfUp), m.Conv)
	})

	t.Run("unnecessary mode narrows directly", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetDefaultType("DOUBLE"))
		require.NoError(t, cfg.SetExceedsLimits("FAIL"))
		require.NoError(t, cfg.SetDoubleDefaultScale(4))
		require.NoError(t, cfg.SetRoundMode("UNNECESSARY"))

		m := requireMapped(t, Number(numberDesc(10, 2), cfg))
		assert.Equal(t, convert.Double(), m.Conv)
	})
}

func TestMappingEqualityByStrategy(t *testing.T) {
	// Same target parameters, different conversion strategy: never equal.
	rounding := Mapping{Target: decimalTarget(18, 2), Conv: convert.RoundDecimal(2, policy.RoundHalfUp)}
	pass := Mapping{Target: decimalTarget(18, 2), Conv: convert.Decimal(2)}

	assert.NotEqual(t, rounding, pass)
	assert.Equal(t, rounding, Mapping{Target: decimalTarget(18, 2), Conv: convert.RoundDecimal(2, policy.RoundHalfUp)})
}

func TestColumnUnsupportedFallback(t *testing.T) {
	desc := handle.New(handle.KindVarchar, 20, 0)

	t.Run("varchar", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetUnsupportedType("VARCHAR"))

		m := requireMapped(t, Column(desc, cfg))
		assert.Equal(t, policy.TargetVarchar, m.Target.Kind)
	})

	t.Run("ignore", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetUnsupportedType("IGNORE"))

		res := Column(desc, cfg)
		assert.Equal(t, OutcomeSkipped, res.Outcome)
	})

	t.Run("fail", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetUnsupportedType("FAIL"))

		res := Column(desc, cfg)
		require.Equal(t, OutcomeFailed, res.Outcome)
		assert.Equal(t, diagnostic.KindUnsupported, diagnostic.KindOf(res.Err))
	})
}

func TestColumnNumericSkipIsFinal(t *testing.T) {
	// An overflow IGNORE deliberately omits the column; the second-tier
	// strategy never reconsiders it.
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetExceedsLimits("IGNORE"))
	require.NoError(t, cfg.SetUnsupportedType("VARCHAR"))

	res := Column(numberDesc(40, 2), cfg)
	assert.Equal(t, OutcomeSkipped, res.Outcome)
}

func TestColumnNumericFailureReachesFallback(t *testing.T) {
	desc := numberDesc(40, 2)

	t.Run("varchar recovers the column", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetExceedsLimits("FAIL"))
		require.NoError(t, cfg.SetUnsupportedType("VARCHAR"))

		m := requireMapped(t, Column(desc, cfg))
		assert.Equal(t, policy.TargetVarchar, m.Target.Kind)
	})

	t.Run("ignore drops the column", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetExceedsLimits("FAIL"))
		require.NoError(t, cfg.SetUnsupportedType("IGNORE"))

		res := Column(desc, cfg)
		assert.Equal(t, OutcomeSkipped, res.Outcome)
	})

	t.Run("fail carries the numeric error", func(t *testing.T) {
		cfg := policy.NewConfig()
		require.NoError(t, cfg.SetExceedsLimits("FAIL"))
		require.NoError(t, cfg.SetUnsupportedType("FAIL"))

		res := Column(desc, cfg)
		require.Equal(t, OutcomeFailed, res.Outcome)
		assert.Equal(t, diagnostic.KindUnsupported, diagnostic.KindOf(res.Err))
		assert.Contains(t, res.Err.Error(), "type exceeds limits")
	})
}

func TestSchema(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetZeroScaleType("INTEGER"))

	cols := []SchemaColumn{
		{Name: "id", Raw: handle.RawTypeInfo{Kind: handle.KindNumeric, ColumnSize: 10, DecimalDigits: 0}},
		{Name: "amount", Raw: handle.RawTypeInfo{Kind: handle.KindNumeric, ColumnSize: 18, DecimalDigits: 2}},
		{Name: "notes", Raw: handle.RawTypeInfo{Kind: handle.KindVarchar, ColumnSize: 100, DecimalDigits: 0}},
	}

	resolved, diags := Schema(cols, cfg)
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Error())
	require.Len(t, resolved, 2)

	assert.Equal(t, "id", resolved[0].Name)
	assert.Equal(t, policy.TargetInteger, resolved[0].Mapping.Target.Kind)
	assert.Equal(t, "amount", resolved[1].Name)
	assert.Equal(t, decimalTarget(18, 2), resolved[1].Mapping.Target)

	// The varchar column is skipped by the default IGNORE strategy.
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "notes", diags.Warnings[0].Column)
}

func TestSchemaNoSupportedColumns(t *testing.T) {
	cfg := policy.NewConfig()

	cols := []SchemaColumn{
		{Name: "blob_a", Raw: handle.RawTypeInfo{Kind: handle.KindVarchar, ColumnSize: 10}},
		{Name: "blob_b", Raw: handle.RawTypeInfo{Kind: handle.KindVarchar, ColumnSize: 10}},
	}

	resolved, diags := Schema(cols, cfg)
	assert.Empty(t, resolved)
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error().Error(), "no supported columns")
}

func TestSchemaCollectsFailures(t *testing.T) {
	cfg := policy.NewConfig()
	require.NoError(t, cfg.SetExceedsLimits("FAIL"))
	require.NoError(t, cfg.SetUnsupportedType("FAIL"))

	cols := []SchemaColumn{
		{Name: "ok", Raw: handle.RawTypeInfo{Kind: handle.KindNumeric, ColumnSize: 10, DecimalDigits: 2}},
		{Name: "too_wide", Raw: handle.RawTypeInfo{Kind: handle.KindNumeric, ColumnSize: 40, DecimalDigits: 2}},
	}

	resolved, diags := Schema(cols, cfg)
	require.Len(t, resolved, 1)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "too_wide", diags.Errors[0].Column)
	assert.Equal(t, diagnostic.KindUnsupported, diags.Errors[0].Kind)
}
