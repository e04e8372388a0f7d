package handle

import (
	"fmt"
	"strconv"

	"number-caster/internal/common"
)

const (
	// MaxPrecision is the widest decimal precision the target engine can
	// store. Precision and scale settings are validated against it.
	MaxPrecision = 38

	// UndefinedScale is the sentinel the source driver reports as
	// decimalDigits when a NUMBER's scale is NULL. It doubles as the
	// "not configured" sentinel for scale settings.
	UndefinedScale = -127
)

const nullValue = "null"

// RawTypeInfo is the immutable (kind, columnSize, decimalDigits) triple
// reported by the source driver for a column. Created once per column at
// introspection time and never mutated.
type RawTypeInfo struct {
	Kind          KindEnum
	ColumnSize    int
	DecimalDigits int
}

// Descriptor is the canonical form of a raw type descriptor. It owns a copy
// of the raw triple plus an explicit precision, an explicit scale, and flags
// for the undefined and limit-exceeded states.
//
// When ScaleUndefined is set, Scale still carries the raw UndefinedScale
// sentinel for diagnostics; branch on the flag, not on the field.
type Descriptor struct {
	Raw RawTypeInfo

	Precision int
	Scale     int

	PrecisionUndefined bool
	ScaleUndefined     bool
	PrecisionExceeded  bool
	ScaleExceeded      bool
}

// Normalize converts a raw triple into a canonical Descriptor. It is pure,
// deterministic, and total: every input triple is representable.
func Normalize(raw RawTypeInfo) Descriptor {
	d := Descriptor{
		Raw:       raw,
		Precision: raw.ColumnSize,
		Scale:     raw.DecimalDigits,
	}

	// -- scale ---------------------------------------------------------
	addPrecision := 0

	switch {
	case raw.DecimalDigits == UndefinedScale:
		d.ScaleUndefined = true
	case raw.DecimalDigits < 0:
		// Negative scale means digits left of the decimal point; they
		// enlarge the precision instead.
		addPrecision = common.Abs(raw.DecimalDigits)
		d.Scale = 0
	case raw.DecimalDigits > MaxPrecision:
		d.ScaleExceeded = true
	}

	// -- precision -----------------------------------------------------
	// The adjustment above runs first: a negative scale can push an
	// originally-zero precision above zero, so it is not undefined.
	d.Precision += addPrecision

	switch {
	case raw.ColumnSize == 0 && d.Precision == 0:
		d.PrecisionUndefined = true
	case d.Precision > MaxPrecision:
		d.PrecisionExceeded = true
	}

	return d
}

// New normalizes a raw triple given as separate values.
func New(kind KindEnum, columnSize, decimalDigits int) Descriptor {
	return Normalize(RawTypeInfo{Kind: kind, ColumnSize: columnSize, DecimalDigits: decimalDigits})
}

// LimitExceeded reports whether precision or scale exceeds MaxPrecision.
func (d Descriptor) LimitExceeded() bool {
	return d.PrecisionExceeded || d.ScaleExceeded
}

// WithPrecision returns a copy of the descriptor with the resolved precision
// replaced.
func (d Descriptor) WithPrecision(precision int) Descriptor {
	d.Precision = precision
	return d
}

// WithScale returns a copy of the descriptor with the resolved scale
// replaced.
func (d Descriptor) WithScale(scale int) Descriptor {
	d.Scale = scale
	return d
}

// Equal reports whether two descriptors describe the same logical type.
//
// NUMERIC-kind descriptors compare on resolved precision and scale rather
// than on the raw triple: two differently-raw-encoded columns can normalize
// to the same logical type.
func (d Descriptor) Equal(o Descriptor) bool {
	if d.Raw.Kind != o.Raw.Kind {
		return false
	}

	if d.Raw.Kind == KindNumeric {
		return d.Precision == o.Precision && d.Scale == o.Scale
	}

	return d.Raw.ColumnSize == o.Raw.ColumnSize && d.Raw.DecimalDigits == o.Raw.DecimalDigits
}

// Description returns a human-readable type string for diagnostics, e.g.
// "NUMERIC(10, 2)" or "VARCHAR(20)".
func (d Descriptor) Description() string {
	if d.Raw.Kind.hasPrecisionScale() {
		return fmt.Sprintf("%s(%d, %d)", d.Raw.Kind, d.Precision, d.Scale)
	}

	return fmt.Sprintf("%s(%d)", d.Raw.Kind, d.Raw.ColumnSize)
}

// PrecisionDesc returns a "precision:scale" string with "null" standing in
// for undefined components.
func (d Descriptor) PrecisionDesc() string {
	precisionVal := nullValue
	if !d.PrecisionUndefined {
		precisionVal = strconv.Itoa(d.Precision)
	}

	scaleVal := nullValue
	if !d.ScaleUndefined {
		scaleVal = strconv.Itoa(d.Scale)
	}

	return precisionVal + ":" + scaleVal
}
