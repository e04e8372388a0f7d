package diagnostic

import (
	"errors"
	"fmt"

	"number-caster/internal/common"
)

// KindEnum classifies resolution errors. These are deterministic, data-driven
// failures; none of them is transient or retryable.
type KindEnum int

const (
	KindNone KindEnum = iota

	// KindConfigInvalid marks mutually exclusive or out-of-range settings.
	KindConfigInvalid
	// KindUnsupported marks a source type that cannot be represented under
	// the configured policy.
	KindUnsupported
	// KindRescaleLoss marks a value whose digits would be lost while the
	// rounding mode forbids inexact rescaling.
	KindRescaleLoss

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k KindEnum) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfigInvalid:
		return "configuration invalid"
	case KindUnsupported:
		return "unsupported conversion"
	case KindRescaleLoss:
		return "rescale loss"
	default:
		return common.UnknownStr
	}
}

// Error is a classified resolution error with enough context to render a
// diagnostic: the kind, the message, and the offending source type
// description when one exists.
type Error struct {
	Kind     KindEnum
	Message  string
	TypeDesc string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.TypeDesc == "" {
		return e.Message
	}

	return e.Message + ": " + e.TypeDesc
}

// ConfigInvalid returns a configuration error. These are raised synchronously
// when a setting is applied and must surface to the operator before query
// execution.
func ConfigInvalid(format string, args ...any) *Error {
	return &Error{
		Kind:    KindConfigInvalid,
		Message: fmt.Sprintf(format, args...),
	}
}

// Unsupported returns an error for a source type that cannot be represented.
// typeDesc names the offending type.
func Unsupported(typeDesc, format string, args ...any) *Error {
	return &Error{
		Kind:     KindUnsupported,
		Message:  fmt.Sprintf(format, args...),
		TypeDesc: typeDesc,
	}
}

// RescaleLoss returns an error for a value whose digits would be truncated
// under a rounding mode that forbids inexact rescaling. Fatal for that row.
func RescaleLoss(typeDesc, format string, args ...any) *Error {
	return &Error{
		Kind:     KindRescaleLoss,
		Message:  fmt.Sprintf(format, args...),
		TypeDesc: typeDesc,
	}
}

// KindOf extracts the classification from err, or KindNone if err is not a
// classified Error.
func KindOf(err error) KindEnum {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}

	return KindNone
}
