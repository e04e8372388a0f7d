package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"number-caster/internal/common"
)

// Diagnostics holds all diagnostic information from schema-level resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity SeverityEnum
	// Kind classifies the failure (errors only; KindNone otherwise).
	Kind KindEnum
	// Column identifies which column this relates to (if any).
	Column string
	// TypeDesc describes the source type this relates to (if any).
	TypeDesc string
	// Message is the human-readable description.
	Message string
}

// SeverityEnum represents the severity level of a diagnostic.
type SeverityEnum int

const (
	SeverityInfo SeverityEnum = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s SeverityEnum) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(kind KindEnum, column, typeDesc, message string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Kind:     kind,
		Column:   column,
		TypeDesc: typeDesc,
		Message:  message,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(column, typeDesc, message string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Column:   column,
		TypeDesc: typeDesc,
		Message:  message,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(column, typeDesc, message string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Column:   column,
		TypeDesc: typeDesc,
		Message:  message,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Column != "" {
		prefix = append(prefix, "["+d.Column+"]")
	}

	if d.TypeDesc != "" {
		prefix = append(prefix, d.TypeDesc)
	}

	msg := d.Message
	if d.Kind != KindNone {
		msg = fmt.Sprintf("[%s] %s", d.Kind, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
