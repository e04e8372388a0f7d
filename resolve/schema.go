package resolve

import (
	"fmt"

	"number-caster/diagnostic"
	"number-caster/handle"
	"number-caster/policy"
)

// SchemaColumn is one introspected column: its name plus the raw type triple
// reported by the source driver.
type SchemaColumn struct {
	Name string
	Raw  handle.RawTypeInfo
}

// ResolvedColumn is one column that survived schema resolution.
type ResolvedColumn struct {
	Name    string
	Desc    handle.Descriptor
	Mapping Mapping
}

// Schema resolves every column of an introspected table, collecting
// per-column diagnostics instead of stopping at the first problem. Skipped
// columns become warnings; failures become classified error diagnostics. A
// table where no column resolves at all is itself an error.
//
// The returned slice preserves column order. Callers should treat a
// Diagnostics with errors as fatal for the query.
func Schema(cols []SchemaColumn, cfg *policy.Config) ([]ResolvedColumn, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	resolved := make([]ResolvedColumn, 0, len(cols))

	for _, col := range cols {
		desc := handle.Normalize(col.Raw)

		res := Column(desc, cfg)
		switch res.Outcome {
		case OutcomeMapped:
			resolved = append(resolved, ResolvedColumn{Name: col.Name, Desc: desc, Mapping: res.Mapping})

		case OutcomeSkipped:
			diags.AddWarning(col.Name, desc.Description(), "column skipped by policy")

		case OutcomeFailed:
			diags.AddError(diagnostic.KindOf(res.Err), col.Name, desc.Description(), res.Err.Error())

		default:
			diags.AddError(diagnostic.KindUnsupported, col.Name, desc.Description(),
				fmt.Sprintf("unexpected resolution outcome %s", res.Outcome))
		}
	}

	if len(resolved) == 0 && len(cols) > 0 {
		diags.AddError(diagnostic.KindUnsupported, "", "",
			fmt.Sprintf("no supported columns (all %d columns were skipped or failed)", len(cols)))
	}

	return resolved, diags
}
