// Package diagnostic provides classified errors and structured per-column
// reports for numeric type resolution.
//
// Key capabilities:
//   - Error values classified by kind (invalid configuration, unsupported
//     conversion, rescale loss)
//   - Per-column diagnostics collected during schema-level resolution
//   - "why this column was skipped" explanations
package diagnostic
