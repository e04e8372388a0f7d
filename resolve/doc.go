// Package resolve decides how a normalized source type descriptor is
// represented in the target system, under the configured policy.
//
// Resolution pipeline:
//  1. Normalize the raw (kind, size, digits) triple → handle.Descriptor
//  2. Number applies the policy decision sequence for NUMBER-like kinds:
//     default target → per-condition overrides → overflow strategy →
//     target-specific resolution, binding a conversion function
//  3. Column wraps Number with the second-tier unsupported-type strategy
//     for non-numeric kinds and numeric failures; a numeric skip is final
//  4. Schema resolves a column list and collects per-column diagnostics
//
// Every operation is synchronous, pure with respect to per-column state, and
// safe to invoke concurrently while the shared policy is no longer mutated.
// Expected skip paths are a Result variant, not errors.
package resolve
