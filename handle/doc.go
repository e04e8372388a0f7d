// Package handle models source column type descriptors and normalizes them
// into a canonical form the resolution engine can branch on.
//
// A NUMBER-like source type reports a (kind, columnSize, decimalDigits)
// triple in which precision and scale are independently optional: the driver
// reports decimalDigits as -127 when the scale is NULL, a negative scale
// means digits left of the decimal point, and a columnSize of 0 means the
// precision is undefined. Normalize resolves that encoding into an explicit
// precision, a non-negative scale, and boolean flags for the undefined and
// limit-exceeded states.
package handle
