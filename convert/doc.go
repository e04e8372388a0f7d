// Package convert provides the per-row conversion functions bound by the
// resolution engine: rescaling a fetched decimal value to a fixed scale
// under a rounding mode, encoding its unscaled integer for fixed-precision
// decimal storage, narrowing to a double, decoding to an integer, or
// rendering to text.
//
// All conversions are referentially transparent: the same input value with
// the same bound parameters always produces the same output, so converters
// can be applied in parallel across rows or columns without coordination.
// Rescaling happens entirely in decimal arithmetic; there are no
// floating-point intermediate steps before the final double narrowing.
package convert
