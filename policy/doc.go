// Package policy holds the user-chosen settings that steer numeric type
// resolution: the default target type, per-condition overrides, the overflow
// and unsupported-type strategies, the rounding mode, and the default-scale
// strategies for decimal and double targets.
//
// Every setter validates immediately and fails fast; a Config that made it
// through construction is semantically valid, with one deliberate exception:
// the rounding-mode/overflow-strategy cross check happens lazily at read
// time, because either field may be set before the other.
//
// A Config is mutable at configuration time only. Once the resolution engine
// starts reading it, it must not be mutated; it is then safe to share by
// reference across any number of concurrent column resolutions.
package policy
