package common

// Abs returns the absolute value of a signed integer.
func Abs[T ~int | ~int32 | ~int64](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
