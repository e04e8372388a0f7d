package common

// UnknownStr is the fallback name for enum values outside their defined range.
const UnknownStr = "unknown"
