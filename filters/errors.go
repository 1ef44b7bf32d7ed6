package filters

import "errors"

// Sentinel errors for filter operations.
var (
	// ErrDateParse is returned when a date string cannot be parsed.
	ErrDateParse = errors.New("date parse error")

	// ErrEncode is returned when a value cannot be serialized to JSON.
	ErrEncode = errors.New("json encode error")
)
