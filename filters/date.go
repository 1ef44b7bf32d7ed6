package filters

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/araddon/dateparse"
)

// Output layouts for the date filters.
const (
	shortDateLayout = "02 Jan 2006"
	longDateLayout  = "02 January 2006"
)

// exit is swapped in tests so the fatal coercion path can be observed
// without terminating the test binary.
var exit = os.Exit

// coerceTime converts a template value into the instant the date filters
// format. An already-typed time.Time passes through unchanged; a string is
// parsed permissively and a parse failure is returned to the caller wrapping
// ErrDateParse. Any other type terminates the rendering process: the render
// cannot continue with a value that is not a date in any representation.
func coerceTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		parsed, err := dateparse.ParseAny(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, t)
		}
		return parsed, nil
	}

	slog.Error("invalid date passed to a date filter",
		slog.String("value", fmt.Sprintf("%v", v)),
		slog.String("type", fmt.Sprintf("%T", v)))
	exit(1)
	// Reached only when the exit hook has been replaced.
	return time.Time{}, fmt.Errorf("%w: %T is not a date", ErrDateParse, v)
}

// DateToString formats a date in short form: zero-padded day, abbreviated
// month name, four-digit year ("27 Jan 2011").
func DateToString(v any) (string, error) {
	t, err := coerceTime(v)
	if err != nil {
		return "", err
	}
	return t.Format(shortDateLayout), nil
}

// DateToLongString formats a date with the full month name
// ("27 January 2011").
func DateToLongString(v any) (string, error) {
	t, err := coerceTime(v)
	if err != nil {
		return "", err
	}
	return t.Format(longDateLayout), nil
}

// DateToXMLSchema formats a date as ISO 8601 with a numeric UTC offset
// ("2011-04-24T20:34:46+08:00").
func DateToXMLSchema(v any) (string, error) {
	t, err := coerceTime(v)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC3339), nil
}

// DateToRFC822 formats a date per the RFC 822 date-time grammar
// ("Sun, 24 Apr 2011 12:34:46 +0000").
func DateToRFC822(v any) (string, error) {
	t, err := coerceTime(v)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC1123Z), nil
}
