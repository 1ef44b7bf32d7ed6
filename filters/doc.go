// Package filters provides the template filter functions used during
// static-site page rendering.
//
// Every filter is a pure, stateless function: it reads only its arguments and
// returns a new value, so the whole set is safe to call concurrently from
// multiple rendering goroutines. The one exception is the date filters' fatal
// path, described below.
//
// # Filters
//
//   - DateToString(v any) (string, error) - "27 Jan 2011"
//   - DateToLongString(v any) (string, error) - "27 January 2011"
//   - DateToXMLSchema(v any) (string, error) - "2011-04-24T20:34:46+08:00"
//   - DateToRFC822(v any) (string, error) - "Sun, 24 Apr 2011 12:34:46 +0000"
//   - XMLEscape(v any) string - Escape HTML-significant characters
//   - CGIEscape(s string) string - Query-component percent-encoding (space as "+")
//   - URIEscape(s string) string - Full-URI percent-encoding (reserved chars kept)
//   - NumberOfWords(s string) int - Whitespace-separated token count
//   - ArrayToSentenceString(v any) string - "a, b, and c"
//   - Jsonify(v any) (string, error) - JSON text
//   - GroupBy(input any, field string) any - []Group keyed by a field
//   - Where(input any, key string, value any) any - Elements whose key equals value
//
// FuncMap exposes the same set under the template-facing names
// (date_to_string, xml_escape, group_by, ...) for installation into a host
// text/template engine.
//
// # Date coercion
//
// The date filters accept either a time.Time (returned as-is) or a string,
// which is parsed with a permissive parser. A malformed date string is
// returned as an error wrapping ErrDateParse. Any other input type is a
// template programming error: the filter logs a diagnostic and terminates the
// rendering process with a nonzero exit status, since a render cannot
// meaningfully continue with an unparseable date.
//
// # Lenient collections
//
// GroupBy and Where never fail. A value that is not a sequence is returned
// unchanged, and elements of the wrong shape are skipped, so templates
// degrade gracefully instead of aborting the render:
//
//	filters.GroupBy(5, "cat")
//	// 5
//
//	filters.GroupBy([]any{
//		map[string]any{"cat": "a"},
//		map[string]any{"cat": "b"},
//		map[string]any{"cat": "a"},
//	}, "cat")
//	// [{a [map[cat:a] map[cat:a]]} {b [map[cat:b]]}]
//
// Elements may be plain maps or implement FieldAccessor to expose their
// fields through a lookup method.
//
// # Location
//
// This package is part of the sitekit library:
//
//	import "github.com/randalmurphal/sitekit/filters"
package filters
