package filters

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NumberOfWords counts the whitespace-separated tokens in s. Empty or
// all-whitespace input counts zero words.
func NumberOfWords(s string) int {
	return len(strings.Fields(s))
}

// ArrayToSentenceString joins the elements of a sequence into an English
// sentence fragment: "a", "a and b", "a, b, and c". A value that is not a
// sequence is returned as its own string form.
func ArrayToSentenceString(v any) string {
	items, ok := toSlice(v)
	if !ok {
		return stringify(v)
	}

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = stringify(item)
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

// Jsonify serializes a structured value (mapping, sequence, scalar) to JSON
// text with standard-library semantics. Unserializable values return an
// error wrapping ErrEncode.
func Jsonify(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return string(out), nil
}
