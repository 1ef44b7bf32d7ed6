package data

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDecode is returned when a data file cannot be decoded.
var ErrDecode = errors.New("data decode error")

// Format identifies a data-file encoding.
type Format int

const (
	// YAML data files (.yml, .yaml).
	YAML Format = iota
	// TOML data files (.toml). Top level is always a mapping.
	TOML
	// JSON data files (.json).
	JSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatForExtension maps a file extension (with or without the leading dot)
// to its Format. The second return value reports whether the extension names
// a supported data format.
func FormatForExtension(ext string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yml", "yaml":
		return YAML, true
	case "toml":
		return TOML, true
	case "json":
		return JSON, true
	}
	return 0, false
}

// Decode parses a data file's bytes into a dynamic value: a map[string]any,
// a []any, or a scalar, depending on the document. Decode failures wrap
// ErrDecode.
func Decode(f Format, b []byte) (any, error) {
	switch f {
	case YAML:
		var v any
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
		}
		return v, nil
	case TOML:
		v := map[string]any{}
		if err := toml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrDecode, err)
		}
		return v, nil
	case JSON:
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrDecode, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %d", ErrDecode, int(f))
	}
}
