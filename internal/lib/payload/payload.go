// Package payload decodes request documents read from disk or stdin into
// the untyped form the request validator expects.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is the encoding of a payload document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from name's extension. Anything that is not
// .yaml or .yml, including stdin ("-"), is treated as JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data as the format implied by name.
//
// JSON numbers are kept as json.Number. Mappings decode to map[string]any
// and sequences to []any in both formats.
func Decode(name string, data []byte) (any, error) {
	return DecodeFormat(FormatFor(name), data)
}

// DecodeFormat parses data as f.
func DecodeFormat(f Format, data []byte) (any, error) {
	switch f {
	case FormatYAML:
		var out any
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return out, nil
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		var out any
		if err := dec.Decode(&out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("decode json: unexpected data after top-level value")
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported payload format %q", f)
	}
}
