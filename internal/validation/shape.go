package validation

import (
	"encoding/json"
	"fmt"
	"math"
)

// Collector walks an untyped value and accumulates every violation it finds.
//
// Objects are map[string]any and arrays are []any, which is what
// encoding/json and go-yaml produce when decoding into `any`.
// The zero value is ready to use. A Collector is not safe for concurrent use;
// create one per validation.
type Collector struct {
	violations Violations
}

// Add records a violation.
func (c *Collector) Add(path string, kind Kind, message string) {
	c.violations = append(c.violations, Violation{Path: path, Kind: kind, Message: message})
}

// Merge records violations produced elsewhere.
func (c *Collector) Merge(vs Violations) {
	c.violations = append(c.violations, vs...)
}

// MergeUncovered records only the violations whose path is not already
// covered by a recorded violation.
func (c *Collector) MergeUncovered(vs Violations) {
	recorded := c.violations
	for _, v := range vs {
		if recorded.Covers(v.Path) {
			continue
		}
		c.violations = append(c.violations, v)
	}
}

// Violations returns a copy of what has been recorded so far.
func (c *Collector) Violations() Violations {
	if len(c.violations) == 0 {
		return nil
	}
	out := make(Violations, len(c.violations))
	copy(out, c.violations)
	return out
}

// Err returns the recorded violations as an error, or nil when there are none.
func (c *Collector) Err() error {
	if vs := c.Violations(); vs != nil {
		return vs
	}
	return nil
}

// Object asserts that raw is an object.
func (c *Collector) Object(path string, raw any) (map[string]any, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		c.mismatch(path, "object", raw)
		return nil, false
	}
	return obj, true
}

// Field looks up a required property. An absent key is a missing field;
// a present key holding null is returned as-is for the typed readers to reject.
func (c *Collector) Field(obj map[string]any, base, key string) (any, bool) {
	raw, ok := obj[key]
	if !ok {
		c.Add(Join(base, key), KindMissingField, "is required")
		return nil, false
	}
	return raw, true
}

// ObjectField reads a required nested object.
func (c *Collector) ObjectField(obj map[string]any, base, key string) (map[string]any, bool) {
	raw, ok := c.Field(obj, base, key)
	if !ok {
		return nil, false
	}
	return c.Object(Join(base, key), raw)
}

// String reads a required string property. Empty strings are accepted.
func (c *Collector) String(obj map[string]any, base, key string) (string, bool) {
	raw, ok := c.Field(obj, base, key)
	if !ok {
		return "", false
	}
	return c.stringValue(Join(base, key), raw)
}

// OptionalString reads a string property that may be absent.
func (c *Collector) OptionalString(obj map[string]any, base, key string) (*string, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, true
	}
	s, ok := c.stringValue(Join(base, key), raw)
	if !ok {
		return nil, false
	}
	return &s, true
}

// Number reads a required numeric property. Numeric strings are rejected.
func (c *Collector) Number(obj map[string]any, base, key string) (float64, bool) {
	raw, ok := c.Field(obj, base, key)
	if !ok {
		return 0, false
	}
	return c.numberValue(Join(base, key), raw)
}

// OptionalNumber reads a numeric property that may be absent.
func (c *Collector) OptionalNumber(obj map[string]any, base, key string) (*float64, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, true
	}
	n, ok := c.numberValue(Join(base, key), raw)
	if !ok {
		return nil, false
	}
	return &n, true
}

// Bool reads a required boolean property.
func (c *Collector) Bool(obj map[string]any, base, key string) (bool, bool) {
	raw, ok := c.Field(obj, base, key)
	if !ok {
		return false, false
	}
	b, ok := raw.(bool)
	if !ok {
		c.mismatch(Join(base, key), "boolean", raw)
		return false, false
	}
	return b, true
}

// OptionalBool reads a boolean property that may be absent.
func (c *Collector) OptionalBool(obj map[string]any, base, key string) (*bool, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, true
	}
	b, ok := raw.(bool)
	if !ok {
		c.mismatch(Join(base, key), "boolean", raw)
		return nil, false
	}
	return &b, true
}

// Array reads a required array property. An empty array is valid.
func (c *Collector) Array(obj map[string]any, base, key string) ([]any, bool) {
	raw, ok := c.Field(obj, base, key)
	if !ok {
		return nil, false
	}
	return c.arrayValue(Join(base, key), raw)
}

// OptionalArray reads an array property that may be absent.
func (c *Collector) OptionalArray(obj map[string]any, base, key string) ([]any, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, true
	}
	return c.arrayValue(Join(base, key), raw)
}

func (c *Collector) stringValue(path string, raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		c.mismatch(path, "string", raw)
		return "", false
	}
	return s, true
}

func (c *Collector) arrayValue(path string, raw any) ([]any, bool) {
	arr, ok := raw.([]any)
	if !ok {
		c.mismatch(path, "array", raw)
		return nil, false
	}
	return arr, true
}

func (c *Collector) numberValue(path string, raw any) (float64, bool) {
	n, ok := toFloat(raw)
	if !ok || math.IsNaN(n) {
		c.mismatch(path, "number", raw)
		return 0, false
	}
	return n, true
}

func (c *Collector) mismatch(path, expected string, raw any) {
	c.Add(path, KindTypeMismatch, fmt.Sprintf("expected %s, received %s", expected, Describe(raw)))
}

// toFloat accepts every Go numeric kind plus json.Number. Strings never qualify.
func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Describe names the kind of an untyped value the way a client would see it.
func Describe(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if n, ok := toFloat(v); ok {
			if math.IsNaN(n) {
				return "nan"
			}
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}
