package validation

import (
	"fmt"
	"strings"
)

// Kind classifies a single violation.
type Kind string

const (
	// KindMissingField means a required property is absent.
	KindMissingField Kind = "MISSING_FIELD"

	// KindTypeMismatch means a property holds the wrong primitive kind,
	// including null where a value is required.
	KindTypeMismatch Kind = "TYPE_MISMATCH"

	// KindInvalidEnumValue means a string is outside the enum's member set.
	KindInvalidEnumValue Kind = "INVALID_ENUM_VALUE"

	// KindInvalidFormat means a string fails a format rule (e.g. email).
	KindInvalidFormat Kind = "INVALID_FORMAT"

	// KindNestedFailure marks a violation reported by a delegated validator.
	// The delegate's own kind is kept in Violation.Nested.
	KindNestedFailure Kind = "NESTED_FAILURE"
)

// Violation is one violated constraint at one location of the input.
//
// Example:
//
//	{ "path": "fields[2].page", "kind": "TYPE_MISMATCH", "message": "expected number, received string" }
type Violation struct {
	// Path locates the value, e.g. "signer.email" or "fields[2].page".
	// The empty path is the input itself.
	Path string `json:"path"`

	Kind    Kind   `json:"kind"`
	Message string `json:"message"`

	// Nested is the delegate's kind when Kind is KindNestedFailure.
	Nested Kind `json:"nested,omitempty"`
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// Violations is the aggregated result of a failed validation and satisfies error.
type Violations []Violation

func (vs Violations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// At returns the violations reported exactly at path.
func (vs Violations) At(path string) Violations {
	var out Violations
	for _, v := range vs {
		if v.Path == path {
			out = append(out, v)
		}
	}
	return out
}

// Has reports whether a violation of the given kind exists at path.
func (vs Violations) Has(path string, kind Kind) bool {
	for _, v := range vs {
		if v.Path == path && v.Kind == kind {
			return true
		}
	}
	return false
}

// Covers reports whether path, or any of its ancestors, already carries a violation.
func (vs Violations) Covers(path string) bool {
	for _, v := range vs {
		if isWithin(path, v.Path) {
			return true
		}
	}
	return false
}

// Paths lists the distinct violation paths in first-seen order.
func (vs Violations) Paths() []string {
	seen := make(map[string]struct{}, len(vs))
	paths := make([]string, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v.Path]; ok {
			continue
		}
		seen[v.Path] = struct{}{}
		paths = append(paths, v.Path)
	}
	return paths
}

// Nest rebases delegate violations under prefix and marks them as nested failures.
func (vs Violations) Nest(prefix string) Violations {
	out := make(Violations, 0, len(vs))
	for _, v := range vs {
		nested := v.Kind
		if v.Kind == KindNestedFailure && v.Nested != "" {
			nested = v.Nested
		}
		out = append(out, Violation{
			Path:    rebase(prefix, v.Path),
			Kind:    KindNestedFailure,
			Message: v.Message,
			Nested:  nested,
		})
	}
	return out
}

// Join appends an object key to a path.
func Join(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// Index appends an array index to a path.
func Index(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}

func rebase(prefix, path string) string {
	switch {
	case path == "":
		return prefix
	case prefix == "":
		return path
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}

// isWithin reports whether path equals ancestor or lies below it.
func isWithin(path, ancestor string) bool {
	if ancestor == "" || path == ancestor {
		return true
	}
	if !strings.HasPrefix(path, ancestor) {
		return false
	}
	next := path[len(ancestor)]
	return next == '.' || next == '['
}
