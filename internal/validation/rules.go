package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validate is the shared rule engine. Field names in its errors come from
// `json` tags so that namespaces line up with input paths.
var validate = newValidate()

var (
	enumsMu sync.RWMutex
	enums   = map[string][]string{}
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// RegisterEnum registers a validation tag accepting exactly the given string values.
//
// Registration mutates the shared engine and must happen before any
// concurrent validation, typically behind a sync.Once.
func RegisterEnum(tag string, values ...string) error {
	if tag == "" || len(values) == 0 {
		return fmt.Errorf("validation: enum %q needs a tag and at least one value", tag)
	}

	members := slices.Clone(values)

	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return slices.Contains(members, field.String())
	})
	if err != nil {
		return fmt.Errorf("validation: register enum %q: %w", tag, err)
	}

	enumsMu.Lock()
	enums[tag] = members
	enumsMu.Unlock()

	return nil
}

// Struct applies the struct tag rules of s and converts failures into Violations.
//
// Paths are built from json tag names with the root struct name removed,
// e.g. "signer.email" or "fields[1].type".
func Struct(s any) Violations {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// InvalidValidationError: s was not a struct. That is a caller bug.
		return Violations{{Kind: KindTypeMismatch, Message: err.Error()}}
	}

	violations := make(Violations, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, Violation{
			Path:    trimRoot(fe.Namespace()),
			Kind:    kindForTag(fe.Tag()),
			Message: messageFor(fe),
		})
	}

	return violations
}

// Var applies a tag to a single value, reporting failures at path.
func Var(path string, value any, tag string) Violations {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return Violations{{Path: path, Kind: KindTypeMismatch, Message: err.Error()}}
	}

	violations := make(Violations, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, Violation{
			Path:    path,
			Kind:    kindForTag(fe.Tag()),
			Message: messageFor(fe),
		})
	}

	return violations
}

func trimRoot(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return ""
}

func enumValues(tag string) ([]string, bool) {
	enumsMu.RLock()
	defer enumsMu.RUnlock()
	values, ok := enums[tag]
	return values, ok
}

func kindForTag(tag string) Kind {
	if _, ok := enumValues(tag); ok {
		return KindInvalidEnumValue
	}

	switch tag {
	case "required":
		return KindMissingField
	case "oneof":
		return KindInvalidEnumValue
	default:
		return KindInvalidFormat
	}
}

// messageFor turns a validator.FieldError into a user-friendly message.
func messageFor(fe validator.FieldError) string {
	if values, ok := enumValues(fe.Tag()); ok {
		return fmt.Sprintf("invalid enum value, must be one of: %s", strings.Join(values, ", "))
	}

	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		// strings: minimum length, numbers: minimum value
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("invalid enum value, must be one of: %s", fe.Param())

	case "email":
		return "invalid email, must be a valid email address"

	case "uuid":
		return "must be a valid UUID"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
