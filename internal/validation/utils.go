package validation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/documenso/singleplayer/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Validate returns Violations when the payload is rejected; any other error
// is treated as an internal failure.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates payload from the request body.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors if validation fails.
//
// payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		var violations Violations
		if errors.As(err, &violations) {
			return errs.NewValidationError(ToFieldErrors(violations))
		}
		return fmt.Errorf("validate payload: %w", err)
	}

	return nil
}

// ToFieldErrors converts violations into the API's field error shape.
func ToFieldErrors(violations Violations) []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(violations))
	for _, v := range violations {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: v.Path,
			Error: v.Message,
			Code:  string(v.Kind),
		})
	}
	return fieldErrors
}

// bindError keeps Echo's status for binder failures (415 for unsupported
// media types) and turns everything else into a 400.
func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code != 0 && echoErr.Code != http.StatusBadRequest {
			return echoErr
		}
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil, nil)
		}
	}
	return errs.NewBadRequestError("Malformed request body", false, nil, nil)
}
