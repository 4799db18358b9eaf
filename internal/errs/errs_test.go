package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("broken", false, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "broken", err.Error())

	code := "CUSTOM"
	assert.Equal(t, "CUSTOM", NewBadRequestError("broken", false, &code, nil).Code)
}

func TestNewValidationError(t *testing.T) {
	fields := []FieldError{{Field: "signer.email", Error: "invalid email", Code: "INVALID_FORMAT"}}

	err := NewValidationError(fields)
	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, err.Override)
	assert.Equal(t, fields, err.Errors)
}

func TestNotFoundAndInternal(t *testing.T) {
	nf := NewNotFoundError("gone", false, nil)
	assert.Equal(t, "NOT_FOUND", nf.Code)
	assert.Equal(t, http.StatusNotFound, nf.Status)

	internal := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), internal.Message)
}

func TestHTTPErrorIsAndWithMessage(t *testing.T) {
	base := NewNotFoundError("gone", true, nil)
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	renamed := base.WithMessage("still gone")
	assert.Equal(t, "still gone", renamed.Message)
	assert.Equal(t, "gone", base.Message)
	assert.Equal(t, base.Status, renamed.Status)
	assert.Equal(t, base.Override, renamed.Override)
}
