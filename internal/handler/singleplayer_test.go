package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documenso/singleplayer/internal/config"
	"github.com/documenso/singleplayer/internal/errs"
	"github.com/documenso/singleplayer/internal/handler"
	"github.com/documenso/singleplayer/internal/router"
	"github.com/documenso/singleplayer/internal/server"
	"github.com/documenso/singleplayer/internal/service"
)

const validBody = `{
	"documentData": {"data": "JVBERi0=", "type": "BYTES_64"},
	"documentName": "contract.pdf",
	"signer": {"email": "a@b.co", "name": "A", "signature": "sig", "customText": ""},
	"fields": [
		{"page": 1, "type": "SIGNATURE", "positionX": 10, "positionY": 20, "width": 30, "height": 5},
		{"page": 1, "type": "DATE", "positionX": 10, "positionY": 40, "width": 30, "height": 5}
	],
	"fieldMeta": null
}`

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	log := zerolog.Nop()
	srv, err := server.New(config.Default(), &log)
	require.NoError(t, err)

	return router.NewRouter(srv, handler.NewHandlers(srv, service.NewServices(srv)))
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateDocument(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/v1/singleplayer/documents", validBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sub service.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.Equal(t, "contract.pdf", sub.DocumentName)
	assert.Equal(t, "BYTES_64", sub.DocumentType)
	assert.Equal(t, "a@b.co", sub.SignerEmail)
	assert.Equal(t, 2, sub.FieldCount)
	assert.Equal(t, []string{"SIGNATURE", "DATE"}, sub.FieldTypes)
	assert.False(t, sub.HasFieldMeta)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestCreateDocumentViolations(t *testing.T) {
	e := newTestRouter(t)

	body := `{
		"documentData": {"data": "x", "type": "PDF"},
		"documentName": 7,
		"signer": {"email": "nope", "name": "A", "signature": "s", "customText": ""},
		"fields": [{"page": "1", "type": "SIGNATURE", "positionX": 0, "positionY": 0, "width": 1, "height": 1}]
	}`

	rec := do(t, e, http.MethodPost, "/api/v1/singleplayer/documents", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	assert.Equal(t, errs.CodeValidationFailed, httpErr.Code)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.True(t, httpErr.Override)

	got := map[string]string{}
	for _, fe := range httpErr.Errors {
		got[fe.Field] = fe.Code
	}
	assert.Equal(t, map[string]string{
		"documentData.type": "INVALID_ENUM_VALUE",
		"documentName":      "TYPE_MISMATCH",
		"signer.email":      "INVALID_FORMAT",
		"fields[0].page":    "TYPE_MISMATCH",
		"fieldMeta":         "MISSING_FIELD",
	}, got)
}

func TestCreateDocumentMalformedBody(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/v1/singleplayer/documents", `{"documentName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.Empty(t, httpErr.Errors)
}

func TestValidateDocument(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/v1/singleplayer/documents/validate", validBody)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/api/v1/singleplayer/documents/validate", `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	assert.Equal(t, "Route not found", httpErr.Message)
}

func TestCheckHealth(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status      string                    `json:"status"`
		Environment string                    `json:"environment"`
		Checks      map[string]map[string]any `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "development", body.Environment)
	assert.Equal(t, "healthy", body.Checks["validator"]["status"])
}
