package validation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorObject(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantOK  bool
		wantMsg string
	}{
		{name: "object", input: map[string]any{}, wantOK: true},
		{name: "null", input: nil, wantMsg: "expected object, received null"},
		{name: "string", input: "x", wantMsg: "expected object, received string"},
		{name: "array", input: []any{}, wantMsg: "expected object, received array"},
		{name: "number", input: 3.5, wantMsg: "expected object, received number"},
		{name: "struct", input: struct{}{}, wantMsg: "expected object, received struct {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Collector
			_, ok := c.Object("root", tt.input)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.NoError(t, c.Err())
				return
			}

			vs := c.Violations()
			require.Len(t, vs, 1)
			assert.Equal(t, Violation{Path: "root", Kind: KindTypeMismatch, Message: tt.wantMsg}, vs[0])
		})
	}
}

func TestCollectorMissingVersusNull(t *testing.T) {
	obj := map[string]any{"present": nil}

	var c Collector
	_, ok := c.String(obj, "signer", "absent")
	assert.False(t, ok)
	_, ok = c.String(obj, "signer", "present")
	assert.False(t, ok)

	vs := c.Violations()
	assert.True(t, vs.Has("signer.absent", KindMissingField))
	assert.True(t, vs.Has("signer.present", KindTypeMismatch))
}

func TestCollectorStringAcceptsEmpty(t *testing.T) {
	var c Collector
	s, ok := c.String(map[string]any{"name": ""}, "", "name")
	assert.True(t, ok)
	assert.Equal(t, "", s)
	assert.NoError(t, c.Err())
}

func TestCollectorNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{name: "float64", input: 1.5, want: 1.5, wantOK: true},
		{name: "int", input: 3, want: 3, wantOK: true},
		{name: "uint64 from yaml", input: uint64(7), want: 7, wantOK: true},
		{name: "negative", input: int64(-4), want: -4, wantOK: true},
		{name: "json number", input: json.Number("12.25"), want: 12.25, wantOK: true},
		{name: "infinity", input: math.Inf(1), want: math.Inf(1), wantOK: true},
		{name: "numeric string", input: "12"},
		{name: "broken json number", input: json.Number("twelve")},
		{name: "nan", input: math.NaN()},
		{name: "bool", input: true},
		{name: "null", input: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Collector
			got, ok := c.Number(map[string]any{"page": tt.input}, "fields[0]", "page")
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				assert.NoError(t, c.Err())
				return
			}
			assert.True(t, c.Violations().Has("fields[0].page", KindTypeMismatch))
		})
	}
}

func TestCollectorOptionals(t *testing.T) {
	obj := map[string]any{
		"label":    "Full name",
		"required": true,
		"fontSize": 12.0,
		"values":   []any{},
		"badBool":  "yes",
	}

	var c Collector

	label, ok := c.OptionalString(obj, "", "label")
	require.True(t, ok)
	require.NotNil(t, label)
	assert.Equal(t, "Full name", *label)

	missing, ok := c.OptionalString(obj, "", "placeholder")
	assert.True(t, ok)
	assert.Nil(t, missing)

	required, ok := c.OptionalBool(obj, "", "required")
	require.True(t, ok)
	assert.True(t, *required)

	size, ok := c.OptionalNumber(obj, "", "fontSize")
	require.True(t, ok)
	assert.Equal(t, 12.0, *size)

	values, ok := c.OptionalArray(obj, "", "values")
	assert.True(t, ok)
	assert.NotNil(t, values)
	assert.Empty(t, values)

	assert.NoError(t, c.Err())

	_, ok = c.OptionalBool(obj, "", "badBool")
	assert.False(t, ok)
	assert.True(t, c.Violations().Has("badBool", KindTypeMismatch))
}

func TestCollectorAggregates(t *testing.T) {
	obj := map[string]any{"fields": "nope"}

	var c Collector
	c.String(obj, "", "documentName")
	c.Array(obj, "", "fields")
	c.ObjectField(obj, "", "signer")

	vs := c.Violations()
	require.Len(t, vs, 3)
	assert.Equal(t, []string{"documentName", "fields", "signer"}, vs.Paths())
}

func TestCollectorMergeUncovered(t *testing.T) {
	var c Collector
	c.Add("signer", KindMissingField, "is required")

	c.MergeUncovered(Violations{
		{Path: "signer.email", Kind: KindInvalidFormat},
		{Path: "documentData.type", Kind: KindInvalidEnumValue},
	})

	vs := c.Violations()
	require.Len(t, vs, 2)
	assert.Equal(t, "documentData.type", vs[1].Path)
}

func TestCollectorErrNilWhenClean(t *testing.T) {
	var c Collector
	assert.Nil(t, c.Violations())
	assert.NoError(t, c.Err())
}
