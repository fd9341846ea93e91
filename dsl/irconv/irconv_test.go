package irconv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/dsl/irconv"
	ir "github.com/reoring/statlog/internal/ir"
	"github.com/reoring/statlog/internal/irbuild"
	js "github.com/reoring/statlog/jsonschema"
)

const eventSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Event",
  "type": "object",
  "additionalProperties": false,
  "required": ["id", "at", "detail"],
  "properties": {
    "id": {"type": "string"},
    "at": {"type": "string", "format": "date-time"},
    "level": {"type": "string", "enum": ["low", "high"], "default": "low"},
    "count": {"type": "integer", "minimum": 0},
    "tags": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "detail": {
      "oneOf": [
        {
          "type": "object",
          "additionalProperties": false,
          "required": ["kind", "path"],
          "properties": {"kind": {"const": "file"}, "path": {"type": "string"}}
        },
        {
          "type": "object",
          "additionalProperties": false,
          "required": ["kind"],
          "properties": {"kind": {"const": "none"}}
        }
      ],
      "discriminator": {"propertyName": "kind"}
    },
    "value": {
      "anyOf": [
        {"type": "string"},
        {"type": "object", "additionalProperties": {"type": "string"}}
      ]
    }
  }
}`

func eventModel(t *testing.T) statlog.Schema[map[string]any] {
	t.Helper()
	doc, err := js.Parse("event-json-schema.json", []byte(eventSchema))
	require.NoError(t, err)
	m, _, err := irbuild.Build("event-json-schema.json", doc)
	require.NoError(t, err)
	s, err := irconv.FromModel(m)
	require.NoError(t, err)
	return s
}

func parse(t *testing.T, s statlog.Schema[map[string]any], doc string) (map[string]any, statlog.Issues) {
	t.Helper()
	v, err := statlog.ParseFrom(context.Background(), s, statlog.JSONBytes([]byte(doc)))
	if err == nil {
		return v, nil
	}
	iss, ok := statlog.AsIssues(err)
	require.True(t, ok, "error should carry issues: %v", err)
	return nil, iss
}

func TestFromModel_Valid(t *testing.T) {
	t.Parallel()
	s := eventModel(t)

	v, iss := parse(t, s, `{"id":"e1","at":"2024-05-01T10:00:00+02:00","detail":{"kind":"file","path":"/x"},"value":{"a":"b"}}`)
	require.Empty(t, iss)
	require.Equal(t, "low", v["level"], "default applies")
	require.Equal(t, map[string]any{"kind": "file", "path": "/x"}, v["detail"])
}

func TestFromModel_Violations(t *testing.T) {
	t.Parallel()
	s := eventModel(t)

	tests := map[string]struct {
		doc  string
		path string
		code string
	}{
		"Missing required":       {doc: `{"at":"2024-05-01T10:00:00Z","detail":{"kind":"none"}}`, path: "/id", code: statlog.CodeRequired},
		"Unknown key":            {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","detail":{"kind":"none"},"extra":1}`, path: "/extra", code: statlog.CodeUnknownKey},
		"Naive timestamp":        {doc: `{"id":"e","at":"2024-05-01T10:00:00","detail":{"kind":"none"}}`, path: "/at", code: statlog.CodeNaiveTimestamp},
		"Enum member":            {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","level":"mid","detail":{"kind":"none"}}`, path: "/level", code: statlog.CodeInvalidEnum},
		"Minimum":                {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","count":-1,"detail":{"kind":"none"}}`, path: "/count", code: statlog.CodeTooSmall},
		"Min items":              {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","tags":[],"detail":{"kind":"none"}}`, path: "/tags", code: statlog.CodeTooShort},
		"Missing discriminator":  {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","detail":{"path":"/x"}}`, path: "/detail/kind", code: statlog.CodeDiscriminatorMissing},
		"Unknown discriminator":  {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","detail":{"kind":"dir"}}`, path: "/detail/kind", code: statlog.CodeDiscriminatorUnknown},
		"Variant field required": {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","detail":{"kind":"file"}}`, path: "/detail/path", code: statlog.CodeRequired},
		"No shape matched":       {doc: `{"id":"e","at":"2024-05-01T10:00:00Z","detail":{"kind":"none"},"value":3}`, path: "/value", code: statlog.CodeNoShapeMatched},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, iss := parse(t, s, tc.doc)
			require.True(t, iss.Has(tc.path, tc.code), "want %s at %s, got %v", tc.code, tc.path, iss)
		})
	}
}

func TestFromIR_Nodes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ad, err := irconv.FromIR(&ir.Array{Item: &ir.Primitive{Name: "integer"}})
	require.NoError(t, err)
	require.NoError(t, ad.ValidateValue(ctx, []any{int64(1)}))

	ad, err = irconv.FromIR(&ir.Const{Value: "x"})
	require.NoError(t, err)
	_, err = ad.Parse(ctx, "y")
	require.Error(t, err)

	ad, err = irconv.FromIR(nil)
	require.NoError(t, err)
	v, err := ad.Parse(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestFromModel_Recursive(t *testing.T) {
	t.Parallel()

	node := &ir.Object{Name: "Node"}
	node.Fields = []ir.Field{{Name: "next", GoName: "Next", Schema: node}}
	_, err := irconv.FromModel(&ir.Model{Root: node})
	require.ErrorIs(t, err, irconv.ErrRecursive)
}
