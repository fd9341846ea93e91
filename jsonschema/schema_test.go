package jsonschema_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	js "github.com/reoring/statlog/jsonschema"
)

const doc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Sample",
  "type": "object",
  "properties": {
    "zeta": {"type": "string"},
    "alpha": {"type": ["integer", "null"], "minimum": 0},
    "kind": {"enum": ["a", "b"], "default": "a"},
    "item": {"$ref": "#/$defs/Item"}
  },
  "required": ["zeta"],
  "additionalProperties": false,
  "$defs": {
    "Item": {"type": "object", "properties": {"v": {"type": "string"}}, "$comment": "x"}
  }
}`

func TestParse_PreservesPropertyOrder(t *testing.T) {
	s, err := js.Parse("sample.json", []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "kind", "item"}, s.Properties.Names())
	assert.Equal(t, "Sample", s.Title)
	assert.True(t, s.AdditionalProperties.IsFalse())
	assert.Equal(t, []string{"zeta"}, s.Required)

	alpha := s.Properties.Get("alpha")
	require.NotNil(t, alpha)
	assert.Equal(t, "integer", alpha.Type.Primary())
	assert.True(t, alpha.Type.Nullable())
	require.NotNil(t, alpha.Minimum)
	assert.InDelta(t, 0, *alpha.Minimum, 0)

	kind := s.Properties.Get("kind")
	assert.Equal(t, []any{"a", "b"}, kind.Enum)
	assert.Equal(t, "a", kind.Default)
}

func TestParse_CollectsUnmodeledKeywords(t *testing.T) {
	s, err := js.Parse("sample.json", []byte(doc))
	require.NoError(t, err)

	item := s.Defs.Get("Item")
	require.NotNil(t, item)
	assert.Equal(t, "x", item.Extra["$comment"])
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	_, err := js.Parse("broken.json", []byte(`{"type": "object",}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestParse_YAML(t *testing.T) {
	src := "title: Y\ntype: object\nproperties:\n  b: {type: string}\n  a: {type: boolean}\n"
	s, err := js.Parse("y.yaml", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, s.Properties.Names())
}

func TestResolve(t *testing.T) {
	s, err := js.Parse("sample.json", []byte(doc))
	require.NoError(t, err)

	item, err := js.Resolve(s, "#/$defs/Item")
	require.NoError(t, err)
	assert.Equal(t, []string{"v"}, item.Properties.Names())

	_, err = js.Resolve(s, "#/$defs/Missing")
	require.ErrorIs(t, err, js.ErrUnresolvedRef)

	_, err = js.Resolve(s, "other.json#/x")
	require.ErrorIs(t, err, js.ErrUnresolvedRef)

	assert.Equal(t, "Item", js.DefName("#/$defs/Item"))
	assert.Empty(t, js.DefName("#/properties/x"))
}

func TestMarshal_RoundTripKeepsOrderAndBooleans(t *testing.T) {
	s := &js.Schema{Type: js.Types{"object"}, AdditionalProperties: js.False()}
	s.Properties.Set("b", &js.Schema{Type: js.Types{"string"}})
	s.Properties.Set("a", &js.Schema{Type: js.Types{"string", "null"}})

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{"b":{"type":"string"},"a":{"type":["string","null"]}},"additionalProperties":false}`, string(out))
	assert.Less(t, indexOf(string(out), `"b"`), indexOf(string(out), `"a"`))

	back, err := js.Parse("x.json", out)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, back.Properties.Names())
	assert.True(t, back.AdditionalProperties.IsFalse())
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
