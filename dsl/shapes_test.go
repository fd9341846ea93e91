package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog"
	g "github.com/reoring/statlog/dsl"
)

type valueItem struct {
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

var valueItemSchema = g.ObjectOf[valueItem]().
	Field("variable_name", g.StringOf[string]()).Required().
	Field("value", g.StringOf[string]()).Required().
	UnknownStrict().
	MustBind()

func valueShapes() g.AnyAdapter {
	return g.Shapes(
		g.Shape("string", g.StringOf[string]()),
		g.Shape("ValueItem", g.SchemaOf(valueItemSchema)),
		g.Shape("[]ValueItem", g.ArrayOf(valueItemSchema)),
		g.Shape("map[string]string", g.MapOf(g.String())),
	)
}

func TestShapes_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	ad := valueShapes()

	v, err := ad.Parse(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	v, err = ad.Parse(ctx, map[string]any{"variable_name": "a", "value": "1"})
	require.NoError(t, err)
	assert.Equal(t, valueItem{VariableName: "a", Value: "1"}, v)

	v, err = ad.Parse(ctx, []any{map[string]any{"variable_name": "a", "value": "1"}})
	require.NoError(t, err)
	assert.Equal(t, []valueItem{{VariableName: "a", Value: "1"}}, v)

	v, err = ad.Parse(ctx, map[string]any{"a": "1", "b": "2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, v)
}

func TestShapes_NoMatchListsEveryShape(t *testing.T) {
	ad := valueShapes()
	_, err := ad.Parse(context.Background(), json.Number("5"))
	iss, ok := statlog.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, statlog.CodeNoShapeMatched, iss[0].Code)
	assert.Equal(t, []string{"string", "ValueItem", "[]ValueItem", "map[string]string"}, iss[0].Params["shapes"])
	attempts, ok := iss[0].Params["attempts"].(map[string]statlog.Issues)
	require.True(t, ok)
	assert.Len(t, attempts, 4)
	assert.Contains(t, iss[0].Message, "map[string]string")
}

func TestShapes_ValidateValue(t *testing.T) {
	ctx := context.Background()
	ad := valueShapes()
	assert.NoError(t, ad.ValidateValue(ctx, "x"))
	assert.NoError(t, ad.ValidateValue(ctx, valueItem{VariableName: "a", Value: "b"}))
	assert.NoError(t, ad.ValidateValue(ctx, map[string]string{}))
	assert.NoError(t, ad.ValidateValue(ctx, map[string]any{"a": "1"}), "decoded JSON is judged like Parse judges it")
	assert.Error(t, ad.ValidateValue(ctx, map[string]any{"a": 1}))
	assert.Error(t, ad.ValidateValue(ctx, 3.5))
}

func TestShapes_JSONSchemaAnyOf(t *testing.T) {
	js, err := valueShapes().JSONSchema()
	require.NoError(t, err)
	require.Len(t, js.AnyOf, 4)
	assert.Equal(t, "array", js.AnyOf[2].Type.Primary())
}
