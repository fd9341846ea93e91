package statlog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/dsl"
)

func controlSchema(t *testing.T) statlog.Schema[map[string]any] {
	t.Helper()
	s, err := dsl.Object().
		Field("quality_control_id", dsl.StringOf[string]()).Required().
		Field("quality_control_type", dsl.SchemaOf(dsl.EnumOf("H", "S", "I"))).Required().
		UnknownStrict().
		Build()
	require.NoError(t, err)
	return s
}

func TestSafeParseAndIs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := controlSchema(t)

	good := map[string]any{"quality_control_id": "qc-1", "quality_control_type": "H"}
	bad := map[string]any{"quality_control_id": "qc-1", "quality_control_type": "X"}

	v, ok := statlog.SafeParse(ctx, s, good)
	assert.True(t, ok)
	assert.Equal(t, "qc-1", v["quality_control_id"])
	assert.True(t, statlog.Is(ctx, s, good))

	v, ok = statlog.SafeParse(ctx, s, bad)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, statlog.Is(ctx, s, bad))
}

func TestFailFastContext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.False(t, statlog.IsFailFast(ctx))
	assert.True(t, statlog.IsFailFast(statlog.WithFailFast(ctx, true)))
	assert.False(t, statlog.IsFailFast(statlog.WithFailFast(statlog.WithFailFast(ctx, true), false)))

	s := controlSchema(t)
	_, err := s.Parse(statlog.WithFailFast(ctx, true), map[string]any{"extra": 1})
	iss, ok := statlog.AsIssues(err)
	require.True(t, ok)
	assert.Len(t, iss, 1)

	_, err = s.Parse(ctx, map[string]any{"extra": 1})
	iss, ok = statlog.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, []string{statlog.CodeUnknownKey, statlog.CodeRequired, statlog.CodeRequired}, iss.Codes())
}
