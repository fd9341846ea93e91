package statlog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog"
	js "github.com/reoring/statlog/jsonschema"
)

// echo returns the decoded value unchanged and records the fail-fast flag.
type echo struct{ failFast *bool }

func (e echo) Parse(ctx context.Context, v any) (any, error) {
	if e.failFast != nil {
		*e.failFast = statlog.IsFailFast(ctx)
	}
	return v, nil
}
func (e echo) Validate(ctx context.Context, v any) error      { return nil }
func (e echo) ValidateValue(ctx context.Context, v any) error { return nil }
func (e echo) JSONSchema() (*js.Schema, error)                { return &js.Schema{}, nil }

func TestParseFrom(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		src  statlog.Source
		opt  statlog.ParseOpt
		want any

		wantCode string
	}{
		"Object from bytes":      {src: statlog.JSONBytes([]byte(`{"a":[1,"x",true,null]}`)), want: map[string]any{"a": []any{json.Number("1"), "x", true, nil}}},
		"Numbers keep precision": {src: statlog.JSONBytes([]byte(`12345678901234567890`)), want: json.Number("12345678901234567890")},
		"Reader source":          {src: statlog.JSONReader(strings.NewReader(`"s"`)), want: "s"},

		"Invalid JSON":           {src: statlog.NamedJSON("log.json", []byte(`{"a":`)), wantCode: statlog.CodeParseError},
		"Trailing data":          {src: statlog.JSONBytes([]byte(`{} {}`)), wantCode: statlog.CodeParseError},
		"Max bytes on bytes":     {src: statlog.JSONBytes([]byte(`"abcdef"`)), opt: statlog.ParseOpt{MaxBytes: 3}, wantCode: statlog.CodeTruncated},
		"Max bytes on reader":    {src: statlog.JSONReader(strings.NewReader(`"abcdef"`)), opt: statlog.ParseOpt{MaxBytes: 3}, wantCode: statlog.CodeTruncated},
		"Nil source is an issue": {wantCode: statlog.CodeParseError},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := statlog.ParseFrom[any](context.Background(), echo{}, tc.src, tc.opt)
			if tc.wantCode != "" {
				iss, ok := statlog.AsIssues(err)
				require.True(t, ok, "want Issues, got %v", err)
				require.Equal(t, tc.wantCode, iss[0].Code)
				require.Equal(t, "/", iss[0].Path)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseFrom_FailFastReachesSchema(t *testing.T) {
	t.Parallel()

	var seen bool
	_, err := statlog.ParseFrom[any](context.Background(), echo{failFast: &seen}, statlog.JSONBytes([]byte(`1`)), statlog.ParseOpt{FailFast: true})
	require.NoError(t, err)
	require.True(t, seen)

	seen = true
	require.NoError(t, statlog.ValidateFrom[any](context.Background(), echo{failFast: &seen}, statlog.JSONBytes([]byte(`1`))))
	require.False(t, seen)
}

func TestNamedSource(t *testing.T) {
	t.Parallel()

	src := statlog.NamedJSON("records/a.json", []byte(`{`))
	require.Equal(t, "records/a.json", src.Name())
	_, err := statlog.ParseFrom[any](context.Background(), echo{}, src)
	require.ErrorContains(t, err, "parse_error")
	iss, _ := statlog.AsIssues(err)
	require.Contains(t, iss[0].Message, "records/a.json")
}

func TestUnknownPolicyString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "strict", statlog.UnknownStrict.String())
	require.Equal(t, "strip", statlog.UnknownStrip.String())
	require.Equal(t, "passthrough", statlog.UnknownPassthrough.String())
}

func TestParseFrom_DuplicateKeys(t *testing.T) {
	t.Parallel()

	data := []byte(`{"a": 1, "b": [{"k": 1, "k": 2}, {"k": 3}], "c": {"x": {"y": 1}}, "a": 2}`)

	_, err := statlog.ParseFrom[any](context.Background(), echo{}, statlog.JSONBytes(data))
	iss, ok := statlog.AsIssues(err)
	require.True(t, ok, "want Issues, got %v", err)
	require.Len(t, iss, 2)
	require.Equal(t, "/a", iss[0].Path)
	require.Equal(t, statlog.CodeDuplicateKey, iss[0].Code)
	require.Equal(t, "/b/0/k", iss[1].Path)
	require.Equal(t, "k", iss[1].Params["key"])

	got, err := statlog.ParseFrom[any](context.Background(), echo{}, statlog.JSONBytes(data), statlog.ParseOpt{AllowDuplicateKeys: true})
	require.NoError(t, err)
	require.Equal(t, json.Number("2"), got.(map[string]any)["a"])
}
