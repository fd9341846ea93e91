package codegen_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog/internal/codegen"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("{}"), 0o600))
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files    []string
		explicit []string

		want    []string
		wantErr error
	}{
		"Conventional suffix only": {
			files: []string{"b-json-schema.json", "a-json-schema.json", "notes.json"},
			want:  []string{"a-json-schema.json", "b-json-schema.json"},
		},
		"Falls back to any json file": {
			files: []string{"one.json", "two.json", "README.md"},
			want:  []string{"one.json", "two.json"},
		},
		"Does not recurse": {
			files: []string{"top-json-schema.json", "examples/x-json-schema.json"},
			want:  []string{"top-json-schema.json"},
		},
		"Explicit paths keep their order": {
			files:    []string{"a-json-schema.json", "z.json"},
			explicit: []string{"z.json", "a-json-schema.json"},
			want:     []string{"z.json", "a-json-schema.json"},
		},

		"Error when nothing matches": {files: []string{"README.md", "examples/a.json"}, wantErr: codegen.ErrNoSchemas},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			touch(t, dir, tc.files...)

			var explicit []string
			for _, e := range tc.explicit {
				explicit = append(explicit, filepath.Join(dir, e))
			}
			got, err := codegen.Discover(dir, explicit, slog.Default())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			want := make([]string, len(tc.want))
			for i, w := range tc.want {
				want[i] = filepath.Join(dir, w)
			}
			require.Equal(t, want, got)
		})
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	t.Parallel()
	_, err := codegen.Discover(filepath.Join(t.TempDir(), "nope"), nil, nil)
	require.Error(t, err)
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"change-data-log-json-schema.json":        "change_data_log.go",
		"/abs/quality-control-result-schema.json": "quality_control_result.go",
		"plain.json":                              "plain.go",
		"x-schema-json-schema.json":               "x_schema.go",
		"-json-schema.json":                       "model.go",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, want, codegen.OutputName(in))
		})
	}
}
