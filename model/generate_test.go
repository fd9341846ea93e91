package model_test

import (
	"io/fs"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog/internal/codegen"
	"github.com/reoring/statlog/internal/gen"
	"github.com/reoring/statlog/internal/irbuild"
	js "github.com/reoring/statlog/jsonschema"
	"github.com/reoring/statlog/schemas"
)

// TestCommittedModelsAreCurrent fails when a schema or the renderer changed
// without running go generate: the committed file must be exactly what the
// renderer emits.
func TestCommittedModelsAreCurrent(t *testing.T) {
	names, err := fs.Glob(schemas.FS, "*"+schemas.Suffix)
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			doc, err := js.LoadFS(schemas.FS, name)
			require.NoError(t, err)
			m, _, err := irbuild.Build(name, doc)
			require.NoError(t, err)
			want, err := gen.RenderFile(gen.File{Package: "model", Model: m})
			require.NoError(t, err)

			got, err := os.ReadFile(codegen.OutputName(name))
			require.NoError(t, err, "run go generate ./model")

			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s is stale, run go generate ./model (-rendered +committed):\n%s", codegen.OutputName(name), diff)
			}
		})
	}
}
