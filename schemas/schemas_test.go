package schemas_test

import (
	"context"
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/dsl/irconv"
	"github.com/reoring/statlog/internal/irbuild"
	js "github.com/reoring/statlog/jsonschema"
	"github.com/reoring/statlog/metaschema"
	"github.com/reoring/statlog/schemas"
)

func TestSchemasPassMetaschema(t *testing.T) {
	rs, err := metaschema.CheckFS(schemas.FS, "*"+schemas.Suffix)
	require.NoError(t, err)
	require.Len(t, rs, 3, "every schema document should be checked")
	for _, r := range rs {
		assert.NoError(t, r.Err, "schema %s", r.Path)
	}
}

func TestSchemasBuildWithoutWarnings(t *testing.T) {
	names, err := fs.Glob(schemas.FS, "*"+schemas.Suffix)
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			doc, err := js.LoadFS(schemas.FS, name)
			require.NoError(t, err)

			m, diags, err := irbuild.Build(name, doc)
			require.NoError(t, err)
			assert.Empty(t, diags, "every keyword used by the repository schemas is enforced")
			assert.NotNil(t, m.Root)
		})
	}
}

func TestExamplesValidate(t *testing.T) {
	examples, err := fs.Glob(schemas.FS, "examples/*/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, examples)

	for _, ex := range examples {
		t.Run(ex, func(t *testing.T) {
			subject := path.Base(path.Dir(ex))
			doc, err := js.LoadFS(schemas.FS, subject+schemas.Suffix)
			require.NoError(t, err, "examples/%s has no matching schema", subject)

			m, _, err := irbuild.Build(subject+schemas.Suffix, doc)
			require.NoError(t, err)
			s, err := irconv.FromModel(m)
			require.NoError(t, err)

			data, err := fs.ReadFile(schemas.FS, ex)
			require.NoError(t, err)
			out, err := statlog.ParseFrom(context.Background(), s, statlog.NamedJSON(ex, data))
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestExamplesAreNotSchemas(t *testing.T) {
	examples, err := fs.Glob(schemas.FS, "examples/*/*.json")
	require.NoError(t, err)
	for _, ex := range examples {
		assert.False(t, strings.HasSuffix(ex, schemas.Suffix), "%s would be picked up as a schema", ex)
	}
}
