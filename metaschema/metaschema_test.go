package metaschema_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/metaschema"
)

func TestCheck_ValidDocument(t *testing.T) {
	doc := `{
	  "$schema": "https://json-schema.org/draft/2020-12/schema",
	  "title": "Ok",
	  "type": "object",
	  "properties": {"a": {"type": "string"}},
	  "required": ["a"],
	  "additionalProperties": false
	}`
	require.NoError(t, metaschema.Check("ok.json", []byte(doc)))
}

func TestCheck_ReportsViolationsWithLocation(t *testing.T) {
	tests := map[string]struct {
		doc      string
		wantPath string
	}{
		"unknown type name":    {doc: `{"type": "text"}`, wantPath: "/type"},
		"required not a list":  {doc: `{"type": "object", "required": "a"}`, wantPath: "/required"},
		"nested property type": {doc: `{"properties": {"a": {"type": 5}}}`, wantPath: "/properties/a/type"},
		"oneOf must be array":  {doc: `{"oneOf": {"type": "string"}}`, wantPath: "/oneOf"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := metaschema.Check("bad.json", []byte(tc.doc))
			require.Error(t, err)

			iss, ok := statlog.AsIssues(err)
			require.True(t, ok, "expected Issues, got %T", err)
			require.NotEmpty(t, iss)

			var paths []string
			for _, it := range iss {
				assert.Equal(t, statlog.CodeSchemaViolation, it.Code)
				assert.NotEmpty(t, it.Params["keyword"])
				paths = append(paths, it.Path)
			}
			assert.Contains(t, paths, tc.wantPath)
			assert.Contains(t, err.Error(), "bad.json")
		})
	}
}

func TestCheck_AlwaysUsesDraft2020(t *testing.T) {
	doc := `{"$schema": "http://json-schema.org/draft-07/schema#", "$defs": 5}`

	err := metaschema.Check("draft7.json", []byte(doc))
	require.Error(t, err)
	iss, ok := statlog.AsIssues(err)
	require.True(t, ok, "expected Issues, got %T", err)
	assert.True(t, iss.Has("/$defs", statlog.CodeSchemaViolation), "got %v", iss)
}

func TestCheck_MalformedJSON(t *testing.T) {
	err := metaschema.Check("broken.json", []byte(`{"type": `))
	require.Error(t, err)
	iss, ok := statlog.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, statlog.CodeParseError, iss[0].Code)
}

func TestCheckFS_DoesNotStopAtFirstFailure(t *testing.T) {
	fsys := fstest.MapFS{
		"a-json-schema.json": {Data: []byte(`{"type": "bogus"}`)},
		"b-json-schema.json": {Data: []byte(`{"type": "object"}`)},
		"c-json-schema.json": {Data: []byte(`{"required": 1}`)},
	}
	rs, err := metaschema.CheckFS(fsys, "*-json-schema.json")
	require.NoError(t, err)
	require.Len(t, rs, 3)

	assert.Equal(t, "a-json-schema.json", rs[0].Path)
	assert.Error(t, rs[0].Err)
	assert.NoError(t, rs[1].Err)
	assert.Error(t, rs[2].Err)

	failed := metaschema.Failed(rs)
	assert.Len(t, failed, 2)
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok-json-schema.json"), []byte(`{"type": "object"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad-schema.json"), []byte(`{"type": 1}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`not json`), 0o600))

	rs, err := metaschema.CheckDir(dir)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "bad-schema.json", rs[0].Path)
	assert.Error(t, rs[0].Err)
	assert.NoError(t, rs[1].Err)
}
