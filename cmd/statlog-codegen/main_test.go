package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Probe",
  "type": "object",
  "additionalProperties": false,
  "properties": {"name": {"type": "string"}}
}`

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "audit-json-schema.json")
	require.NoError(t, os.WriteFile(in, []byte(schema), 0o600))
	broken := filepath.Join(dir, "broken-json-schema.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))

	tests := map[string]struct {
		args func(out string) []string

		wantCode int
		wantFile bool
	}{
		"Writes the model":          {args: func(out string) []string { return []string{"--input", in, "--output", out, "--package", "audit"} }, wantFile: true},
		"Schema failure exits 1":    {args: func(out string) []string { return []string{"--input", broken, "--output", out} }, wantCode: 1},
		"Missing required flag":     {args: func(out string) []string { return []string{"--input", in} }, wantCode: 2},
		"Positional args are usage": {args: func(out string) []string { return []string{"--input", in, "--output", out, "stray"} }, wantCode: 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out := filepath.Join(t.TempDir(), "audit.go")
			cmd := newCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			require.Equal(t, tc.wantCode, run(cmd, tc.args(out)))
			if !tc.wantFile {
				require.NoFileExists(t, out)
				return
			}
			src, err := os.ReadFile(out)
			require.NoError(t, err)
			require.Contains(t, string(src), "package audit")
			require.Contains(t, string(src), "type Probe struct")
		})
	}
}

func TestRun_Stdout(t *testing.T) {
	t.Parallel()

	in := filepath.Join(t.TempDir(), "audit-json-schema.json")
	require.NoError(t, os.WriteFile(in, []byte(schema), 0o600))

	var out bytes.Buffer
	cmd := newCmd()
	cmd.SetOut(&out)
	require.Equal(t, 0, run(cmd, []string{"-i", in, "-o", "-"}))
	require.Contains(t, out.String(), "DO NOT EDIT")
}
