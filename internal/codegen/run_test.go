package codegen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog/internal/codegen"
)

const okSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Sample",
  "type": "object",
  "additionalProperties": false,
  "required": ["id"],
  "properties": {
    "id": {"type": "string"},
    "at": {"type": "string", "format": "date-time"}
  }
}`

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestBuiltinRun(t *testing.T) {
	t.Parallel()

	dir, out := t.TempDir(), t.TempDir()
	good := writeSchema(t, dir, "sample-json-schema.json", okSchema)
	bad := writeSchema(t, dir, "broken-json-schema.json", `{"type": "object",`)
	other := writeSchema(t, dir, "other-json-schema.json", okSchema)

	g := codegen.New(codegen.WithEngine(codegen.BuiltinEngine{}), codegen.WithJobs(2), codegen.WithPackage("things"))
	rep, err := g.Run(context.Background(), []string{good, bad, other}, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), bad)

	require.Len(t, rep.Generated, 2)
	require.Len(t, rep.Failed, 1)
	require.Equal(t, bad, rep.Failed[0].Schema)
	require.Equal(t, 1, rep.Failed[0].ExitCode)

	src, err := os.ReadFile(filepath.Join(out, "sample.go"))
	require.NoError(t, err)
	require.Contains(t, string(src), "package things")
	require.Contains(t, string(src), "type Sample struct")
	require.FileExists(t, filepath.Join(out, "other.go"))
	require.NoFileExists(t, filepath.Join(out, "broken.go"))
}

func TestBuiltinRun_Deterministic(t *testing.T) {
	t.Parallel()

	dir, out := t.TempDir(), t.TempDir()
	p := writeSchema(t, dir, "sample-json-schema.json", okSchema)
	g := codegen.New(codegen.WithEngine(codegen.BuiltinEngine{}))

	_, err := g.Run(context.Background(), []string{p}, out)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(out, "sample.go"))
	require.NoError(t, err)

	_, err = g.Run(context.Background(), []string{p}, out)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(out, "sample.go"))
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestBuiltinEngine_FailOnWarning(t *testing.T) {
	t.Parallel()

	dir, out := t.TempDir(), t.TempDir()
	p := writeSchema(t, dir, "loose-json-schema.json", `{"type":"object","properties":{"a":{"type":"string","pattern":"^x"}}}`)

	g := codegen.New(codegen.WithEngine(codegen.BuiltinEngine{}))
	_, err := g.Run(context.Background(), []string{p}, out)
	require.NoError(t, err, "warnings alone do not fail")

	g = codegen.New(codegen.WithEngine(codegen.BuiltinEngine{}), codegen.WithExtraArgs("--fail-on-warning"))
	rep, err := g.Run(context.Background(), []string{p}, out)
	require.Error(t, err)
	require.Len(t, rep.Failed, 1)
}

func TestExecEngine_Unavailable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := writeSchema(t, dir, "sample-json-schema.json", okSchema)

	g := codegen.New(codegen.WithEngine(codegen.ExecEngine{Bin: "statlog-codegen-does-not-exist"}))
	rep, err := g.Run(context.Background(), []string{p}, t.TempDir())
	require.ErrorIs(t, err, codegen.ErrEngineUnavailable)
	require.Contains(t, err.Error(), "go install")
	require.Empty(t, rep.Generated)
}

type countingEngine struct {
	calls   atomic.Int32
	running atomic.Int32
	peak    atomic.Int32
	fail    string
}

func (e *countingEngine) Generate(ctx context.Context, job codegen.Job) error {
	e.calls.Add(1)
	n := e.running.Add(1)
	defer e.running.Add(-1)
	for {
		p := e.peak.Load()
		if n <= p || e.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	if filepath.Base(job.Schema) == e.fail {
		return errors.New("boom")
	}
	return nil
}

func TestRun_JobsLimit(t *testing.T) {
	t.Parallel()

	e := &countingEngine{fail: "c.json"}
	g := codegen.New(codegen.WithEngine(e), codegen.WithJobs(2))
	rep, err := g.Run(context.Background(), []string{"/s/a.json", "/s/b.json", "/s/c.json", "/s/d.json"}, "/out")
	require.Error(t, err)

	require.EqualValues(t, 4, e.calls.Load())
	require.LessOrEqual(t, e.peak.Load(), int32(2))
	require.Len(t, rep.Failed, 1)
	require.Equal(t, "/s/c.json", rep.Failed[0].Schema)
	require.Equal(t, "/out/a.go", rep.Generated[0].Output)
}

func TestParseEngineArgs(t *testing.T) {
	t.Parallel()

	cfg, err := codegen.ParseEngineArgs([]string{"--package", "m", "--fail-on-warning"})
	require.NoError(t, err)
	require.Equal(t, codegen.EngineConfig{Package: "m", FailOnWarning: true}, cfg)

	_, err = codegen.ParseEngineArgs([]string{"--nope"})
	require.Error(t, err)

	_, err = codegen.ParseEngineArgs([]string{"stray"})
	require.Error(t, err)
}
