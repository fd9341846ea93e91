package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/reoring/statlog/internal/gen"
	"github.com/reoring/statlog/internal/irbuild"
	js "github.com/reoring/statlog/jsonschema"
)

// DefaultEngineBin is the external generator ExecEngine runs.
const DefaultEngineBin = "statlog-codegen"

// ErrEngineUnavailable means the generation engine cannot be started at all.
// It aborts the whole run.
var ErrEngineUnavailable = errors.New("code generation engine is not available")

// Job is one unit of generation work.
type Job struct {
	Schema    string   // absolute schema path
	Output    string   // output Go file
	Package   string   // Go package name of the output
	ExtraArgs []string // passthrough flags for the engine
}

// Engine generates the model file of one schema.
type Engine interface {
	Generate(ctx context.Context, job Job) error
}

// SchemaError attributes a generation failure to its schema.
type SchemaError struct {
	Schema   string
	ExitCode int // process exit status; 1 for in-process failures
	Stderr   string
	Err      error
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("generation failed for %s (exit code %d): %v", e.Schema, e.ExitCode, e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

// EngineConfig holds the engine flags shared by the external binary and the
// builtin engine.
type EngineConfig struct {
	Package       string
	FailOnWarning bool
}

// ParseEngineArgs parses passthrough engine flags (--package, --fail-on-warning).
func ParseEngineArgs(args []string) (EngineConfig, error) {
	var cfg EngineConfig
	fs := pflag.NewFlagSet("engine", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Package, "package", "", "Go package name of the generated file")
	fs.BoolVar(&cfg.FailOnWarning, "fail-on-warning", false, "treat unsupported schema keywords as errors")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected engine arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

// ExecEngine runs the external generator once per schema.
type ExecEngine struct {
	Bin    string // defaults to DefaultEngineBin, looked up in PATH
	Stdout io.Writer
}

// Generate runs "<bin> --input SCHEMA --output FILE [--package P] EXTRA...".
func (e ExecEngine) Generate(ctx context.Context, job Job) error {
	bin := e.Bin
	if bin == "" {
		bin = DefaultEngineBin
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("%w: %v\nInstall it with:\n  go install github.com/reoring/statlog/cmd/statlog-codegen@latest\nor generate in process with --engine=builtin", ErrEngineUnavailable, err)
	}

	args := []string{"--input", job.Schema, "--output", job.Output}
	if job.Package != "" {
		args = append(args, "--package", job.Package)
	}
	args = append(args, job.ExtraArgs...)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		code := -1
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
		}
		return &SchemaError{Schema: job.Schema, ExitCode: code, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return nil
}

// BuiltinEngine builds and renders the model in process.
type BuiltinEngine struct {
	Logger *slog.Logger
}

// Generate loads the schema, builds the IR, renders it and writes the output
// atomically.
func (e BuiltinEngine) Generate(ctx context.Context, job Job) error {
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}
	fail := func(err error) error {
		return &SchemaError{Schema: job.Schema, ExitCode: 1, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := ParseEngineArgs(job.ExtraArgs)
	if err != nil {
		return fail(err)
	}
	if cfg.Package == "" {
		cfg.Package = job.Package
	}
	src, err := GenerateSource(job.Schema, cfg, log)
	if err != nil {
		return fail(err)
	}
	if err := writeFileAtomic(job.Output, src); err != nil {
		return fail(err)
	}
	return nil
}

// GenerateSource renders the Go source for the schema at path.
func GenerateSource(path string, cfg EngineConfig, log *slog.Logger) ([]byte, error) {
	doc, err := js.Load(path)
	if err != nil {
		return nil, err
	}
	model, diags, err := irbuild.Build(filepath.Base(path), doc)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		log.Warn("Schema keyword not enforced", "schema", path, "path", d.Path, "detail", d.Message)
	}
	if cfg.FailOnWarning && len(diags) > 0 {
		return nil, fmt.Errorf("%d schema warning(s) with --fail-on-warning", len(diags))
	}
	pkg := cfg.Package
	if pkg == "" {
		pkg = "model"
	}
	return gen.RenderFile(gen.File{Package: pkg, Model: model})
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
