package codegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ubuntu/decorate"
	"golang.org/x/sync/errgroup"
)

// Generator runs an Engine over a batch of schemas.
type Generator struct {
	engine    Engine
	jobs      int
	pkg       string
	extraArgs []string
	log       *slog.Logger
}

type options struct {
	engine    Engine
	jobs      int
	pkg       string
	extraArgs []string
	logger    *slog.Logger
}

// Options represents an optional function to override Generator default values.
type Options func(*options)

// WithEngine sets the generation engine. The default is ExecEngine.
func WithEngine(e Engine) Options { return func(o *options) { o.engine = e } }

// WithJobs bounds the number of schemas generated concurrently.
func WithJobs(n int) Options { return func(o *options) { o.jobs = n } }

// WithPackage sets the Go package name of generated files.
func WithPackage(name string) Options { return func(o *options) { o.pkg = name } }

// WithExtraArgs sets passthrough flags forwarded to the engine.
func WithExtraArgs(args ...string) Options {
	return func(o *options) { o.extraArgs = append([]string(nil), args...) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Options { return func(o *options) { o.logger = l } }

// New returns a Generator.
func New(args ...Options) *Generator {
	opts := options{
		engine: ExecEngine{},
		jobs:   1,
		pkg:    "model",
		logger: slog.Default(),
	}
	for _, opt := range args {
		opt(&opts)
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}
	return &Generator{
		engine:    opts.engine,
		jobs:      opts.jobs,
		pkg:       opts.pkg,
		extraArgs: opts.extraArgs,
		log:       opts.logger,
	}
}

// Report lists the outcome of a run.
type Report struct {
	Generated []Job
	Failed    []*SchemaError
}

// Run generates every schema into outDir. Schemas are independent: a failing
// schema is recorded and its siblings still run. The returned error joins all
// per-schema failures, except ErrEngineUnavailable which aborts the run.
func (g *Generator) Run(ctx context.Context, schemas []string, outDir string) (rep Report, err error) {
	defer decorate.OnError(&err, "generating models into %s", outDir)

	jobs := make([]Job, len(schemas))
	for i, s := range schemas {
		jobs[i] = Job{
			Schema:    s,
			Output:    filepath.Join(outDir, OutputName(s)),
			Package:   g.pkg,
			ExtraArgs: g.extraArgs,
		}
	}

	results := make([]error, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.jobs)
	for i, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = err
				return nil
			}
			g.log.Info("Generating model", "schema", job.Schema, "output", job.Output)
			err := g.engine.Generate(ctx, job)
			if errors.Is(err, ErrEngineUnavailable) {
				return err
			}
			results[i] = err
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return rep, err
	}

	var errs []error
	for i, job := range jobs {
		if results[i] == nil {
			rep.Generated = append(rep.Generated, job)
			continue
		}
		var se *SchemaError
		if !errors.As(results[i], &se) {
			se = &SchemaError{Schema: job.Schema, ExitCode: 1, Err: results[i]}
		}
		g.log.Error("Model generation failed", "schema", job.Schema, "exit_code", se.ExitCode, "err", se.Err)
		rep.Failed = append(rep.Failed, se)
		errs = append(errs, se)
	}
	if len(errs) > 0 {
		return rep, fmt.Errorf("%d of %d schema(s) failed: %w", len(errs), len(jobs), errors.Join(errs...))
	}
	return rep, nil
}
