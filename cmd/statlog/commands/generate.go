package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reoring/statlog/internal/codegen"
	"github.com/reoring/statlog/internal/constants"
)

func (a *App) installGenerate() error {
	cmd := &cobra.Command{
		Use:   "generate [flags] [-- ENGINE-ARGS...]",
		Short: "Generate Go models from the schema documents",
		Long: `Generate one Go file per schema document.

Without --schema, every *-json-schema.json file of the schema directory is
used; when there is none, every *.json file is used instead. Arguments after
"--" are passed to the generation engine unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := append(append([]string(nil), a.config.Generate.ExtraArgs...), args...)
			return a.generate(cmd.Context(), extra)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&a.config.Generate.OutDir, "out-dir", constants.DefaultOutDir, "directory receiving the generated files")
	flags.StringArrayVar(&a.config.Generate.Schemas, "schema", nil, "schema file to generate (repeatable); disables discovery")
	flags.StringArrayVar(&a.config.Generate.ExtraArgs, "extra-arg", nil, "argument passed to the engine (repeatable)")
	flags.StringVar(&a.config.Generate.Package, "package", constants.DefaultPackage, "Go package name of the generated files")
	flags.StringVar(&a.config.Generate.Engine, "engine", "exec", "generation engine: exec (external "+constants.CodegenCmdName+") or builtin")
	flags.StringVar(&a.config.Generate.EngineBin, "engine-bin", constants.CodegenCmdName, "path or name of the external engine")
	flags.IntVarP(&a.config.Generate.Jobs, "jobs", "j", 1, "number of schemas generated concurrently")
	flags.BoolVarP(&a.config.Generate.Watch, "watch", "w", false, "regenerate whenever a schema changes")

	if err := cmd.MarkFlagDirname("out-dir"); err != nil {
		return fmt.Errorf("failed to mark out-dir flag as directory: %w", err)
	}
	if err := cmd.MarkFlagFilename("schema", "json", "yaml", "yml"); err != nil {
		return fmt.Errorf("failed to mark schema flag as filename: %w", err)
	}
	if err := a.viper.BindPFlags(flags); err != nil {
		return err
	}

	a.cmd.AddCommand(cmd)
	return nil
}

func (a *App) engine() (codegen.Engine, error) {
	switch a.config.Generate.Engine {
	case "exec", "":
		return codegen.ExecEngine{Bin: a.config.Generate.EngineBin, Stdout: a.cmd.OutOrStdout()}, nil
	case "builtin":
		return codegen.BuiltinEngine{Logger: slog.Default()}, nil
	default:
		a.cmd.SilenceUsage = false
		return nil, fmt.Errorf("unknown engine %q: must be exec or builtin", a.config.Generate.Engine)
	}
}

func (a *App) generate(ctx context.Context, extra []string) error {
	cfg := a.config.Generate
	eng, err := a.engine()
	if err != nil {
		return err
	}

	schemas, err := codegen.Discover(a.config.SchemasDir, cfg.Schemas, slog.Default())
	if err != nil {
		return err
	}

	g := codegen.New(
		codegen.WithEngine(eng),
		codegen.WithJobs(cfg.Jobs),
		codegen.WithPackage(cfg.Package),
		codegen.WithExtraArgs(extra...),
		codegen.WithLogger(slog.Default()),
	)
	rep, err := g.Run(ctx, schemas, cfg.OutDir)
	for _, j := range rep.Generated {
		fmt.Fprintf(a.cmd.OutOrStdout(), "generated %s -> %s\n", j.Schema, j.Output)
	}
	if err != nil && (!cfg.Watch || errors.Is(err, codegen.ErrEngineUnavailable)) {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	if err != nil {
		slog.Error(err.Error())
	}

	results, errs, err := g.Watch(ctx, a.config.SchemasDir, cfg.OutDir, cfg.Schemas)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.cmd.OutOrStdout(), "watching %s for changes\n", a.config.SchemasDir)
	for {
		select {
		case r, ok := <-results:
			if !ok {
				return nil
			}
			if r.Err != nil {
				slog.Error("Regeneration failed", "schema", r.Schema, "err", r.Err)
				continue
			}
			fmt.Fprintf(a.cmd.OutOrStdout(), "regenerated %s\n", r.Schema)
		case err, ok := <-errs:
			if ok && err != nil {
				return err
			}
		}
	}
}
