// Package main is the external model generation engine: it renders the Go
// model of a single schema document.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/statlog/internal/cli"
	"github.com/reoring/statlog/internal/codegen"
	"github.com/reoring/statlog/internal/constants"
)

type options struct {
	input         string
	output        string
	pkg           string
	failOnWarning bool
	verbosity     int
}

func newCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           constants.CodegenCmdName + " --input FILE --output FILE",
		Short:         "Render the Go model of one schema document",
		Version:       constants.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags and arguments are valid past this point.
			cmd.SilenceUsage = true
			cli.SetVerbosity(o.verbosity)
			return generate(cmd, o)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&o.input, "input", "i", "", "schema document")
	flags.StringVarP(&o.output, "output", "o", "", `output Go file, or "-" for stdout`)
	flags.StringVar(&o.pkg, "package", constants.DefaultPackage, "Go package name of the output")
	flags.BoolVar(&o.failOnWarning, "fail-on-warning", false, "treat unsupported schema keywords as errors")
	flags.CountVarP(&o.verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func generate(cmd *cobra.Command, o options) error {
	if o.output == "-" {
		src, err := codegen.GenerateSource(o.input, codegen.EngineConfig{Package: o.pkg, FailOnWarning: o.failOnWarning}, slog.Default())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}

	job := codegen.Job{Schema: o.input, Output: o.output, Package: o.pkg}
	if o.failOnWarning {
		job.ExtraArgs = []string{"--fail-on-warning"}
	}
	return codegen.BuiltinEngine{Logger: slog.Default()}.Generate(cmd.Context(), job)
}

func run(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		slog.Error(err.Error())
		if !cmd.SilenceUsage {
			return 2
		}
		var se *codegen.SchemaError
		if errors.As(err, &se) && se.ExitCode > 0 {
			return se.ExitCode
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(newCmd(), os.Args[1:]))
}
