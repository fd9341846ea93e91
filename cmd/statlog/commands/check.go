package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/internal/codegen"
	"github.com/reoring/statlog/metaschema"
)

func (a *App) installCheck() {
	cmd := &cobra.Command{
		Use:   "check [FILE...]",
		Short: "Check schema documents against the Draft 2020-12 metaschema",
		Long:  "Check the given schema documents, or every schema of the schema directory, against the Draft 2020-12 metaschema.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(args)
		},
	}
	a.cmd.AddCommand(cmd)
}

func (a *App) check(files []string) error {
	schemas, err := codegen.Discover(a.config.SchemasDir, files, slog.Default())
	if err != nil {
		return err
	}

	out := a.cmd.OutOrStdout()
	var failed int
	for _, p := range schemas {
		data, err := os.ReadFile(p)
		if err == nil {
			err = metaschema.Check(p, data)
		}
		if err == nil {
			fmt.Fprintf(out, "ok   %s\n", p)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL %s\n", p)
		iss, ok := statlog.AsIssues(err)
		if !ok {
			fmt.Fprintf(out, "     %v\n", err)
			continue
		}
		for _, it := range iss {
			fmt.Fprintf(out, "     %s: %s\n", it.Path, it.Message)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d schema(s) violate the metaschema", failed, len(schemas))
	}
	return nil
}
