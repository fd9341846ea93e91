package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/statlog"
	"github.com/reoring/statlog/dsl/irconv"
	"github.com/reoring/statlog/internal/irbuild"
	js "github.com/reoring/statlog/jsonschema"
)

// validateConfig holds the flags of the validate command. They are not read
// from the configuration file.
type validateConfig struct {
	Schema string
	Format string
}

type payloadReport struct {
	File   string        `json:"file"`
	Valid  bool          `json:"valid"`
	Issues []issueReport `json:"issues,omitempty"`
}

type issueReport struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

func (a *App) installValidate() {
	cmd := &cobra.Command{
		Use:   "validate --schema FILE PAYLOAD...",
		Short: "Validate JSON payloads against a schema document",
		Long:  "Validate JSON payload files against a schema document with the same rules as the generated models, and print every issue.",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// required flags are only checked after the persistent pre-run
			if a.validate.Schema == "" {
				a.cmd.SilenceUsage = false
				return errors.New(`required flag "schema" not set`)
			}
			if a.validate.Format != "text" && a.validate.Format != "json" {
				a.cmd.SilenceUsage = false
				return fmt.Errorf("format must be text or json, got %q", a.validate.Format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validatePayloads(args)
		},
	}
	cmd.Flags().StringVarP(&a.validate.Schema, "schema", "s", "", "schema document the payloads must satisfy")
	cmd.Flags().StringVarP(&a.validate.Format, "format", "f", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("schema")
	a.cmd.AddCommand(cmd)
}

func (a *App) validatePayloads(files []string) error {
	doc, err := js.Load(a.validate.Schema)
	if err != nil {
		return err
	}
	m, _, err := irbuild.Build(filepath.Base(a.validate.Schema), doc)
	if err != nil {
		return err
	}
	s, err := irconv.FromModel(m)
	if err != nil {
		return err
	}

	ctx := a.cmd.Context()
	reports := make([]payloadReport, 0, len(files))
	var failed int
	for _, f := range files {
		rep := payloadReport{File: f, Valid: true}
		data, err := os.ReadFile(f)
		if err == nil {
			_, err = statlog.ParseFrom(ctx, s, statlog.NamedJSON(f, data))
		}
		if err != nil {
			failed++
			rep.Valid = false
			for _, it := range statlog.ToIssues("/", err) {
				rep.Issues = append(rep.Issues, issueReport{Path: it.Path, Code: it.Code, Message: it.Message, Hint: it.Hint})
			}
		}
		reports = append(reports, rep)
	}

	if err := a.printReports(reports); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d payload(s) failed validation", failed, len(files))
	}
	return nil
}

func (a *App) printReports(reports []payloadReport) error {
	out := a.cmd.OutOrStdout()
	if a.validate.Format == "json" {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = out.Write(append(data, '\n'))
		return err
	}

	var b bytes.Buffer
	for _, r := range reports {
		if r.Valid {
			fmt.Fprintf(&b, "ok   %s\n", r.File)
			continue
		}
		fmt.Fprintf(&b, "FAIL %s\n", r.File)
		for _, it := range r.Issues {
			fmt.Fprintf(&b, "     %s  %s  %s\n", it.Path, it.Code, it.Message)
		}
	}
	_, err := out.Write(b.Bytes())
	return err
}
