// Package commands implements the statlog command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/statlog/i18n"
	"github.com/reoring/statlog/internal/cli"
	"github.com/reoring/statlog/internal/constants"
)

// App represents the application.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config appConfig

	validate validateConfig

	ctx    context.Context
	cancel context.CancelFunc
}

// appConfig holds the configuration decoded from flags, environment and the
// configuration file.
type appConfig struct {
	Verbosity int    `mapstructure:"verbose"`
	JSONLogs  bool   `mapstructure:"json-logs"`
	Lang      string `mapstructure:"lang"`

	SchemasDir string         `mapstructure:"schemas-dir"`
	Generate   generateConfig `mapstructure:",squash"`
}

// generateConfig holds the flags of the generate command.
type generateConfig struct {
	OutDir    string   `mapstructure:"out-dir"`
	Schemas   []string `mapstructure:"schema"`
	ExtraArgs []string `mapstructure:"extra-arg"`
	Package   string   `mapstructure:"package"`
	Engine    string   `mapstructure:"engine"`
	EngineBin string   `mapstructure:"engine-bin"`
	Jobs      int      `mapstructure:"jobs"`
	Watch     bool     `mapstructure:"watch"`
}

// New creates a new App instance with default values.
func New() (*App, error) {
	a := App{}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	a.cmd = &cobra.Command{
		Use:           constants.CmdName + " [COMMAND]",
		Short:         "Schema-driven models for statistical-production logs",
		Long:          "Check schema documents, generate Go models from them and validate log payloads.",
		Version:       constants.Version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true
			cli.SetVerbosity(a.config.Verbosity)
			if err := cli.InitViperConfig(constants.CmdName, a.cmd, a.viper); err != nil {
				return err
			}
			if err := a.viper.Unmarshal(&a.config); err != nil {
				return fmt.Errorf("unable to decode configuration into struct: %w", err)
			}
			cli.SetSlog(cmd.ErrOrStderr(), a.config.Verbosity, a.config.JSONLogs)
			if a.config.Lang != "" {
				i18n.SetLanguage(a.config.Lang)
			}
			slog.Debug("Got app config", "config", a.config)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	a.viper = viper.New()

	a.cmd.PersistentFlags().CountVarP(&a.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	a.cmd.PersistentFlags().BoolVar(&a.config.JSONLogs, "json-logs", false, "write logs as JSON")
	a.cmd.PersistentFlags().StringVar(&a.config.Lang, "lang", "", "language of issue messages (en, nb)")
	a.cmd.PersistentFlags().StringVar(&a.config.SchemasDir, "schemas-dir", constants.DefaultSchemasDir, "directory holding the schema documents")
	if err := a.cmd.MarkPersistentFlagDirname("schemas-dir"); err != nil {
		return nil, fmt.Errorf("failed to mark schemas-dir flag as directory: %w", err)
	}
	cli.InstallConfigFlag(a.cmd)
	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	if err := a.installGenerate(); err != nil {
		return nil, err
	}
	a.installCheck()
	a.installValidate()
	a.installVersion()

	return &a, nil
}

// Run executes the command and associated process, returning an error if any.
func (a *App) Run() error {
	return a.cmd.ExecuteContext(a.ctx)
}

// UsageError returns if the error is a command parsing or runtime one.
func (a App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// Quit stops a running watch.
func (a *App) Quit() {
	a.cancel()
}

// RootCmd returns a copy of the root command.
func (a App) RootCmd() cobra.Command {
	return *a.cmd
}

// SetArgs sets the arguments of the next Run.
func (a *App) SetArgs(args ...string) {
	a.cmd.SetArgs(args)
}

// SetOutput redirects the command output and errors.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.cmd.SetOut(out)
	a.cmd.SetErr(errOut)
}
