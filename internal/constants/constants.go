// Package constants holds values shared by the statlog binaries.
package constants

import "log/slog"

const (
	// CmdName is the name of the main CLI.
	CmdName = "statlog"
	// CodegenCmdName is the name of the external generation engine.
	CodegenCmdName = "statlog-codegen"

	// DefaultLogLevel is the log level used without any -v flag.
	DefaultLogLevel = slog.LevelWarn

	// DefaultSchemasDir is where schema documents are looked up.
	DefaultSchemasDir = "schemas"
	// DefaultOutDir is where generated models are written.
	DefaultOutDir = "model"
	// DefaultPackage is the Go package name of generated models.
	DefaultPackage = "model"
)

// Version is the version of the binaries, set at build time.
var Version = "Dev"
