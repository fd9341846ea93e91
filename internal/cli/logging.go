package cli

import (
	"io"
	"log/slog"

	"github.com/reoring/statlog/internal/constants"
)

// SetVerbosity sets the logging level of the default logger from the -v count.
func SetVerbosity(level int) {
	slog.SetLogLoggerLevel(Level(level))
}

// SetSlog installs the default logger. jsonLogs selects a JSON handler on w;
// otherwise the text logger of the log package is kept and only the level
// changes.
func SetSlog(w io.Writer, level int, jsonLogs bool) {
	if jsonLogs {
		slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: Level(level)})))
		return
	}
	SetVerbosity(level)
}

// Level maps a -v count to a slog level.
func Level(level int) slog.Level {
	switch level {
	case 0:
		return constants.DefaultLogLevel
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
