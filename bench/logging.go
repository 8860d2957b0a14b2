package bench

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevelEnv names the environment variable read by ConfigureLogging.
const LogLevelEnv = "STRSEARCH_LOG_LEVEL"

var logLevel = new(slog.LevelVar)

// ConfigureLogging sets up the global default logger with a TextHandler
// writing to w, at the level named by STRSEARCH_LOG_LEVEL (DEBUG, INFO, WARN
// or ERROR). It defaults to Info.
func ConfigureLogging(w io.Writer) {
	logLevel.Set(ParseLogLevel(os.Getenv(LogLevelEnv)))

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel changes the level of the logger configured by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// ParseLogLevel maps DEBUG, WARN and ERROR to their levels; anything else is
// Info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}
