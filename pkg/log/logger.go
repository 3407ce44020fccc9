package log

import (
	"log/slog"
	"os"
	"strings"
)

// Attribute keys shared by the slog setup and the handler.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger installs a JSON slog logger as the process default.
// Level and message keys are remapped to "severity" and "message" for
// log-aggregation backends, and error attributes carry extracted stack
// traces via ErrFmtHandler. Unknown level names fall back to info.
func SetupLogger(loglevel string) {
	opts := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr.Key = "severity"
			case slog.MessageKey:
				attr.Key = "message"
			}
			return attr
		},
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(slog.New(handler))
}

// ToLogLevel converts a level name to a slog.Level, defaulting to info.
func ToLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ErrAttr wraps an error for slog so ErrFmtHandler can find it.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
