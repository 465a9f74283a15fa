package log

import (
	"io"
	"log/slog"

	pkgerrors "github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger installs a JSON slog default logger writing to w. Records carrying an
// ErrAttr get a stacktrace attribute extracted from cockroachdb/errors.
func SetupLogger(w io.Writer, level string) error {
	lvl, err := ToLogLevel(level)
	if err != nil {
		return err
	}
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
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
	handler := slog.NewJSONHandler(w, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
	return nil
}

// ToLogLevel converts a level name to slog.Level.
func ToLogLevel(level string) (slog.Level, error) {
	l, ok := ParseLevel(level)
	if !ok {
		return 0, pkgerrors.NewValidationError("log_level", "must be one of debug, info, warn, error", level)
	}
	return slog.Level(l), nil
}

// ErrAttr wraps err as a slog attribute recognised by ErrFmtHandler.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
