package log

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrFmtHandler decorates a slog handler so records carrying an error
// attribute also emit the error's stack trace as a separate attribute.
// Stack traces come from cockroachdb/errors safe details, so only errors
// built through pkg/errors constructors produce one.
type ErrFmtHandler struct {
	next slog.Handler
}

// WrapByErrFmtHandler wraps a standard slog handler with stacktrace
// extraction.
func WrapByErrFmtHandler(next slog.Handler) slog.Handler {
	return &ErrFmtHandler{next: next}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.next.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			if stack := extractStacktrace(err); stack != "" {
				r.AddAttrs(slog.String(StacktraceAttrKey, stack))
			}
		}
		return false
	})
	return eh.next.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{next: eh.next.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{next: eh.next.WithGroup(g)}
}

// extractStacktrace pulls the first stack-shaped safe detail out of a
// cockroachdb/errors chain.
func extractStacktrace(err error) string {
	for _, detail := range errors.GetSafeDetails(err).SafeDetails {
		if strings.Contains(detail, ".go:") {
			return detail
		}
	}
	return ""
}
