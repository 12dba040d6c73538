package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrFmtHandler is a slog middleware that surfaces the stack trace carried
// by a cockroachdb/errors value as a separate stacktrace attribute, so the
// trace survives JSON encoding instead of being flattened into the error
// message.
type ErrFmtHandler struct {
	inner slog.Handler
}

// WrapByErrFmtHandler wraps a slog handler with stack trace extraction.
// Any error-valued attribute on a record can contribute the trace; the
// first one carrying safe details wins.
func WrapByErrFmtHandler(inner slog.Handler) slog.Handler {
	return &ErrFmtHandler{inner: inner}
}

func (h *ErrFmtHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var trace string
	r.Attrs(func(attr slog.Attr) bool {
		err, ok := attr.Value.Any().(error)
		if !ok {
			return true
		}
		trace = stackOf(err)
		// A bare error without safe details keeps the scan going; a
		// later attribute may carry the annotated one.
		return trace == ""
	})
	if trace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, trace))
	}
	return h.inner.Handle(ctx, r)
}

func (h *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ErrFmtHandler) WithGroup(name string) slog.Handler {
	return &ErrFmtHandler{inner: h.inner.WithGroup(name)}
}

func stackOf(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) == 0 {
		return ""
	}
	return details[0]
}
