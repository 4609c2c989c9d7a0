package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// conditionalSourceHandler wraps a handler so that source location is only
// attached for the configured levels. The wrapped handler must be created
// with AddSource: false.
type conditionalSourceHandler struct {
	handler     slog.Handler
	sourceLevel map[slog.Level]bool
}

// NewConditionalSourceHandler wraps handler so that the file:line attribute
// is only emitted for the listed levels. Keeps info/debug lines compact in
// production while warn/error stay debuggable.
func NewConditionalSourceHandler(handler slog.Handler, showSourceForLevels ...slog.Level) slog.Handler {
	levels := make(map[slog.Level]bool, len(showSourceForLevels))
	for _, level := range showSourceForLevels {
		levels[level] = true
	}
	return &conditionalSourceHandler{handler: handler, sourceLevel: levels}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.sourceLevel[r.Level] {
		// Skip this frame plus the slog internal frame to land on the caller.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}

	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithAttrs(attrs), sourceLevel: h.sourceLevel}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithGroup(name), sourceLevel: h.sourceLevel}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
