package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// donef logs the formatted message along with the elapsed time since
// progress was created, at debug level so a normal run stays quiet.
// Example output: "Rendered mandelbrot on 90x29 raster, drawing took 8.1ms (12ms)"
func (p *progress) donef(format string, args ...any) {
	p.logger.Debugf("%s (%s)", fmt.Sprintf(format, args...), time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports render events through the CLI logger. Everything is
// logged at debug level; failures reach the user through PrintError.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnSize(_ context.Context, width, height int, err error) {
	if err != nil {
		h.logger.Debug("terminal size unavailable", "err", err)
	}
}

func (h logHooks) OnRenderStart(_ context.Context, kind string, width, height int) {
	h.logger.Debug("render started", "kind", kind, "width", width, "height", height)
}

func (h logHooks) OnRenderComplete(_ context.Context, kind string, pixels int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "kind", kind, "err", err)
		return
	}
	h.logger.Debug("render finished", "kind", kind, "pixels", pixels, "duration", duration)
}
