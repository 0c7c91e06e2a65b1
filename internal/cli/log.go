package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// envLogFormat selects the log encoding: text (default), json or logfmt.
const envLogFormat = "ASCIIDAG_LOG_FORMAT"

// newLogger creates the CLI logger. Text logs carry a short wall-clock
// timestamp ("14:32:01.45"); json and logfmt carry RFC 3339 timestamps for
// log collectors.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	}
	if f, ok := logFormatter(os.Getenv(envLogFormat)); ok {
		opts.Formatter = f
		opts.TimeFormat = time.RFC3339
	}
	return log.NewWithOptions(w, opts)
}

// logFormatter maps a format name to a structured formatter. The second
// result is false for text and unknown names.
func logFormatter(name string) (log.Formatter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return log.JSONFormatter, true
	case "logfmt":
		return log.LogfmtFormatter, true
	default:
		return log.TextFormatter, false
	}
}

// progress logs the completion of a step together with its duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with an elapsed field, followed by keyvals.
func (p *progress) done(msg string, keyvals ...any) {
	kv := append([]any{"elapsed", time.Since(p.start).Round(time.Millisecond)}, keyvals...)
	p.logger.Info(msg, kv...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for commands and helpers further down.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
