package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerJSON(t *testing.T) {
	t.Setenv(envLogFormat, "json")
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("rendered", "nodes", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v: %q", err, buf.String())
	}
	if entry["msg"] != "rendered" {
		t.Errorf("msg = %v, want rendered", entry["msg"])
	}
	if entry["nodes"] != float64(3) {
		t.Errorf("nodes = %v, want 3", entry["nodes"])
	}
}

func TestLogFormatter(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"json", true},
		{"JSON", true},
		{"logfmt", true},
		{"text", false},
		{"", false},
		{"xml", false},
	}
	for _, tt := range tests {
		if _, ok := logFormatter(tt.name); ok != tt.want {
			t.Errorf("logFormatter(%q) ok = %v, want %v", tt.name, ok, tt.want)
		}
	}
}

func TestProgressDone(t *testing.T) {
	t.Setenv(envLogFormat, "logfmt")
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("rendered", "file", "deps.json")

	out := buf.String()
	for _, want := range []string{"msg=rendered", "elapsed=", "file=deps.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output missing %q: %q", want, out)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext() did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}
}
