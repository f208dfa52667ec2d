package log

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newBufferLogger(level Level, f Formatter) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogger(WithLevel(level), WithFormatter(f), WithOutput(NewWriterOutput(buf))), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", DebugLevel, true},
		{"INFO", InfoLevel, true},
		{"", InfoLevel, true},
		{"warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"loud", InfoLevel, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestTextOutputAndLevelGate(t *testing.T) {
	l, buf := newBufferLogger(InfoLevel, &TextFormatter{})
	l.Debug("hidden")
	l.With(Component("audit")).Info("recorded ids", Int("count", 3), Str("dir", "/tmp/x y"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered: %s", out)
	}
	for _, want := range []string{"INFO", "recorded ids", "component=audit", "count=3", `dir="/tmp/x y"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}

	l.SetLevel(DebugLevel)
	if l.GetLevel() != DebugLevel {
		t.Fatalf("level = %v", l.GetLevel())
	}
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("debug entry should pass after SetLevel")
	}
}

func TestJSONOutput(t *testing.T) {
	l, buf := newBufferLogger(DebugLevel, &JSONFormatter{})
	l.WithError(errors.New("boom")).Warn("seed read failed", Uint64("n", 7))

	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if m["level"] != "WARN" || m["msg"] != "seed read failed" || m["error"] != "boom" {
		t.Fatalf("unexpected entry %v", m)
	}
	if m["n"] != float64(7) {
		t.Fatalf("n = %v", m["n"])
	}
}

func TestFatalExits(t *testing.T) {
	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	l, buf := newBufferLogger(InfoLevel, &TextFormatter{})
	l.Fatal("cannot continue")
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(buf.String(), "FATAL") {
		t.Fatalf("expected FATAL entry, got %s", buf.String())
	}
}

func TestApplyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	l, err := ApplyConfig(&Config{Level: "debug", Format: "json", Outputs: []string{"file:" + path, "null"}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	l.Debug("to file")
	if err := l.(*BaseLogger).Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"to file"`) {
		t.Fatalf("unexpected file contents %s", b)
	}

	if _, err := ApplyConfig(&Config{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := ApplyConfig(&Config{Outputs: []string{"syslog"}}); err == nil {
		t.Fatalf("expected error for unknown output")
	}
}

func TestStdLogBridge(t *testing.T) {
	l, buf := newBufferLogger(DebugLevel, &TextFormatter{})
	ToStdLogger(l, WarnLevel).Print("compaction stalled")
	if !strings.Contains(buf.String(), "WARN") || !strings.Contains(buf.String(), "compaction stalled") {
		t.Fatalf("unexpected output %s", buf.String())
	}

	prevOut, prevFlags := stdlog.Writer(), stdlog.Flags()
	t.Cleanup(func() {
		stdlog.SetOutput(prevOut)
		stdlog.SetFlags(prevFlags)
	})
	RedirectStdLog(l)
	stdlog.Print("from stdlib")
	if !strings.Contains(buf.String(), "component=stdlog") {
		t.Fatalf("expected redirected entry, got %s", buf.String())
	}
}
