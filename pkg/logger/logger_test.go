package logger

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := New(Config{Level: level, Output: buf})
	return l, buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{" warn ", WARN},
		{"warning", WARN},
		{"fatal", FATAL},
		{"verbose", INFO},
		{"", INFO},
	}

	for _, test := range tests {
		if got := ParseLevel(test.name); got != test.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", test.name, got, test.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(WARN)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	if buf.Len() != 0 {
		t.Fatalf("Expected no output below WARN, got %q", buf.String())
	}

	l.Warnf("warn %d", 3)
	if !strings.Contains(buf.String(), "[WARN] warn 3") {
		t.Errorf("Expected warn line, got %q", buf.String())
	}
}

func TestFormatWithoutArgs(t *testing.T) {
	l, _ := newTestLogger(DEBUG)

	got := l.formatLine(INFO, "100% literal")
	if got != "[INFO] 100% literal" {
		t.Errorf("Expected message to be kept verbatim, got %q", got)
	}
}

func TestFormatWithArgs(t *testing.T) {
	l, buf := newTestLogger(DEBUG)
	l.Infof("%d%% done", 50)

	if !strings.Contains(buf.String(), "[INFO] 50% done") {
		t.Errorf("Expected formatted message, got %q", buf.String())
	}
}

func TestPrefixAndColor(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(Config{Level: DEBUG, Output: buf, Prefix: "musicutil", Colorize: true})
	l.Debugf("hello")

	out := buf.String()
	if !strings.Contains(out, colorGray+"[DEBUG]"+colorReset) {
		t.Errorf("Expected colorized level, got %q", out)
	}
	if !strings.Contains(out, "musicutil hello") {
		t.Errorf("Expected prefix before message, got %q", out)
	}
}

func TestFatalCallsExit(t *testing.T) {
	l, buf := newTestLogger(INFO)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatalf("boom")

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "[FATAL] boom") {
		t.Errorf("Expected fatal line, got %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	l, buf := newTestLogger(FATAL)
	l.Infof("hidden")
	l.SetLevel(INFO)
	l.Infof("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("Unexpected output after SetLevel: %q", buf.String())
	}
}
