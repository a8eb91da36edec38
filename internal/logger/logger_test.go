package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

// capture enables verbose mode into a buffer and restores defaults after the test.
func capture(t *testing.T, enabled bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(enabled)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] cache hit for redux\n"},
		{"info", Info, "[INFO] cache hit for redux\n"},
		{"warn", Warn, "[WARN] cache hit for redux\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)

			tt.log("cache hit for %s", "redux")

			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("a")
	Info("b")
	Warn("c")
	Section("d")
	Elapsed("e", time.Now())

	if buf.Len() > 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Fetch")

	if got := buf.String(); got != "\n=== Fetch ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestElapsed(t *testing.T) {
	buf := capture(t, true)

	Elapsed("search", time.Now().Add(-1500*time.Millisecond))

	got := buf.String()
	if !strings.HasPrefix(got, "[DEBUG] search took 1.5") {
		t.Errorf("unexpected output: %q", got)
	}
}
