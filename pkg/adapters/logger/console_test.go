package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/tinyrender/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelWarn, &out, &errOut)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	if out.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warn message") {
		t.Errorf("expected warn message on stderr, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "error message") {
		t.Errorf("expected error message on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_LevelNoneSilences(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelNone, &out, &errOut)

	log.Error("error message")

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("expected no output, got %q / %q", out.String(), errOut.String())
	}
}

func TestConsoleLogger_FormatsArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &errOut)

	log.Debug("Wrote %d bytes (YUV444)", 12)

	if !strings.Contains(out.String(), "12") {
		t.Errorf("expected formatted output, got %q", out.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelInfo, &out, &errOut).WithComponent("y4m")

	log.Info("hello")

	if got := out.String(); got != "[y4m] hello\n" {
		t.Errorf("expected component prefix, got %q", got)
	}
}
