package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerFunctions_NoNilPointers(t *testing.T) {
	logger = nil
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logger function panicked: %v", r)
		}
	}()

	Debug("test debug", "key", "value")
	Info("test info", "key", "value")
	Warn("test warn", "key", "value")
	Error("test error", "key", "value")

	if With("view", "home") == nil {
		t.Error("With should return a usable logger before Init")
	}
}

func TestInitWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, log.InfoLevel)

	Debug("hidden debug line")
	Info("visible info line", "page", 2)

	out := buf.String()
	if strings.Contains(out, "hidden debug line") {
		t.Error("Debug output should be filtered at info level")
	}
	if !strings.Contains(out, "visible info line") {
		t.Errorf("Info output missing: %q", out)
	}
	if !strings.Contains(out, "page=2") {
		t.Errorf("Key/value pairs should be rendered: %q", out)
	}
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, log.DebugLevel)

	With("view", "home").Debug("fetch issued")

	if !strings.Contains(buf.String(), "view=home") {
		t.Errorf("Child logger should carry fields: %q", buf.String())
	}
}
