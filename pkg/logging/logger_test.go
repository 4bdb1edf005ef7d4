package logging

import (
	"os"
	"strings"
	"testing"
)

func TestGetSessionID_Stable(t *testing.T) {
	first := GetSessionID()
	second := GetSessionID()

	if first == "" {
		t.Fatal("session ID is empty")
	}
	if first != second {
		t.Errorf("session ID changed between calls: %s vs %s", first, second)
	}
}

func TestNewLogger_WritesToSessionFile(t *testing.T) {
	logger, err := NewLogger("test-component")
	if err != nil {
		t.Skipf("file logging unavailable in this environment: %v", err)
	}
	defer logger.Close()

	logger.Debugf("debug %s", "one")
	logger.Infof("info %d", 2)
	logger.Warnf("warn")
	logger.Errorf("error")

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)

	for _, want := range []string{"[test-component]", "[DEBUG] debug one", "[INFO] info 2", "[WARN] warn", "[ERROR] error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q", want)
		}
	}

	if logger.SessionID() != GetSessionID() {
		t.Error("logger session ID does not match global session ID")
	}
}

func TestSetVerbosity_FiltersLowerLevels(t *testing.T) {
	logger, err := NewLogger("verbosity-test")
	if err != nil {
		t.Skipf("file logging unavailable in this environment: %v", err)
	}
	defer logger.Close()

	t.Cleanup(func() {
		if err := SetVerbosity("debug"); err != nil {
			t.Fatalf("failed to restore verbosity: %v", err)
		}
	})

	if err := SetVerbosity("quiet"); err != nil {
		t.Fatalf("SetVerbosity(quiet) failed: %v", err)
	}
	logger.Debugf("quiet-mode-debug-entry")
	logger.Infof("quiet-mode-info-entry")
	logger.Warnf("quiet-mode-warn-entry")
	logger.Errorf("quiet-mode-error-entry")

	if err := SetVerbosity("normal"); err != nil {
		t.Fatalf("SetVerbosity(normal) failed: %v", err)
	}
	logger.Debugf("normal-mode-debug-entry")
	logger.Infof("normal-mode-info-entry")

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)

	for _, dropped := range []string{"quiet-mode-debug-entry", "quiet-mode-info-entry", "quiet-mode-warn-entry", "normal-mode-debug-entry"} {
		if strings.Contains(content, dropped) {
			t.Errorf("log file contains %q, which the verbosity floor should drop", dropped)
		}
	}
	for _, kept := range []string{"quiet-mode-error-entry", "normal-mode-info-entry"} {
		if !strings.Contains(content, kept) {
			t.Errorf("log file missing %q", kept)
		}
	}
}

func TestSetVerbosity_RejectsUnknownValue(t *testing.T) {
	if err := SetVerbosity("loud"); err == nil {
		t.Fatal("expected error for unknown verbosity")
	}
}

func TestLogger_CloseIsIdempotent(t *testing.T) {
	logger, err := NewLogger("close-test")
	if err != nil {
		t.Skipf("file logging unavailable in this environment: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
