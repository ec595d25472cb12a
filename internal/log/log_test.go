// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and output redirection

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(slog.LevelInfo)
	Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("debug output not suppressed at info level: %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelDebug)
	Debug("request %q", "\x1b[6n")
	got := buf.String()
	if !strings.HasPrefix(got, "[DEBUG] ") {
		t.Errorf("missing [DEBUG] prefix: %q", got)
	}
	if !strings.Contains(got, `"\x1b[6n"`) {
		t.Errorf("missing escaped payload: %q", got)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelError)
	Error("boom: %v", "details")
	if !strings.Contains(buf.String(), "[ERROR] boom: details") {
		t.Errorf("error not emitted: %q", buf.String())
	}
}
