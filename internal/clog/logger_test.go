package clog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetFileOutput(&buf)
	l.SetErrOutput(nil)
	l.SetLevel(LevelDebug)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	for _, want := range []string{
		"[DEBUG] debug message",
		"[INFO] info message",
		"[WARN] warn message",
		"[ERROR] error message",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetFileOutput(&buf)
	l.SetErrOutput(nil)
	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("debug message should be filtered, got: %s", output)
	}
	if strings.Contains(output, "info message") {
		t.Errorf("info message should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "[WARN] warn message") {
		t.Errorf("expected warn message in output, got: %s", output)
	}
}

func TestLogger_StderrOnlyWarnAndAbove(t *testing.T) {
	var fileBuf, errBuf bytes.Buffer
	l := NewLogger()
	l.SetFileOutput(&fileBuf)
	l.SetErrOutput(&errBuf)
	l.SetLevel(LevelDebug)

	l.Info("quiet info")
	l.Warn("loud warning")

	if strings.Contains(errBuf.String(), "quiet info") {
		t.Errorf("info should not reach stderr, got: %s", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "[WARN] loud warning") {
		t.Errorf("expected warning on stderr, got: %s", errBuf.String())
	}
	if !strings.Contains(fileBuf.String(), "quiet info") {
		t.Errorf("expected info in file output, got: %s", fileBuf.String())
	}
}

func TestOpenLogFile_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "warden.log")

	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile(%q) failed: %v", path, err)
	}
	defer f.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestTestLogger_CapturesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := TestLogger(&buf)

	l.Debug("captured")

	if !strings.Contains(buf.String(), "captured") {
		t.Errorf("TestLogger should capture debug output, got: %s", buf.String())
	}
}

func TestReplaceGlobal(t *testing.T) {
	var buf bytes.Buffer
	old := ReplaceGlobal(TestLogger(&buf))
	defer ReplaceGlobal(old)

	Warn("through global")

	if !strings.Contains(buf.String(), "through global") {
		t.Errorf("expected global logger output, got: %s", buf.String())
	}
}
