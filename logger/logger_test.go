package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"info":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDefaultLoggerIsSafe(t *testing.T) {
	// Library code logs before any Init call.
	Debug("noop", zap.Int("n", 1))
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "editor.log")

	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { Log = zap.NewNop() })

	Info("level generated", zap.Int("width", 64), zap.Int("height", 32))
	Debug("fill skipped")
	Sync()

	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "level generated") || !strings.Contains(out, `"width":64`) {
		t.Fatalf("log file missing entry: %s", out)
	}
	if !strings.Contains(out, "fill skipped") {
		t.Fatalf("debug entry should be written at debug level: %s", out)
	}
}
