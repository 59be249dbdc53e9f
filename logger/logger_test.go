package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdwalk.log")

	log := New("debug", DefaultFileConfig(path), false)
	log.Info("player spawned", zap.Float64("x", 1.5))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "player spawned") {
		t.Errorf("expected log line in file, got %q", data)
	}
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	log := New("info", FileConfig{}, false)
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a logger without outputs to be disabled")
	}
}

func TestNewConsoleWritesToStderr(t *testing.T) {
	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	log := New("debug", FileConfig{}, true)
	log.Debug("cd animation started", zap.Int("tick", 42))
	_ = log.Sync()

	os.Stdout, os.Stderr = origOut, origErr
	_ = outW.Close()
	_ = errW.Close()
	stdout, _ := io.ReadAll(outR)
	stderr, _ := io.ReadAll(errR)
	_ = outR.Close()
	_ = errR.Close()

	if len(stdout) != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout)
	}
	if !strings.Contains(string(stderr), "cd animation started") {
		t.Errorf("expected the log line on stderr, got %q", stderr)
	}
}
