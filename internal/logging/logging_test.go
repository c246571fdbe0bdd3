package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewHonorsLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for level, want := range cases {
		logger, err := New(level, "json")
		if err != nil {
			t.Fatalf("new %q: %v", level, err)
		}
		if !logger.Core().Enabled(want) {
			t.Errorf("level %q: expected %v to be enabled", level, want)
		}
		if want > zapcore.DebugLevel && logger.Core().Enabled(want-1) {
			t.Errorf("level %q: expected %v to be disabled", level, want-1)
		}
	}
}

func TestNewConsoleFormat(t *testing.T) {
	logger, err := New("info", "console")
	if err != nil {
		t.Fatalf("new console: %v", err)
	}
	logger.Info("console logger constructed")
	_ = logger.Sync()
}
