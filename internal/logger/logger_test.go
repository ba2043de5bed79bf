package logger

import (
	"testing"

	"social-dashboard/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LogConfig
		level zapcore.Level
	}{
		{name: "production info", cfg: config.LogConfig{Level: "info"}, level: zapcore.InfoLevel},
		{name: "development debug", cfg: config.LogConfig{Level: "debug", Development: true}, level: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			if !log.Core().Enabled(tt.level) {
				t.Fatalf("expected level %v enabled", tt.level)
			}
			if log.Core().Enabled(tt.level - 1) {
				t.Fatalf("expected level %v disabled", tt.level-1)
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
