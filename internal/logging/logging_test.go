// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       Config
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"defaults", Config{}, zapcore.InfoLevel, false},
		{"debug json", Config{Level: "DEBUG", Format: "json"}, zapcore.DebugLevel, false},
		{"padded warn", Config{Level: " warn ", Format: " Console "}, zapcore.WarnLevel, false},
		{"bad format", Config{Format: "xml"}, 0, true},
		{"bad level", Config{Level: "loud"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, level, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("New() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if logger == nil {
				t.Fatal("New() returned nil logger")
			}
			if level.Level() != tt.wantLevel {
				t.Errorf("level = %v, want %v", level.Level(), tt.wantLevel)
			}
		})
	}
}

func TestNew_AtomicLevel(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Level: "error"})
	if err != nil {
		t.Fatal(err)
	}

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info enabled at error level")
	}
	level.SetLevel(zapcore.DebugLevel)
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug not enabled after SetLevel")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")

	cfg := ConfigFromEnv()
	if cfg.Level != "debug" || cfg.Format != "json" {
		t.Errorf("ConfigFromEnv() = %+v", cfg)
	}
}

func TestNewSessionID(t *testing.T) {
	t.Parallel()

	a, b := NewSessionID(), NewSessionID()
	if len(a) != 16 || a == b {
		t.Errorf("NewSessionID() = %q, %q", a, b)
	}
}
