// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zap logger shared by the command and handed
// to the library packages.
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLevel  = "PCMAUDIO_LOG_LEVEL"
	EnvFormat = "PCMAUDIO_LOG_FORMAT"
)

type Config struct {
	Level  string
	Format string
}

// ConfigFromEnv reads PCMAUDIO_LOG_LEVEL and PCMAUDIO_LOG_FORMAT.
func ConfigFromEnv() Config {
	return Config{
		Level:  os.Getenv(EnvLevel),
		Format: os.Getenv(EnvFormat),
	}
}

// New builds a logger. Level defaults to info and Format to console; the
// returned AtomicLevel changes the level of the running logger.
func New(cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" {
		level = "info"
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		format = "console"
	}

	var zapCfg zap.Config
	switch format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid %s: %s", EnvFormat, cfg.Format)
	}

	atomLevel := zap.NewAtomicLevel()
	if err := atomLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid %s: %s", EnvLevel, cfg.Level)
	}
	zapCfg.Level = atomLevel

	logger, err := zapCfg.Build(zap.AddCaller())
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}

	return logger, atomLevel, nil
}

// NewSessionID returns a random id that tags every line of one run.
func NewSessionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "session-unknown"
	}

	return hex.EncodeToString(buf)
}
