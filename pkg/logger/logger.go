// Package logger builds the zap logger used across the game.
//
// The game draws its screen on stdout, so the logger never writes there: a
// log line in the middle of a frame would tear it. Logs go to stderr or to a
// file, and only warnings show up unless a lower level is asked for, which
// keeps a normal session quiet even when stderr is the same terminal.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultLevel hides per-turn debug and info lines during play.
	DefaultLevel = "warn"
	// DefaultOutput keeps logs off stdout, which belongs to the screen.
	DefaultOutput = "stderr"
)

// Config holds the logger settings.
type Config struct {
	Level      string // debug, info, warn, error
	Encoding   string // console or json
	OutputPath string // file path or "stderr"; "stdout" and empty mean stderr
}

// New creates a zap.Logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	logLevel := strings.ToLower(cfg.Level)
	if logLevel == "" {
		logLevel = DefaultLevel
	}
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level '%s', using '%s'. Error: %v\n", cfg.Level, DefaultLevel, err)
		level.SetLevel(zap.WarnLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != "console" && encoding != "json" {
		encoding = "console"
	}

	zapConfig := zap.Config{
		Level:             level,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath(cfg.OutputPath)},
		ErrorOutputPaths:  []string{DefaultOutput},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

func outputPath(path string) string {
	switch strings.ToLower(strings.TrimSpace(path)) {
	case "", "stdout":
		return DefaultOutput
	default:
		return path
	}
}
