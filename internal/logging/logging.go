// Package logging builds the zap loggers used by layoutlint.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures a logger.
type Options struct {
	Level       string
	Development bool
	Verbose     bool
	// File, when set, receives the output instead of Output.
	File   string
	Output io.Writer
}

// New builds a logger writing JSON (or console text in development) to the
// configured destination. The returned cleanup closes any opened file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Level != "" {
		parsed, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	if opts.Verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	sink := zapcore.AddSync(os.Stderr)
	cleanup := func() error { return nil }
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", opts.File, err)
		}
		sink = zapcore.AddSync(f)
		cleanup = f.Close
	case opts.Output != nil:
		sink = zapcore.AddSync(opts.Output)
	}

	var encoder zapcore.Encoder
	if opts.Development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	logger := zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller())
	if opts.Development {
		logger = logger.WithOptions(zap.Development())
	}
	return logger, cleanup, nil
}
