package main

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir       = "logs"
	logFileName  = "input-test.log"
	maxLogSizeMB = 1
	maxBackups   = 3
)

// setupLogging returns a file logger when debug is set, otherwise a no-op
// logger. The terminal is in raw mode, so logs never go to stdout or stderr.
func setupLogging(debug bool) (*zap.Logger, io.Closer) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zap.NewNop(), nil
	}

	sink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxBackups,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), zapcore.DebugLevel)

	return zap.New(core), sink
}
