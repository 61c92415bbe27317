package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// NewLogger writes JSON lines to fileSyncer and stderr. fileSyncer may be nil
// to log to stderr only.
func NewLogger(logLevel string, fileSyncer zapcore.WriteSyncer) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder

	syncer := zapcore.Lock(os.Stderr)
	if fileSyncer != nil {
		syncer = zapcore.NewMultiWriteSyncer(fileSyncer, syncer)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig), syncer, parseLevel(logLevel))
	return zap.New(core, zap.AddCaller())
}
