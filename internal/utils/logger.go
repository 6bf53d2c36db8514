package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger builds a zap logger that prints bare console messages,
// with timestamps, levels, and caller annotations stripped from the output.
func NewApplicationLogger() (*zap.Logger, error) {
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Encoding = "console"
	loggerConfiguration.DisableCaller = true
	loggerConfiguration.DisableStacktrace = true

	encoderConfiguration := &loggerConfiguration.EncoderConfig
	encoderConfiguration.MessageKey = "message"
	encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfiguration.TimeKey = ""
	encoderConfiguration.LevelKey = ""
	encoderConfiguration.NameKey = ""
	encoderConfiguration.CallerKey = ""
	encoderConfiguration.StacktraceKey = ""

	return loggerConfiguration.Build()
}
