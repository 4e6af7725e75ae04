// loggerconfig.go
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogOutputJSON emits structured JSON log lines.
	LogOutputJSON = "json"
	// LogOutputConsole emits human-readable console log lines.
	LogOutputConsole = "console"
)

// BuildLogger creates and returns a new zap-backed logger instance. It configures the
// encoder based on the requested output format and separator. The function panics if
// the underlying zap logger cannot be initialized.
func BuildLogger(logLevel LogLevel, logOutputFormat string, logConsoleSeparator string) Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	encoding := LogOutputJSON
	if strings.EqualFold(logOutputFormat, LogOutputConsole) {
		encoding = LogOutputConsole
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.ConsoleSeparator = logConsoleSeparator
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(convertToZapLevel(logLevel)),
		Development:       false,
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	zapLogger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return &defaultLogger{
		logger:   zapLogger,
		logLevel: logLevel,
	}
}

// wrapFieldsInError renders a log message and its fields into a plain error value.
func wrapFieldsInError(msg string, fields []zapcore.Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("%s", msg)
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(enc)
	}

	parts := make([]string, 0, len(enc.Fields))
	for key, value := range enc.Fields {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}

	return fmt.Errorf("%s: %s", msg, strings.Join(parts, ", "))
}
