package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	// subsystemLevels is populated during boot and read-only afterwards.
	subsystemLevels = map[string]zapcore.Level{}
)

var levelsMu sync.RWMutex

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SOFTAP_LOG_LEVEL"

// DefaultLevel is used when neither an explicit level nor the environment
// variable is set.
const DefaultLevel = "info"

// ParseLevel converts a level name into a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Initialize creates the global logger with the specified level.
// If level is empty, it checks SOFTAP_LOG_LEVEL, then DefaultLevel.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		level = DefaultLevel
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built
	return nil
}

// SetLogger replaces the global logger. Intended for tests that observe
// log output.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetSubsystemLevel raises the minimum level of the named subsystem.
// Must only be called during boot.
func SetSubsystemLevel(subsystem string, level zapcore.Level) {
	levelsMu.Lock()
	defer levelsMu.Unlock()
	subsystemLevels[subsystem] = level
}

// ResetSubsystemLevels clears every subsystem override.
func ResetSubsystemLevels() {
	levelsMu.Lock()
	defer levelsMu.Unlock()
	subsystemLevels = map[string]zapcore.Level{}
}

// Named returns a child logger for a subsystem, honoring any level set
// with SetSubsystemLevel.
func Named(subsystem string) *zap.Logger {
	l := GetLogger().Named(subsystem)

	levelsMu.RLock()
	level, ok := subsystemLevels[subsystem]
	levelsMu.RUnlock()
	if !ok {
		return l
	}
	// IncreaseLevel refuses to lower the core level.
	if level <= zapcore.LevelOf(l.Core()) {
		return l
	}
	return l.WithOptions(zap.IncreaseLevel(level))
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogBootStep logs completion of one boot stage.
func LogBootStep(stage string, fields ...zap.Field) {
	Info("Boot step complete", append([]zap.Field{zap.String("stage", stage)}, fields...)...)
}

// LogHTTPRequest logs an HTTP request
func LogHTTPRequest(remoteAddr string, method string, path string, status int) {
	Info("HTTP request served",
		zap.String("remote_addr", remoteAddr),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", status),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
