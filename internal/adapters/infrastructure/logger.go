package infrastructure

import (
	"log/slog"

	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/logger"
)

// SlogLoggerAdapter implements the Logger port on top of slog.
// The zero value logs through the process-wide default logger.
type SlogLoggerAdapter struct {
	logger *logger.Logger
}

func NewSlogLoggerAdapter(l *logger.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: l}
}

func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.target().Debug(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.target().Info(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.target().Warn(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.target().Error(msg, toArgs(fields)...)
}

// With returns an adapter that adds the given fields to every entry
func (l *SlogLoggerAdapter) With(fields ...ports.Field) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: &logger.Logger{Logger: l.target().With(toArgs(fields)...)}}
}

func (l *SlogLoggerAdapter) target() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}
	return l.logger.Logger
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		value := field.Value
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		args = append(args, field.Key, value)
	}
	return args
}
