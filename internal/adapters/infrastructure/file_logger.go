package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
	"weatherforecast.app/pkg/logger"
)

// FileLoggerAdapter appends structured JSON log entries to a file.
// Used for the provider request log when FORECAST_ENABLE_LOGGING is set.
type FileLoggerAdapter struct {
	*SlogLoggerAdapter
	file  *os.File
	mutex sync.Mutex
}

func NewFileLoggerAdapter(logPath string, level slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		SlogLoggerAdapter: NewSlogLoggerAdapter(logger.NewWithWriter(file, level)),
		file:              file,
	}, nil
}

// Path returns the file the adapter writes to
func (f *FileLoggerAdapter) Path() string {
	return f.file.Name()
}

func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// TeeLogger fans every entry out to several loggers
type TeeLogger struct {
	loggers []ports.Logger
}

func NewTeeLogger(loggers ...ports.Logger) *TeeLogger {
	return &TeeLogger{loggers: loggers}
}

func (t *TeeLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Debug(msg, fields...)
	}
}

func (t *TeeLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Info(msg, fields...)
	}
}

func (t *TeeLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Warn(msg, fields...)
	}
}

func (t *TeeLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Error(msg, fields...)
	}
}

var (
	_ ports.Logger = (*SlogLoggerAdapter)(nil)
	_ ports.Logger = (*FileLoggerAdapter)(nil)
	_ ports.Logger = (*TeeLogger)(nil)
)
