package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// AppLogger is the application logger, structured JSON via logrus with an
// optional file output alongside stdout.
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger from configuration.
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{Logger: logger}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// WithFields adds custom fields to a log entry, always tagging the service.
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["service"] = "ridelink-rides-app"
	return al.Logger.WithFields(fields)
}
