package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured values attached to a log entry.
type Fields = logrus.Fields

// Logger handles application logging. Messages go to the console writer
// and, after Init, to a per-run file in the log directory.
type Logger struct {
	log     *logrus.Logger
	console io.Writer
	file    *os.File
	mu      sync.Mutex
}

// NewLogger creates a Logger writing to stderr
func NewLogger() *Logger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates a Logger writing to w
func NewLoggerTo(w io.Writer) *Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return &Logger{log: log, console: w}
}

// Init additionally logs to a file in logDir, named after the date and run
// number of the day.
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("sentiment_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("sentiment_%s_%d.log", dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = f
	l.log.SetOutput(io.MultiWriter(l.console, f))
	l.log.Info("Logging started")
	return nil
}

// SetVerbose enables debug entries.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.log.SetLevel(logrus.DebugLevel)
	} else {
		l.log.SetLevel(logrus.InfoLevel)
	}
}

// Log writes a message
func (l *Logger) Log(message string) {
	l.log.Info(message)
}

// Logf writes a formatted message
func (l *Logger) Logf(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Debugf writes a formatted message only when verbose.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Warnf writes a formatted warning
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// WithFields returns an entry carrying fields.
func (l *Logger) WithFields(fields Fields) *logrus.Entry {
	return l.log.WithFields(fields)
}

// Close closes the log file; console logging continues.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.log.Info("Logging stopped")
		l.log.SetOutput(l.console)
		l.file.Close()
		l.file = nil
	}
}

// Path returns the current log file path, or "" when logging to the console only.
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}
