// Package logger wraps logrus with named, rotating log files. Every named
// logger writes to its own file under the configured directory; the app
// logger is the default sink for the HTTP layer and services.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appLoggerName = "app"

var (
	mu      sync.Mutex
	cfg     *LogConfig
	loggers = make(map[string]*logrus.Logger)
)

// Init must run before any logger is requested. It is safe to call once
// from main; later calls replace the shared configuration.
func Init(c *LogConfig) error {
	if c == nil {
		c = DefaultLogConfig()
	}

	if c.Output != "console" {
		if err := os.MkdirAll(c.Dir, 0o755); err != nil {
			return fmt.Errorf("could not create log directory %s: %w", c.Dir, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	cfg = c
	loggers = make(map[string]*logrus.Logger)
	return nil
}

// GetLogger returns the named logger, creating it on first use.
func GetLogger(name string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	c := cfg
	if c == nil {
		c = DefaultLogConfig()
	}

	l := logrus.New()

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	var writers []io.Writer
	if c.Output == "console" || c.Output == "both" {
		writers = append(writers, os.Stdout)
	}
	if c.Output == "file" || c.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(c.Dir, name+".log"),
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
			Compress:   c.Compress,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}
	l.SetOutput(io.MultiWriter(writers...))

	loggers[name] = l
	return l
}

// GetAppLogger returns the default application logger.
func GetAppLogger() *logrus.Logger {
	return GetLogger(appLoggerName)
}

// WithRequest returns an entry carrying request-scoped fields.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}
	requestID := requestid.FromContext(c)
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID != "" {
		fields["request_id"] = requestID
	}
	return GetAppLogger().WithFields(fields)
}
