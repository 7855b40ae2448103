// Package logger configures the process-wide go-logging backends.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcncl/rdjson/internal/config"
	"github.com/natefinch/lumberjack"
	"github.com/op/go-logging"
)

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{module}] [%{level}] %{message}%{color:reset}`,
)

var fileLogFormat = logging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05.000} [%{module}] [%{shortfunc}] [%{level}] %{message}`,
)

// ParseLevel maps a level name to a go-logging level
func ParseLevel(name string) (logging.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return logging.DEBUG, nil
	case "info":
		return logging.INFO, nil
	case "notice":
		return logging.NOTICE, nil
	case "", "warning", "warn":
		return logging.WARNING, nil
	case "error":
		return logging.ERROR, nil
	case "critical":
		return logging.CRITICAL, nil
	default:
		return logging.WARNING, fmt.Errorf("unknown log level '%s'", name)
	}
}

// Setup routes every module logger to stderr and, when cfg.File is set, to a
// size-rotated log file. The returned closer releases the file.
func Setup(stderr io.Writer, cfg config.LogConfig) (io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	backendStderr := logging.NewLogBackend(stderr, "", 0)
	stderrLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(backendStderr, stderrLogFormat))
	stderrLeveled.SetLevel(level, "")

	if cfg.File == "" {
		logging.SetBackend(stderrLeveled)
		return nopCloser{}, nil
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // Megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // Days
	}
	backendFile := logging.NewLogBackend(w, "", 0)
	fileLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(backendFile, fileLogFormat))
	// The file always gets debug output
	fileLeveled.SetLevel(logging.DEBUG, "")

	logging.SetBackend(stderrLeveled, fileLeveled)
	return w, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
