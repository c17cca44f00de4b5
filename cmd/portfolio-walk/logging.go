package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/config"
)

const (
	logDir      = "logs"
	logFileName = "portfolio-walk.log"
	maxLogSize  = 10 * 1024 * 1024
)

func parseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// rotateLog moves a file past maxLogSize aside under a timestamped name
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", strings.TrimSuffix(path, ext), time.Now().UTC().Format("20060102-150405"), ext)
	return os.Rename(path, rotated)
}

// setupLogging builds the process logger
// The terminal frontend owns the screen, so interactive runs never log to the console
// Returns the opened log file, nil when logging to a file is off
func setupLogging(cfg config.LogConfig, interactive bool) (zerolog.Logger, *os.File, error) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var writers []io.Writer
	var file *os.File

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
		if err := rotateLog(cfg.File); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotate log: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
		}
		file = f
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}
	if cfg.Console && !interactive {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), nil, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().Logger()
	return logger, file, nil
}
