package logger

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrLogFilePathEmpty = errors.New("log file path is empty")

// RotatingFile opens a size-rotated log file. The parent directory is created
// when missing. Rotation keeps at most maxBackups old files of maxSizeMB each.
// The caller owns the returned writer and must Close it.
func RotatingFile(path string, maxSizeMB, maxBackups int) (*lumberjack.Logger, error) {
	if path == "" {
		return nil, ErrLogFilePathEmpty
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxBackups < 0 {
		maxBackups = 0
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}, nil
}

// ParseLevel converts a level name (debug, info, warn, error) into a
// slog.Level. Unknown names fall back to def.
func ParseLevel(name string, def slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return def
	}
	return l
}
