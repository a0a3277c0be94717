package common

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateFilePath validates a path that should name a regular file.
// Relative paths are allowed; they resolve against the working directory.
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("file path contains a NUL byte: %q", path)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("file path names a directory: %s", path)
	}
	switch filepath.Base(filepath.Clean(path)) {
	case ".", "..":
		return fmt.Errorf("file path names a directory: %s", path)
	}
	return nil
}

// ValidateLogLevel validates a slog level name (debug, info, warn, error)
func ValidateLogLevel(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
