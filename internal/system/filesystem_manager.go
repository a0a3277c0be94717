package system

import (
	"io"
	"os"
)

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	WriteFile(path string, content []byte, perms os.FileMode) error
	AppendFile(path string, content []byte) error
	Open(path string) (io.ReadCloser, error)
	EnsureDirectory(path string, perms os.FileMode) error
	FileExists(path string) (bool, error)
	GetFileSize(path string) (int64, error)
	Checksum(path string) (string, error)
}
