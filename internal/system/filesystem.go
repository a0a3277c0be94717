package system

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/zeebo/blake3"
)

// FileSystem handles file system operations on top of an afero.Fs
type FileSystem struct {
	fs afero.Fs
}

// NewFileSystem creates a FileSystem backed by the host operating system
func NewFileSystem() *FileSystem {
	return NewFileSystemWithFs(afero.NewOsFs())
}

// NewFileSystemWithFs creates a FileSystem over an arbitrary afero.Fs
func NewFileSystemWithFs(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// EnsureDirectory creates a directory with the given permissions.
// If the directory already exists, it does nothing
func (f *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := f.fs.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check directory %s: %w", path, err)
	}

	if err := f.fs.MkdirAll(path, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists
func (f *FileSystem) FileExists(path string) (bool, error) {
	_, err := f.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// WriteFile truncates (or creates) path and writes content to it.
// Parent directories are not created.
func (f *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	return afero.WriteFile(f.fs, path, content, perms)
}

// AppendFile writes content at the end of an existing file.
// A missing file is an error; it is never created here.
func (f *FileSystem) AppendFile(path string, content []byte) error {
	file, err := f.fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		return err
	}

	// Explicitly check close error to prevent data loss
	return file.Close()
}

// Open opens path for reading. The caller must close it.
func (f *FileSystem) Open(path string) (io.ReadCloser, error) {
	return f.fs.Open(path)
}

// GetFileSize returns the size of a file in bytes
func (f *FileSystem) GetFileSize(path string) (int64, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return info.Size(), nil
}

// Checksum returns the hex-encoded BLAKE3-256 digest of a file's content
func (f *FileSystem) Checksum(path string) (string, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	h := blake3.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
