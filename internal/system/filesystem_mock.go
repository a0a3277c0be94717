package system

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// MockFileSystem is an in-memory FileSystem for testing purposes.
// It records how often each operation ran and can be told to fail specific ones.
type MockFileSystem struct {
	*FileSystem
	mu    sync.Mutex
	Calls map[string]int
	// FailOn maps an operation name ("WriteFile", "AppendFile", ...) to the error it returns.
	FailOn map[string]error
}

// NewMockFileSystem creates a new MockFileSystem backed by afero.MemMapFs.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		FileSystem: NewFileSystemWithFs(afero.NewMemMapFs()),
		Calls:      make(map[string]int),
		FailOn:     make(map[string]error),
	}
}

func (m *MockFileSystem) record(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[op]++
	return m.FailOn[op]
}

// CallCount returns how many times op has been invoked.
func (m *MockFileSystem) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[op]
}

// WriteFile records the call and writes to the in-memory filesystem.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	if err := m.record("WriteFile"); err != nil {
		return err
	}
	return m.FileSystem.WriteFile(path, content, perms)
}

// AppendFile records the call and appends in memory.
func (m *MockFileSystem) AppendFile(path string, content []byte) error {
	if err := m.record("AppendFile"); err != nil {
		return err
	}
	return m.FileSystem.AppendFile(path, content)
}

// Open records the call and opens the in-memory file.
func (m *MockFileSystem) Open(path string) (io.ReadCloser, error) {
	if err := m.record("Open"); err != nil {
		return nil, err
	}
	return m.FileSystem.Open(path)
}

// EnsureDirectory records the call and creates the directory in memory.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if err := m.record("EnsureDirectory"); err != nil {
		return err
	}
	return m.FileSystem.EnsureDirectory(path, perms)
}

// Checksum records the call and hashes the in-memory file.
func (m *MockFileSystem) Checksum(path string) (string, error) {
	if err := m.record("Checksum"); err != nil {
		return "", err
	}
	return m.FileSystem.Checksum(path)
}

// ReadFile returns the raw in-memory content of path.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(m.fs, path)
}
