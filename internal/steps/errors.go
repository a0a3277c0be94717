package steps

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileError reports a failed file operation on a specific path
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	// Don't repeat the path when the underlying error already carries it
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) && pathErr.Path == e.Path {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, pathErr.Op, pathErr.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
