// Package steps implements the individual file operations of the names
// workflow: seeding the data file, appending to it, reading it back line by
// line and scanning lines for a substring.
package steps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mosescb/names-demo/internal/system"
)

const (
	// DefaultContent is written by Initialize. There is no trailing newline.
	DefaultContent = "Moses\nChristopher\nCarrotPi"

	// AppendedLine is what the demonstration run appends after Initialize
	AppendedLine = "\nSteve"

	// DefaultLabel prefixes every printed line
	DefaultLabel = "line-by-line:"

	filePerms = 0644
)

// TextFile performs whole-file operations through a FileSystemManager
type TextFile struct {
	fs system.FileSystemManager
}

// NewTextFile creates a new TextFile instance
func NewTextFile(fs system.FileSystemManager) *TextFile {
	return &TextFile{fs: fs}
}

// Initialize overwrites (or creates) path with DefaultContent
func (t *TextFile) Initialize(path string) error {
	return t.Write(path, DefaultContent)
}

// Write overwrites (or creates) path with content. The parent directory must exist.
func (t *TextFile) Write(path, content string) error {
	if err := t.fs.WriteFile(path, []byte(content), filePerms); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Append writes text at the end of the existing file at path
func (t *TextFile) Append(path, text string) error {
	if err := t.fs.AppendFile(path, []byte(text)); err != nil {
		return &FileError{Op: "append", Path: path, Err: err}
	}
	return nil
}

// ReadAll returns the lines of path in order, without line terminators.
// A trailing newline does not produce a final empty line.
func (t *TextFile) ReadAll(path string) ([]string, error) {
	rc, err := t.fs.Open(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	defer rc.Close()

	lines, err := ScanLines(rc)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}

// ScanLines splits r into lines. Lines may be of any length; a trailing
// "\n" or "\r\n" is removed from each.
func ScanLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	lines := []string{}
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// PrintLines writes each line to w as "<label> <line>"
func PrintLines(w io.Writer, label string, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s %s\n", label, line); err != nil {
			return err
		}
	}
	return nil
}
