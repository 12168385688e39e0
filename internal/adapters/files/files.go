// Package files abstracts the host file capability the export and import
// engines consume: write content to a chosen path, read content from a
// chosen path. How the path is chosen is the shell's business.
package files

import (
	"fmt"
	"os"
	"time"
)

// FileSystem is the injected host capability.
type FileSystem interface {
	WriteFile(path, content string) error
	ReadFile(path string) (string, error)
}

// OS implements FileSystem against the real filesystem.
type OS struct{}

// Compile-time check that OS satisfies FileSystem.
var _ FileSystem = OS{}

// WriteFile writes content to path, creating or truncating the file.
func (OS) WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// ReadFile reads the whole file at path.
func (OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Filename builds a dated export filename, e.g. sinsa-srp-2026-08-31.json.
func Filename(prefix, extension string, now time.Time) string {
	if prefix == "" {
		prefix = "sinsa-srp"
	}
	if extension == "" {
		extension = "json"
	}
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format("2006-01-02"), extension)
}
