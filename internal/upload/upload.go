// Package upload manages the blob area for complaint images: a flat
// directory of files referenced by name from complaint rows.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrUnsafeName is returned when nothing of the original filename
// survives sanitisation. Callers skip the upload in that case.
var ErrUnsafeName = errors.New("filename empty after sanitisation")

// ErrBadFilename is returned for retrieval names that are not a plain
// file name (path separators, dot segments).
var ErrBadFilename = errors.New("invalid filename")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// Store is a blob area rooted at a single directory.
type Store struct {
	dir string
}

// NewStore opens the blob area at dir, creating it if missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the blob area's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// SanitizeFilename strips any path component from name and replaces
// every character outside [A-Za-z0-9_.-] with an underscore. The result
// may be empty for names with no safe characters at all.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// Save writes src into the blob area under a timestamp-prefixed
// sanitised name and returns the stored name. The prefix keeps two
// uploads of the same original filename from colliding.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	name := SanitizeFilename(originalName)
	if name == "" {
		return "", ErrUnsafeName
	}
	stored := fmt.Sprintf("%d_%s", time.Now().UTC().Unix(), name)

	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create blob %s: %w", stored, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write blob %s: %w", stored, err)
	}
	return stored, nil
}

// Path resolves a stored name to its on-disk path, rejecting anything
// that is not a plain file name directly under the blob area.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", ErrBadFilename
	}
	return filepath.Join(s.dir, filename), nil
}
