package slot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FS stores the document as a single JSON file. Writes go to a temp file in
// the same directory and replace the target with a rename, so a crashed
// write never leaves a truncated document behind.
type FS struct {
	path string
}

// NewFS returns a file-backed slot at path, creating parent directories.
func NewFS(path string) (*FS, error) {
	if path == "" {
		path = "hotelcore.json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	return &FS{path: path}, nil
}

func (f *FS) Driver() Driver { return DriverFS }

// Path returns the configured file path.
func (f *FS) Path() string { return f.path }

func (f *FS) Load(_ context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, true, nil
}

func (f *FS) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}
