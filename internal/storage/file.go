package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage writes reports into a local directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Path returns the destination path of a report name.
func (s *FileStorage) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// PutReport writes data to dir/name through a temp file and rename.
func (s *FileStorage) PutReport(_ context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("report name is required")
	}
	if s.dir != "" && s.dir != "." {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("create reports dir: %w", err)
		}
	}

	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write report tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}
