package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileRoster keeps the roster as a flat JSON object of id -> name.
// Every Save rewrites the whole file through a temp file and rename.
type FileRoster struct {
	path string
}

func NewFileRoster(path string) (*FileRoster, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("roster file path is required")
	}
	return &FileRoster{path: path}, nil
}

func (f *FileRoster) Path() string {
	return f.path
}

// Load reads the roster, creating an empty file (and its directory) when
// none exists yet.
func (f *FileRoster) Load() (map[string]string, error) {
	students := map[string]string{}
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := f.Save(students); err != nil {
				return nil, fmt.Errorf("create roster file: %w", err)
			}
			return students, nil
		}
		return nil, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	if err := dec.Decode(&students); err != nil {
		return nil, fmt.Errorf("decode roster file: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("decode roster file: trailing content")
	}
	if students == nil {
		// A literal null decodes to a nil map.
		students = map[string]string{}
	}
	return students, nil
}

func (f *FileRoster) Save(students map[string]string) error {
	if students == nil {
		students = map[string]string{}
	}
	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	data = append(data, '\n')
	if err := writeFileAtomic(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
