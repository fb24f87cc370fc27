package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps each record as <dir>/<name>.json.
type JSONStore struct {
	dir string
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Load() error {
	info, err := os.Stat(s.dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'rebill init' first")
	}
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", s.dir)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) recordPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *JSONStore) GetRecord(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.recordPath(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// PutRecord writes through a temp file and rename so a crash never leaves a
// half-written record.
func (s *JSONStore) PutRecord(name string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.recordPath(name))
}

func (s *JSONStore) GetConfigPath() string {
	return s.dir
}
