package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a base directory.
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) path(key string) (string, error) {
	cleanKey := filepath.Clean(key)
	fullPath := filepath.Join(s.basePath, cleanKey+".json")

	// Keys must not escape the base directory.
	if !strings.HasPrefix(fullPath, s.basePath) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}

	return fullPath, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	fullPath, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return string(data), true, nil
}

func (s *FileStore) Set(key, value string) error {
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.WriteFile(fullPath, []byte(value), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, key, err)
	}

	return nil
}

func (s *FileStore) Available() bool {
	// Probe with a throwaway write.
	probe := filepath.Join(s.basePath, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return false
	}
	os.Remove(probe)
	return true
}
