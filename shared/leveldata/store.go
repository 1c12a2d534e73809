package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store persists opaque documents by key. *gdata.Manager satisfies it.
// A missing item loads as (nil, nil).
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// DirStore keeps each item as <key>.json inside Dir.
type DirStore struct {
	Dir string
}

func (s DirStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid item key %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

func (s DirStore) LoadItem(key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

// SaveItem replaces the file atomically; on error the previous document is
// left untouched.
func (s DirStore) SaveItem(key string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.Dir, err)
	}
	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", p, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", p, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", p, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", p, err)
	}
	return nil
}

// MemStore is an in-memory Store, used when no save directory is available.
type MemStore map[string][]byte

func (m MemStore) LoadItem(key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m MemStore) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}
